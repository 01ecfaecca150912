package pddl

import (
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
)

// fragments collects the predicate-shaped fragments of a clause region.
// The clause body is the first top-level group of the region.
func fragments(region string) []domain.Predicate {
	groups := extract.Groups(region, extract.Parens)
	if len(groups) == 0 {
		return nil
	}
	var out []domain.Predicate
	for _, raw := range unwrap(groups[0].Text) {
		out = append(out, predicateFrom(raw))
	}
	return out
}

// unwrap flattens conjunction wrappers: a group whose head is "and", or
// that has no head token at all, e.g. "((A) (B))".
func unwrap(group string) []string {
	if !isConjunction(group) {
		return []string{group}
	}
	var out []string
	for _, g := range extract.Groups(extract.Interior(group), extract.Parens) {
		out = append(out, unwrap(g.Text)...)
	}
	return out
}

func isConjunction(group string) bool {
	inner := strings.TrimSpace(extract.StripComments(extract.Interior(group)))
	if inner == "" || inner[0] == '(' {
		return true
	}
	head := strings.Fields(inner)[0]
	return strings.EqualFold(head, "and")
}

// predicateFrom splits a group into its head and top-level terms.
// Nested groups stay whole: "(not (At ?o ?l))" has the single argument "(At ?o ?l)".
func predicateFrom(raw string) domain.Predicate {
	raw = strings.TrimSpace(raw)
	terms := splitTerms(extract.StripComments(extract.Interior(raw)))

	p := domain.Predicate{Raw: raw}
	if len(terms) > 0 {
		p.Name = terms[0]
		p.Args = terms[1:]
	}
	return p
}

func splitTerms(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			depth, j := 0, i
			for ; j < len(s); j++ {
				if s[j] == '(' {
					depth++
				} else if s[j] == ')' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if j >= len(s) {
				j = len(s) - 1
			}
			out = append(out, s[i:j+1])
			i = j + 1
		case c == ')':
			i++
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\n\r()", rune(s[j])) {
				j++
			}
			out = append(out, s[i:j])
			i = j
		}
	}
	return out
}
