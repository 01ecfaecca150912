package pddl

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
)

const (
	markerDomainName   = "(domain"
	markerPredicates   = "(:predicates"
	markerAction       = "(:action"
	markerParameters   = ":parameters"
	markerPrecondition = ":precondition"
	markerEffect       = ":effect"
)

// ParseDomain parses a domain definition. It fails without a partial result
// when the predicates section, every action, or any action clause is missing.
func ParseDomain(text string) (domain.Domain, error) {
	const op = "pddl.parse_domain"

	name := headName(text, markerDomainName)

	start, end, err := extract.SectionBounds(text, markerPredicates, 0)
	if err != nil {
		return domain.Domain{}, sectionErr(op, "predicates", err)
	}
	predsText := text[start:end]
	preds := parsePredicates(predsText)

	actions, err := parseActions(text)
	if err != nil {
		return domain.Domain{}, err
	}
	if len(actions) == 0 {
		return domain.Domain{}, domain.StructuralNotFound(op, "no %s found", markerAction)
	}

	return domain.NewDomain(name, text, predsText, preds, actions), nil
}

func parsePredicates(section string) []domain.Predicate {
	body := extract.Interior(section)

	var out []domain.Predicate
	for _, g := range extract.Groups(body, extract.Parens) {
		p := predicateFrom(g.Text)
		p.Comment = trailingComment(body[g.End:])
		out = append(out, p)
	}
	return out
}

// trailingComment returns the comment text on the rest of the line, if the
// line holds nothing else before it.
func trailingComment(rest string) string {
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ";") {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(rest, ";"))
}

func parseActions(text string) ([]domain.Action, error) {
	const op = "pddl.parse_action"

	var out []domain.Action
	for from := 0; ; {
		at := extract.IndexOutsideComments(text, markerAction, from)
		if at < 0 {
			break
		}
		start, end, err := extract.Bounds(text, at, extract.Parens)
		if err != nil {
			return nil, fmt.Errorf("%s: action at offset %d: %w", op, at, err)
		}
		a, err := parseAction(text[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		from = end
	}
	return out, nil
}

func parseAction(raw string) (domain.Action, error) {
	const op = "pddl.parse_action"

	a := domain.Action{Raw: raw}
	if f := strings.Fields(extract.StripComments(raw)); len(f) > 1 {
		a.Name = strings.TrimRight(f[1], ")")
	}

	markers := []string{markerParameters, markerPrecondition, markerEffect}
	offsets := make(map[string]int, len(markers))
	for _, m := range markers {
		at := extract.IndexOutsideComments(raw, m, 0)
		if at < 0 {
			return domain.Action{}, domain.StructuralNotFound(op, "action %q has no %s", a.Name, m)
		}
		offsets[m] = at
	}

	// Clause regions end at the next clause marker or the action's closer.
	regionEnd := func(m string) int {
		end := len(raw) - 1
		for _, other := range markers {
			if o := offsets[other]; o > offsets[m] && o < end {
				end = o
			}
		}
		return end
	}

	ps, pe, err := extract.Bounds(raw, offsets[markerParameters], extract.Parens)
	if err != nil || ps >= regionEnd(markerParameters) {
		return domain.Action{}, domain.StructuralNotFound(op, "action %q has no parameter list", a.Name)
	}
	a.Parameters = raw[ps:pe]

	a.Precondition = fragments(raw[offsets[markerPrecondition]:regionEnd(markerPrecondition)])
	a.Effect = fragments(raw[offsets[markerEffect]:regionEnd(markerEffect)])
	return a, nil
}

// headName returns X in a "(<head> X)" group, or "" when absent.
func headName(text, marker string) string {
	section, err := extract.Section(text, marker)
	if err != nil {
		return ""
	}
	f := extract.Tokens(section)
	if len(f) < 2 {
		return ""
	}
	return f[1]
}

func sectionErr(op, what string, err error) error {
	if domain.IsKind(err, domain.KindStructuralNotFound) {
		return domain.StructuralNotFound(op, "%s section not found", what)
	}
	return fmt.Errorf("%s: %s section: %w", op, what, err)
}
