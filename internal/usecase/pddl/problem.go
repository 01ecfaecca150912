package pddl

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
)

const (
	markerProblemName = "(problem"
	markerDomainRef   = "(:domain"
	markerObjects     = "(:objects"
	markerInit        = "(:init"
	markerGoal        = "(:goal"

	// DefaultObjectType is assigned to trailing symbols with no "- <type>".
	DefaultObjectType = "object"
)

// ParseProblem parses a problem definition whose sections appear in the
// order objects, init, goal.
func ParseProblem(text string) (domain.Problem, error) {
	const op = "pddl.parse_problem"

	objStart, objEnd, err := extract.SectionBounds(text, markerObjects, 0)
	if err != nil {
		return domain.Problem{}, sectionErr(op, "objects", err)
	}
	objectsText := text[objStart:objEnd]

	// Init and goal are located on comment-free text.
	clean := extract.StripComments(text)

	objAt := strings.Index(clean, markerObjects)
	initAt := strings.Index(clean, markerInit)
	goalAt := strings.Index(clean, markerGoal)
	switch {
	case initAt < 0:
		return domain.Problem{}, domain.StructuralNotFound(op, "init section not found")
	case goalAt < 0:
		return domain.Problem{}, domain.StructuralNotFound(op, "goal section not found")
	case !(objAt < initAt && initAt < goalAt):
		return domain.Problem{}, domain.StructuralNotFound(op, "sections out of order: want objects, init, goal")
	}

	initText := strings.TrimRightFunc(clean[initAt:goalAt], isSpace)
	if !strings.HasSuffix(initText, ")") {
		return domain.Problem{}, domain.StructuralNotFound(op, "init section is not closed before %s", markerGoal)
	}

	gs, ge, err := extract.Bounds(clean, goalAt, extract.Parens)
	if err != nil {
		return domain.Problem{}, fmt.Errorf("%s: goal section: %w", op, err)
	}
	if !strings.HasPrefix(strings.TrimLeftFunc(clean[ge:], isSpace), ")") {
		return domain.Problem{}, domain.StructuralNotFound(op, "goal section is not followed by the problem terminator")
	}
	goalText := clean[gs:ge]

	p := domain.Problem{
		Name:        headName(clean, markerProblemName),
		DomainName:  headName(clean, markerDomainRef),
		Raw:         text,
		ObjectsText: objectsText,
		Objects:     parseObjects(objectsText),
		InitText:    initText,
		GoalText:    goalText,
	}

	p.Init = InitPredicates(initText)
	p.Goal = GoalPredicates(goalText)
	return p, nil
}

// InitPredicates splits an "(:init ...)" section into its facts.
func InitPredicates(section string) []domain.Predicate {
	var out []domain.Predicate
	for _, g := range extract.Groups(extract.Interior(extract.StripComments(section)), extract.Parens) {
		out = append(out, predicateFrom(g.Text))
	}
	return out
}

// GoalPredicates returns the conditions of a "(:goal ...)" section with
// conjunctions flattened.
func GoalPredicates(section string) []domain.Predicate {
	return fragments(extract.Interior(extract.StripComments(section)))
}

// parseObjects flattens "<symbols> - <type>" runs into one decl per symbol.
func parseObjects(section string) []domain.ObjectDecl {
	tokens := strings.Fields(extract.StripComments(extract.Interior(section)))
	if len(tokens) > 0 && strings.EqualFold(tokens[0], ":objects") {
		tokens = tokens[1:]
	}

	var (
		out     []domain.ObjectDecl
		pending []string
	)
	for i := 0; i < len(tokens); i++ {
		if tokens[i] != "-" {
			pending = append(pending, tokens[i])
			continue
		}
		if i+1 >= len(tokens) {
			break
		}
		typ := tokens[i+1]
		for _, s := range pending {
			out = append(out, domain.ObjectDecl{Symbol: s, Type: typ})
		}
		pending = pending[:0]
		i++
	}
	for _, s := range pending {
		out = append(out, domain.ObjectDecl{Symbol: s, Type: DefaultObjectType})
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
