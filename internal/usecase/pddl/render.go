package pddl

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
)

// RenderDomain writes d back as a domain definition. Parsing the result
// yields the same predicates and actions.
func RenderDomain(d domain.Domain) string {
	var sb strings.Builder

	if d.Name != "" {
		fmt.Fprintf(&sb, "(define (domain %s)\n", d.Name)
	} else {
		sb.WriteString("(define\n")
	}

	sb.WriteString("  (:predicates\n")
	for _, p := range d.Predicates {
		sb.WriteString("    ")
		sb.WriteString(p.Raw)
		if p.Comment != "" {
			sb.WriteString(" ; ")
			sb.WriteString(p.Comment)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  )\n")

	for _, a := range d.Actions {
		fmt.Fprintf(&sb, "  (:action %s\n", a.Name)
		fmt.Fprintf(&sb, "    :parameters %s\n", a.Parameters)
		fmt.Fprintf(&sb, "    :precondition %s\n", conjunction(a.Precondition))
		fmt.Fprintf(&sb, "    :effect %s\n", conjunction(a.Effect))
		sb.WriteString("  )\n")
	}

	sb.WriteString(")\n")
	return sb.String()
}

func conjunction(preds []domain.Predicate) string {
	parts := make([]string, 0, len(preds)+1)
	parts = append(parts, "and")
	for _, p := range preds {
		parts = append(parts, p.Raw)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// DescribePredicates lists each predicate with its comment, one per line:
// "- (At ?o ?l): object o is at location l".
func DescribePredicates(d domain.Domain) string {
	lines := make([]string, 0, len(d.Predicates))
	for _, p := range d.Predicates {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Raw, p.Comment))
	}
	return strings.Join(lines, "\n")
}

// ActionsText joins the raw action texts.
func ActionsText(d domain.Domain) string {
	texts := make([]string, 0, len(d.Actions))
	for _, a := range d.Actions {
		texts = append(texts, a.Raw)
	}
	return strings.Join(texts, "\n")
}
