package extract

import (
	"fmt"

	"github.com/aalvaropc/vilain/internal/domain"
)

// Part names a section of a generated problem definition.
type Part string

const (
	PartInit  Part = "init"
	PartGoal  Part = "goal"
	PartWhole Part = "whole"
)

// Marker returns the reserved token that opens the part.
func (p Part) Marker() (string, bool) {
	switch p {
	case PartInit:
		return "(:init", true
	case PartGoal:
		return "(:goal", true
	case PartWhole:
		return "(define", true
	default:
		return "", false
	}
}

// Span returns the first balanced fragment delimited by d, delimiters included.
func Span(text string, d Delims) (string, error) {
	start, end, err := Bounds(text, 0, d)
	if err != nil {
		return "", err
	}
	return text[start:end], nil
}

// Section locates marker outside comments and returns the balanced
// parenthesized group that the marker opens.
func Section(text, marker string) (string, error) {
	start, end, err := SectionBounds(text, marker, 0)
	if err != nil {
		return "", err
	}
	return text[start:end], nil
}

// SectionBounds is Section reporting offsets, searching from offset from.
func SectionBounds(text, marker string, from int) (start, end int, err error) {
	at := IndexOutsideComments(text, marker, from)
	if at < 0 {
		return 0, 0, domain.StructuralNotFound("extract.section", "marker %q not found", marker)
	}
	return Bounds(text, at, Parens)
}

// Extract isolates a named part of a generated problem definition.
func Extract(text string, part Part) (string, error) {
	marker, ok := part.Marker()
	if !ok {
		return "", &domain.OpError{
			Op:   "extract.part",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown part %q", part),
		}
	}
	return Section(text, marker)
}

// Bounds scans the whole text so comment and string state is known at from,
// then balances the first opener found at or after from.
func Bounds(text string, from int, d Delims) (int, int, error) {
	sc := NewScanner(d)
	depth := 0
	start := -1

	for i := 0; i < len(text); i++ {
		b := text[i]
		if sc.Next(b) != Code || i < from {
			continue
		}

		switch b {
		case d.Open:
			if start < 0 {
				start = i
			}
			depth++
		case d.Close:
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return start, i + 1, nil
			}
		}
	}

	if start < 0 {
		return 0, 0, domain.StructuralNotFound("extract.span", "no %q found", string(d.Open))
	}
	return 0, 0, domain.Unbalanced("extract.span", "no matching %q for %q at offset %d", string(d.Close), string(d.Open), start)
}
