package reconcile

import (
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
)

// Cooking is the built-in vocabulary for the cooking domain.
func Cooking() domain.Vocabulary {
	return domain.Vocabulary{
		Name:   "cooking",
		Detect: []string{"cucumber", "carrot", "apple", "plate", "bowl", "cutting_board"},
		Categories: []domain.Category{
			{Type: "Robot", Labels: []string{"robot"}},
			{Type: "PhysicalObject", Labels: []string{"cucumber", "carrot", "apple", "plate", "bowl"}},
			{Type: "Tool", Labels: []string{"knife"}},
			{Type: "Location", Labels: []string{"cutting_board", "knife_holder", "table"}},
		},
	}
}

// Builtin returns a built-in vocabulary by name.
func Builtin(name string) (domain.Vocabulary, bool) {
	switch name {
	case "cooking":
		return Cooking(), true
	default:
		return domain.Vocabulary{}, false
	}
}

// matchLabel returns the longest detect entry that prefixes label.
func matchLabel(v domain.Vocabulary, label string) (string, bool) {
	best := ""
	for _, d := range v.Detect {
		if d != "" && strings.HasPrefix(label, d) && len(d) > len(best) {
			best = d
		}
	}
	return best, best != ""
}

// baseLabel strips trailing ordinal digits: "plate2" -> "plate".
func baseLabel(symbol string) string {
	return strings.TrimRight(symbol, "0123456789")
}
