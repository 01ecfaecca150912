// Package plan decodes symbolic task plans from generated text.
package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
)

// Decode extracts the first square-bracket payload and returns its actions.
// A list of single-element lists is flattened to its first elements.
func Decode(text string) ([]string, error) {
	const op = "plan.decode"

	payload, err := extract.Span(text, extract.Brackets)
	if err != nil {
		return nil, err
	}

	var items []any
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, decodeErr(op, "plan is not a JSON list: %v", err)
	}
	if len(items) == 0 {
		return nil, decodeErr(op, "plan is empty")
	}

	out := make([]string, 0, len(items))
	for i, it := range items {
		if nested, ok := it.([]any); ok {
			if len(nested) == 0 {
				return nil, decodeErr(op, "step %d is an empty list", i)
			}
			it = nested[0]
		}
		s, ok := it.(string)
		if !ok {
			return nil, decodeErr(op, "step %d is %T, want string", i, it)
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out, nil
}

func decodeErr(op, format string, args ...any) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  fmt.Errorf(format, args...),
	}
}
