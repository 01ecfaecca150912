package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidConfig          = errors.New("invalid config")
	ErrExecution              = errors.New("execution error")
	ErrStructuralNotFound     = errors.New("structural element not found")
	ErrUnbalancedDelimiters   = errors.New("unbalanced delimiters")
	ErrInvalidCoordinateRange = errors.New("coordinate outside [0,1]")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindExecution          ErrorKind = "execution"
	KindStructuralNotFound ErrorKind = "structural_not_found"
	KindUnbalanced         ErrorKind = "unbalanced_delimiters"
	KindInvalidCoordinate  ErrorKind = "invalid_coordinate_range"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// StructuralNotFound reports a required marker or section that is absent.
func StructuralNotFound(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindStructuralNotFound,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrStructuralNotFound),
	}
}

// Unbalanced reports a fragment whose nesting depth never returns to zero.
func Unbalanced(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindUnbalanced,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnbalancedDelimiters),
	}
}
