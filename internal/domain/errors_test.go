package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "pddl.parse_domain",
		Kind: KindInvalidConfig,
		Path: "domains/cooking.pddl",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=domains/cooking.pddl") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{
		Op:   "x",
		Kind: KindNotFound,
	}

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind mismatch")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("plain errors have no kind")
	}
}

func TestStructuralNotFoundWrapsSentinel(t *testing.T) {
	err := StructuralNotFound("pddl.parse_problem", "missing %s section", "(:goal")

	if !errors.Is(err, ErrStructuralNotFound) {
		t.Fatalf("expected sentinel in chain, got %v", err)
	}
	if !IsKind(err, KindStructuralNotFound) {
		t.Fatalf("expected structural kind")
	}
	if !strings.Contains(err.Error(), "(:goal") {
		t.Fatalf("expected marker in message, got %q", err.Error())
	}
}

func TestUnbalancedWrapsSentinel(t *testing.T) {
	err := Unbalanced("extract.span", "no closing %q", ")")

	if !errors.Is(err, ErrUnbalancedDelimiters) {
		t.Fatalf("expected sentinel in chain, got %v", err)
	}
	if !IsKind(err, KindUnbalanced) {
		t.Fatalf("expected unbalanced kind")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
