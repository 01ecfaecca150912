package domain

import "testing"

func TestDomainLookupKeepsLastDuplicate(t *testing.T) {
	preds := []Predicate{
		{Raw: "(At ?o ?l)", Name: "At", Args: []string{"?o", "?l"}},
		{Raw: "(At ?o)", Name: "At", Args: []string{"?o"}},
	}
	d := NewDomain("cooking", "", "", preds, nil)

	p, ok := d.Predicate("At")
	if !ok {
		t.Fatalf("expected At")
	}
	if p.Arity() != 1 {
		t.Fatalf("expected last declaration (arity 1), got %d", p.Arity())
	}
	if len(d.Predicates) != 2 {
		t.Fatalf("expected both declarations kept, got %d", len(d.Predicates))
	}
	if _, ok := d.Action("pick"); ok {
		t.Fatalf("expected no actions")
	}
}

func TestProblemObjectsOfType(t *testing.T) {
	p := Problem{Objects: []ObjectDecl{
		{Symbol: "robot", Type: "Robot"},
		{Symbol: "cucumber", Type: "PhysicalObject"},
		{Symbol: "plate", Type: "PhysicalObject"},
	}}
	got := p.ObjectsOfType("PhysicalObject")
	if len(got) != 2 || got[0] != "cucumber" || got[1] != "plate" {
		t.Fatalf("unexpected objects: %v", got)
	}
}
