package domain

import "testing"

func TestVocabularyTypeOfFirstCategoryWins(t *testing.T) {
	v := Vocabulary{
		Categories: []Category{
			{Type: "Robot", Labels: []string{"robot"}},
			{Type: "PhysicalObject", Labels: []string{"cucumber", "knife"}},
			{Type: "Tool", Labels: []string{"knife"}},
		},
	}

	if got, ok := v.TypeOf("knife"); !ok || got != "PhysicalObject" {
		t.Fatalf("expected PhysicalObject, got=%q ok=%v", got, ok)
	}
	if _, ok := v.TypeOf("knife_holder"); ok {
		t.Fatalf("expected exact match only")
	}
}

func TestParseTask(t *testing.T) {
	if got, err := ParseTask("goal"); err != nil || got != TaskGoal {
		t.Fatalf("expected goal, got=%q err=%v", got, err)
	}
	_, err := ParseTask("dance")
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestBoxAreaDegenerate(t *testing.T) {
	if a := (Box{Coords: [4]float64{5, 5, 5, 10}}).Area(); a != 0 {
		t.Fatalf("expected zero area, got %v", a)
	}
	if a := (Box{Coords: [4]float64{0, 0, 2, 3}}).Area(); a != 6 {
		t.Fatalf("expected 6, got %v", a)
	}
}
