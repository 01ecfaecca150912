package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
	"go.uber.org/goleak"
)

const testDomain = `(define (domain cooking)
  (:predicates
    (At ?o ?l) ; object o is at location l
  )
  (:action pick :parameters (?r ?o ?l) :precondition ((Robot ?r) (At ?o ?l)) :effect ((not (At ?o ?l))))
)`

const testProblem = `(define (problem p)
  (:domain cooking)
  (:objects robot - Robot cucumber - PhysicalObject)
  (:init (Robot robot))
  (:goal (and (At cucumber robot)))
)`

func TestParseDocuments_DomainAndProblem(t *testing.T) {
	dl := fakeDocLoader{docs: map[string]domain.Document{
		"d.pddl": {Path: "d.pddl", Text: testDomain},
		"p.pddl": {Path: "p.pddl", Text: testProblem},
	}}
	uc := NewParseDocuments(dl)

	d, err := uc.Domain(context.Background(), "d.pddl")
	if err != nil {
		t.Fatalf("domain: %v", err)
	}
	if d.Name != "cooking" || len(d.Actions) != 1 {
		t.Fatalf("unexpected domain %+v", d)
	}

	p, err := uc.Problem(context.Background(), "p.pddl")
	if err != nil {
		t.Fatalf("problem: %v", err)
	}
	if len(p.Objects) != 2 || len(p.Goal) != 1 {
		t.Fatalf("unexpected problem %+v", p)
	}
}

func TestParseDocuments_ErrorCarriesPath(t *testing.T) {
	dl := fakeDocLoader{docs: map[string]domain.Document{
		"bad.pddl": {Path: "problems/bad.pddl", Text: "(define (problem p))"},
	}}

	_, err := NewParseDocuments(dl).Problem(context.Background(), "bad.pddl")
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if oe.Path != "problems/bad.pddl" || oe.Kind != domain.KindStructuralNotFound {
		t.Fatalf("unexpected error %+v", oe)
	}
}

func TestParseDocuments_ParseAllKeepsOrderAndNoLeaks(t *testing.T) {
	defer goleak.VerifyNone(t)

	docs := map[string]domain.Document{}
	var refs []domain.DocumentRef
	for i := 0; i < 12; i++ {
		path := fmt.Sprintf("p%02d.pddl", i)
		text := testProblem
		if i == 7 {
			text = "(define (problem broken) (:objects a - T))"
		}
		docs[path] = domain.Document{Path: path, Text: text}
		refs = append(refs, domain.DocumentRef{Kind: domain.DocumentProblem, Name: path, Path: path})
	}

	uc := NewParseDocuments(fakeDocLoader{docs: docs, refs: refs}, WithConcurrency(3))
	results, err := uc.ParseAll(context.Background(), domain.DocumentProblem, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 12 {
		t.Fatalf("expected 12 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Ref.Path != refs[i].Path {
			t.Fatalf("result %d out of order: %s", i, r.Ref.Path)
		}
		if i == 7 {
			if r.Err == nil {
				t.Fatalf("expected failure for broken document")
			}
			continue
		}
		if r.Err != nil || len(r.Problem.Objects) != 2 {
			t.Fatalf("result %d: err=%v problem=%+v", i, r.Err, r.Problem)
		}
	}
}

func TestParseDocuments_ParseAllCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	refs := []domain.DocumentRef{{Path: "a"}, {Path: "b"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParseDocuments(fakeDocLoader{refs: refs}).ParseAll(ctx, domain.DocumentDomain, ".")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
