package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aalvaropc/vilain/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeDocLoader struct {
	docs map[string]domain.Document
	refs []domain.DocumentRef
}

func (f fakeDocLoader) LoadDocument(kind domain.DocumentKind, path string) (domain.Document, error) {
	d, ok := f.docs[path]
	if !ok {
		return domain.Document{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	d.Kind = kind
	return d, nil
}

func (f fakeDocLoader) ListDocuments(_ domain.DocumentKind, _ string) ([]domain.DocumentRef, error) {
	return f.refs, nil
}

type fakeVocabCatalog struct {
	vocab domain.Vocabulary
	err   error
}

func (f fakeVocabCatalog) ListVocabularies(_ string) ([]domain.VocabularyRef, error) {
	return nil, nil
}

func (f fakeVocabCatalog) LoadVocabulary(_ string) (domain.Vocabulary, error) {
	return f.vocab, f.err
}

type fakeBoxLoader struct {
	boxes []domain.Box
	err   error
}

func (f fakeBoxLoader) ListBoxSets(_ string) ([]domain.BoxSetRef, error) {
	return nil, nil
}

func (f fakeBoxLoader) LoadBoxes(_ string) ([]domain.Box, error) {
	return f.boxes, f.err
}

type fakeStore struct {
	saved bool
	last  domain.ReconcileArtifact
}

func (s *fakeStore) SaveReconcile(run domain.ReconcileArtifact) (string, error) {
	s.saved = true
	s.last = run
	return "run-123", nil
}

type errStore struct{ err error }

func (s *errStore) SaveReconcile(_ domain.ReconcileArtifact) (string, error) { return "", s.err }

// scriptedGenerator returns outputs in order, one per call.
type scriptedGenerator struct {
	mu       sync.Mutex
	outputs  []string
	errs     []error
	requests []domain.GenerationRequest
}

func (g *scriptedGenerator) Generate(_ context.Context, req domain.GenerationRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := len(g.requests)
	g.requests = append(g.requests, req)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.outputs) {
		return g.outputs[i], nil
	}
	return "", errors.New("no scripted output")
}

func (g *scriptedGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func errTransient(n int) error {
	return fmt.Errorf("transient failure %d", n)
}
