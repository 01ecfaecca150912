package pddlfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
)

// Loader reads domain and problem documents from the workspace.
type Loader struct {
	domainsDir  string
	problemsDir string
}

type Option func(*Loader)

func WithDomainsDir(dir string) Option {
	return func(l *Loader) { l.domainsDir = dir }
}

func WithProblemsDir(dir string) Option {
	return func(l *Loader) { l.problemsDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{domainsDir: "domains", problemsDir: "problems"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.DocumentLoader = (*Loader)(nil)

func (l *Loader) LoadDocument(kind domain.DocumentKind, path string) (domain.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "pddlfs.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return domain.Document{
		Kind: kind,
		Name: stem(path),
		Path: path,
		Text: string(b),
	}, nil
}

func (l *Loader) ListDocuments(kind domain.DocumentKind, root string) ([]domain.DocumentRef, error) {
	sub, err := l.dirFor(kind)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(root, sub)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pddlfs.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.DocumentRef
	for _, e := range entries {
		if e.IsDir() || !HasPDDLExt(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		refs = append(refs, domain.DocumentRef{Kind: kind, Name: stem(p), Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Dir returns the workspace-relative directory holding documents of kind.
func (l *Loader) Dir(kind domain.DocumentKind) string {
	d, _ := l.dirFor(kind)
	return d
}

func (l *Loader) dirFor(kind domain.DocumentKind) (string, error) {
	switch kind {
	case domain.DocumentDomain:
		return l.domainsDir, nil
	case domain.DocumentProblem:
		return l.problemsDir, nil
	default:
		return "", &domain.OpError{
			Op:   "pddlfs.dir",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown document kind %q", kind),
		}
	}
}

func HasPDDLExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pddl")
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
