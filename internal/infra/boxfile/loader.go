package boxfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/config"
	"github.com/aalvaropc/vilain/internal/ports"
)

type Loader struct {
	rootDir  string
	boxesDir string
}

type Option func(*Loader)

func WithBoxesDir(dir string) Option {
	return func(l *Loader) { l.boxesDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:  root,
		boxesDir: "boxes",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.BoxSetLoader = (*Loader)(nil)

// LoadBoxes accepts either a box set name (e.g., "fixed_objects") or a path
// to a YAML/JSON file.
func (l *Loader) LoadBoxes(nameOrPath string) ([]domain.Box, error) {
	if hasBoxExt(nameOrPath) || strings.Contains(nameOrPath, string(filepath.Separator)) {
		return config.LoadBoxSet(filepath.Clean(nameOrPath))
	}

	dir := filepath.Join(l.rootDir, l.boxesDir)
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(dir, nameOrPath+ext)
		if _, err := os.Stat(p); err == nil {
			return config.LoadBoxSet(p)
		}
	}
	return nil, &domain.OpError{
		Op:   "boxfile.load",
		Kind: domain.KindNotFound,
		Path: filepath.Join(dir, nameOrPath+".yaml"),
		Err:  domain.ErrNotFound,
	}
}

func (l *Loader) ListBoxSets(root string) ([]domain.BoxSetRef, error) {
	dir := filepath.Join(root, l.boxesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "boxfile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.BoxSetRef
	for _, e := range entries {
		if e.IsDir() || !hasBoxExt(e.Name()) {
			continue
		}
		refs = append(refs, domain.BoxSetRef{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasBoxExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
