package yamlvocab

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/config"
	"github.com/aalvaropc/vilain/internal/ports"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	rootDir  string
	vocabDir string
}

type Option func(*Catalog)

func WithVocabulariesDir(dir string) Option {
	return func(c *Catalog) { c.vocabDir = dir }
}

func NewCatalog(root string, opts ...Option) *Catalog {
	c := &Catalog{rootDir: root, vocabDir: "vocabularies"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.VocabularyCatalog = (*Catalog)(nil)

// LoadVocabulary accepts either a vocabulary name (e.g., "cooking") or a path to a YAML file.
func (c *Catalog) LoadVocabulary(nameOrPath string) (domain.Vocabulary, error) {
	return config.LoadVocabulary(c.pathFor(nameOrPath))
}

// Resolve returns the file backing a vocabulary name, if the workspace has one.
func (c *Catalog) Resolve(name string) (string, bool) {
	p := c.pathFor(name)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func (c *Catalog) pathFor(nameOrPath string) string {
	if hasYAMLExt(nameOrPath) || strings.Contains(nameOrPath, string(filepath.Separator)) {
		return filepath.Clean(nameOrPath)
	}
	return filepath.Join(c.rootDir, c.vocabDir, nameOrPath+".yaml")
}

func (c *Catalog) ListVocabularies(root string) ([]domain.VocabularyRef, error) {
	dir := filepath.Join(root, c.vocabDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlvocab.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.VocabularyRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n, _ := readVocabularyName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.VocabularyRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readVocabularyName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func hasYAMLExt(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
