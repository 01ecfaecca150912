package yamlvocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCatalog_LoadByNameAndPath(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "vocabularies", "pantry.yaml")
	writeFile(t, p, `
detect: [jar, tin]
categories:
  - type: Container
    labels: [jar, tin]
`)

	c := NewCatalog(root)

	v, err := c.LoadVocabulary("pantry")
	if err != nil {
		t.Fatalf("LoadVocabulary error: %v", err)
	}
	if v.Name != "pantry" || len(v.Detect) != 2 {
		t.Fatalf("unexpected vocabulary %+v", v)
	}

	if _, err := c.LoadVocabulary(p); err != nil {
		t.Fatalf("load by path: %v", err)
	}

	if got, ok := c.Resolve("pantry"); !ok || got != p {
		t.Fatalf("expected resolve to %s, got %s ok=%v", p, got, ok)
	}
	if _, ok := c.Resolve("cooking"); ok {
		t.Fatalf("expected cooking to be unresolved")
	}
}

func TestCatalog_ListVocabulariesSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vocabularies", "b.yaml"), "name: zeta\ndetect: [x]\n")
	writeFile(t, filepath.Join(root, "vocabularies", "a.yml"), "detect: [y]\n")
	writeFile(t, filepath.Join(root, "vocabularies", "notes.txt"), "ignored")

	refs, err := NewCatalog(root).ListVocabularies(root)
	if err != nil {
		t.Fatalf("ListVocabularies error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Name != "a" || refs[1].Name != "zeta" {
		t.Fatalf("unexpected order %+v", refs)
	}
}

func TestCatalog_ListMissingDir(t *testing.T) {
	_, err := NewCatalog("x").ListVocabularies(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
