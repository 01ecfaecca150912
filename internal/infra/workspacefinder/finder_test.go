package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "problems", "kitchen")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "vilain.yaml"), []byte("vilain: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "vilain.yaml"), []byte("vilain: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	file := filepath.Join(root, "p.pddl")
	if err := os.WriteFile(file, []byte("(define)"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	_, err := NewFinder().FindRoot(filepath.Join(tmp, "a", "b"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}

	_, err = NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for empty start, got: %v", err)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	outer := t.TempDir()
	if err := os.WriteFile(filepath.Join(outer, "vilain.yaml"), []byte("vilain: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	inner := filepath.Join(outer, "nested")
	if err := os.MkdirAll(filepath.Join(inner, "vilain.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := (&Finder{}).FindRoot(inner)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != outer {
		t.Fatalf("expected root=%s, got=%s", outer, got)
	}
}
