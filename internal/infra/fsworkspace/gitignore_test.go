package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var ignored = []string{"runs/", ".vilain/"}

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp, ignored); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	s := string(b)
	for _, w := range []string{"# Vilain", "runs/", ".vilain/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "__pycache__/\n# Vilain\nruns/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, ignored); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.HasPrefix(s, "__pycache__/\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# Vilain") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "runs/") != 1 {
		t.Fatalf("expected runs/ not duplicated, got:\n%s", s)
	}
	if !strings.Contains(s, ".vilain/") {
		t.Fatalf("expected .vilain/ appended, got:\n%s", s)
	}

	// A second pass is a no-op.
	if err := ensureGitignore(tmp, ignored); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}
	again, _ := os.ReadFile(path)
	if string(again) != s {
		t.Fatalf("expected idempotent update, got:\n%s", again)
	}
}
