package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/config"
	"github.com/aalvaropc/vilain/internal/usecase/pddl"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, rel := range []string{
		"vilain.yaml",
		"domains/cooking.pddl",
		"problems/chop_carrot.pddl",
		"vocabularies/cooking.yaml",
		"boxes/fixed_objects.yaml",
		"fixtures/init.txt",
		"fixtures/detect.txt",
	} {
		assertFileExists(t, filepath.Join(tmp, filepath.FromSlash(rel)))
	}
	for _, rel := range []string{"runs", ".vilain/logs"} {
		info, err := os.Stat(filepath.Join(tmp, filepath.FromSlash(rel)))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s, err=%v", rel, err)
		}
	}
}

func TestInitializer_TemplatesAreValid(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "domains", "cooking.pddl"))
	if err != nil {
		t.Fatalf("read domain: %v", err)
	}
	d, err := pddl.ParseDomain(string(b))
	if err != nil {
		t.Fatalf("template domain does not parse: %v", err)
	}
	if len(d.Predicates) != 5 || len(d.Actions) != 4 {
		t.Fatalf("unexpected domain shape: %d predicates, %d actions", len(d.Predicates), len(d.Actions))
	}

	b, err = os.ReadFile(filepath.Join(tmp, "problems", "chop_carrot.pddl"))
	if err != nil {
		t.Fatalf("read problem: %v", err)
	}
	p, err := pddl.ParseProblem(string(b))
	if err != nil {
		t.Fatalf("template problem does not parse: %v", err)
	}
	if len(p.Init) != 4 || len(p.Goal) != 2 {
		t.Fatalf("unexpected problem shape: %d init, %d goal", len(p.Init), len(p.Goal))
	}

	if _, err := config.LoadVocabulary(filepath.Join(tmp, "vocabularies", "cooking.yaml")); err != nil {
		t.Fatalf("template vocabulary does not load: %v", err)
	}
	if _, err := config.LoadBoxSet(filepath.Join(tmp, "boxes", "fixed_objects.yaml")); err != nil {
		t.Fatalf("template boxes do not load: %v", err)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "vilain.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing vilain.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read vilain.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected vilain.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read vilain.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "vilain:") {
		t.Fatalf("expected vilain.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func TestInitializer_Init_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewInitializer().Init(domain.WorkspaceSpec{Root: file}, false)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
}
