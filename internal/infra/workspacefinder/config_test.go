package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/vilain/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "vilain.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := writeConfig(t, "vilain:\n  generation:\n    use_fixture: false\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Generation.UseFixture {
		t.Fatalf("expected use_fixture=false")
	}
	if cfg.Generation.MaxAttempts != 5 {
		t.Fatalf("expected default max attempts=5, got=%d", cfg.Generation.MaxAttempts)
	}
	if cfg.Defaults.Vocabulary != "cooking" {
		t.Fatalf("expected default vocabulary=cooking, got=%s", cfg.Defaults.Vocabulary)
	}
	if cfg.Defaults.Frame != (domain.Frame{Width: 640, Height: 640}) {
		t.Fatalf("expected default frame 640x640, got=%s", cfg.Defaults.Frame)
	}
	if cfg.Thresholds.SameLabelIoU != 0.9 || cfg.Thresholds.AnyLabelIoU != 0.99 {
		t.Fatalf("unexpected thresholds %+v", cfg.Thresholds)
	}
	if cfg.Paths.DomainsDir != "domains" || cfg.Paths.RunsDir != "runs" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	root := writeConfig(t, `vilain:
  defaults:
    vocabulary: kitchen
    frame: { width: 1280, height: 720 }
  thresholds:
    same_label_iou: 0.8
  generation:
    max_attempts: 2
    fixtures:
      init: fixtures/init.txt
      detect: fixtures/detect
  paths:
    domains_dir: defs
    runs_dir: out
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Defaults.Vocabulary != "kitchen" {
		t.Fatalf("vocabulary=%s", cfg.Defaults.Vocabulary)
	}
	if cfg.Defaults.Frame.String() != "1280x720" {
		t.Fatalf("frame=%s", cfg.Defaults.Frame)
	}
	if cfg.Thresholds.SameLabelIoU != 0.8 || cfg.Thresholds.AnyLabelIoU != 0.99 {
		t.Fatalf("thresholds=%+v", cfg.Thresholds)
	}
	if cfg.Generation.MaxAttempts != 2 {
		t.Fatalf("max attempts=%d", cfg.Generation.MaxAttempts)
	}
	if cfg.Generation.Fixtures[domain.TaskInit] != "fixtures/init.txt" || cfg.Generation.Fixtures[domain.TaskDetect] != "fixtures/detect" {
		t.Fatalf("fixtures=%v", cfg.Generation.Fixtures)
	}
	if cfg.Paths.DomainsDir != "defs" || cfg.Paths.RunsDir != "out" || cfg.Paths.ProblemsDir != "problems" {
		t.Fatalf("paths=%+v", cfg.Paths)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "vilain: [",
		"unknown task":    "vilain:\n  generation:\n    fixtures:\n      summarize: x.txt\n",
		"threshold range": "vilain:\n  thresholds:\n    any_label_iou: 1.5\n",
		"negative frame":  "vilain:\n  defaults:\n    frame: { width: -1, height: 10 }\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got: %v", err)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}
