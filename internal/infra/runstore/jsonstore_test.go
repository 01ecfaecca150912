package runstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/vilain/internal/domain"
)

func sampleArtifact(start time.Time) domain.ReconcileArtifact {
	return domain.ReconcileArtifact{
		ID:             "7f1c",
		DetectionsPath: "fixtures/Kitchen Scene.json",
		FixedBoxesPath: "boxes/fixed_objects.yaml",
		StartedAt:      start,
		FinishedAt:     start.Add(time.Second),
		Result: domain.Reconciliation{
			Vocabulary: "cooking",
			Frame:      domain.Frame{Width: 640, Height: 640},
			Objects: []domain.TypedObject{
				{Symbol: "carrot", Type: "PhysicalObject"},
			},
			Dropped: []domain.Drop{
				{Label: "mug", Reason: domain.DropUnrecognized},
			},
			ObjectsText: "(:objects\n    carrot - PhysicalObject\n)",
		},
	}
}

func TestSaveReconcile_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()

	store := NewJSONStore(tmp, domain.DefaultConfig())

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReconcile(sampleArtifact(start))
	if err != nil {
		t.Fatalf("SaveReconcile error: %v", err)
	}
	if id != "20260203T101112Z_kitchen-scene" {
		t.Fatalf("unexpected id %q", id)
	}

	wantFile := filepath.Join(tmp, "runs", id+".json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.ReconcileArtifact
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != "7f1c" {
		t.Fatalf("expected artifact id preserved, got=%q", decoded.ID)
	}
	if decoded.Result.ObjectsText == "" || len(decoded.Result.Objects) != 1 {
		t.Fatalf("expected objects persisted, got=%+v", decoded.Result)
	}

	if _, err := os.Stat(wantFile + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file removed, stat err=%v", err)
	}
}

func TestSaveReconcile_SlugFallsBackToVocabulary(t *testing.T) {
	tmp := t.TempDir()

	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return now }))

	run := sampleArtifact(time.Time{})
	run.DetectionsPath = ""

	id, err := store.SaveReconcile(run)
	if err != nil {
		t.Fatalf("SaveReconcile error: %v", err)
	}
	if id != "20260506T070809Z_cooking" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveReconcile_WritesIndex(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "out"
	store := NewJSONStore(tmp, cfg, WithIndex(true))

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	if _, err := store.SaveReconcile(sampleArtifact(start)); err != nil {
		t.Fatalf("SaveReconcile error: %v", err)
	}

	f, err := os.Open(filepath.Join(tmp, "out", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatalf("expected one index line")
	}
	var line map[string]any
	if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal index line: %v", err)
	}
	if line["run_id"] != "7f1c" || line["vocabulary"] != "cooking" {
		t.Fatalf("unexpected index line %v", line)
	}
	if line["objects"] != float64(1) || line["dropped"] != float64(1) {
		t.Fatalf("unexpected counts %v", line)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Kitchen Scene": "kitchen-scene",
		"  a__b..c  ":   "a-b-c",
		"!!!":           "",
		"detections_v2": "detections-v2",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q)=%q want %q", in, got, want)
		}
	}
}
