package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
)

const defaultRunsDir = "runs"

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// SaveReconcile writes runs/<timestamp>_<slug>.json and returns its id
// (the filename without extension).
func (s *JSONStore) SaveReconcile(run domain.ReconcileArtifact) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	slug := slugify(stem(run.DetectionsPath))
	if slug == "" {
		slug = slugify(run.Result.Vocabulary)
	}
	if slug == "" {
		slug = "reconcile"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.ReconcileArtifact) error {
	type idx struct {
		ID         string    `json:"id"`
		RunID      string    `json:"run_id"`
		File       string    `json:"file"`
		Vocabulary string    `json:"vocabulary"`
		Objects    int       `json:"objects"`
		Dropped    int       `json:"dropped"`
		StartedAt  time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:         id,
		RunID:      run.ID,
		File:       filename,
		Vocabulary: run.Result.Vocabulary,
		Objects:    len(run.Result.Objects),
		Dropped:    len(run.Result.Dropped),
		StartedAt:  run.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

func stem(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
