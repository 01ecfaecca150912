package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
	"github.com/aalvaropc/vilain/internal/usecase/extract"
	"github.com/aalvaropc/vilain/internal/usecase/reconcile"
	"github.com/google/uuid"
)

// ReconcileInput describes one reconciliation request.
type ReconcileInput struct {
	// Detections is the raw detector output (prose around the payload is fine).
	Detections     string
	DetectionsPath string

	// FixedPath is optional; no fixed boxes are merged when empty.
	FixedPath string

	// VocabularyPath wins over VocabularyName. A name without a path
	// selects a built-in vocabulary.
	VocabularyPath string
	VocabularyName string

	// Zero frame falls back to the configured default.
	Frame domain.Frame

	Save bool
}

type ReconcileDetections struct {
	vocabs ports.VocabularyCatalog
	boxes  ports.BoxSetLoader
	store  ports.ArtifactStore
	cfg    domain.Config
	log    *slog.Logger
	now    func() time.Time
	newID  func() string
}

type ReconcileOption func(*ReconcileDetections)

func WithReconcileLogger(l *slog.Logger) ReconcileOption {
	return func(uc *ReconcileDetections) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) ReconcileOption {
	return func(uc *ReconcileDetections) { uc.now = now }
}

func WithIDGenerator(gen func() string) ReconcileOption {
	return func(uc *ReconcileDetections) { uc.newID = gen }
}

// NewReconcileDetections wires the use case. store may be nil.
func NewReconcileDetections(vc ports.VocabularyCatalog, bl ports.BoxSetLoader, store ports.ArtifactStore, cfg domain.Config, opts ...ReconcileOption) *ReconcileDetections {
	uc := &ReconcileDetections{
		vocabs: vc,
		boxes:  bl,
		store:  store,
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ReconcileDetections) Execute(ctx context.Context, in ReconcileInput) (domain.ReconcileArtifact, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReconcileArtifact{}, "", err
	}

	started := uc.now()

	vocab, err := uc.vocabulary(in)
	if err != nil {
		return domain.ReconcileArtifact{}, "", err
	}

	var fixed []domain.Box
	if strings.TrimSpace(in.FixedPath) != "" {
		fixed, err = uc.boxes.LoadBoxes(in.FixedPath)
		if err != nil {
			return domain.ReconcileArtifact{}, "", err
		}
	}

	raw, err := extract.Detections(in.Detections, vocab.LabelPath, vocab.BoxPath)
	if err != nil {
		return domain.ReconcileArtifact{}, "", withPath(err, in.DetectionsPath)
	}

	frame := in.Frame
	if frame.Width <= 0 || frame.Height <= 0 {
		frame = uc.cfg.Defaults.Frame
	}

	res, err := reconcile.Reconcile(raw, fixed, reconcile.Options{
		Frame:        frame,
		Vocabulary:   vocab,
		SameLabelIoU: uc.cfg.Thresholds.SameLabelIoU,
		AnyLabelIoU:  uc.cfg.Thresholds.AnyLabelIoU,
	})
	if err != nil {
		return domain.ReconcileArtifact{}, "", withPath(err, in.FixedPath)
	}

	for _, d := range res.Dropped {
		uc.log.Debug("reconcile.dropped", "label", d.Label, "reason", d.Reason, "iou", d.IoU, "against", d.Against)
	}
	uc.log.Info("reconcile.ok",
		"vocabulary", vocab.Name,
		"detections", len(raw),
		"fixed", len(fixed),
		"objects", len(res.Objects),
		"dropped", len(res.Dropped),
	)

	art := domain.ReconcileArtifact{
		ID:             uc.newID(),
		DetectionsPath: in.DetectionsPath,
		FixedBoxesPath: in.FixedPath,
		StartedAt:      started,
		FinishedAt:     uc.now(),
		Result:         res,
	}

	if !in.Save || uc.store == nil {
		return art, "", nil
	}
	id, err := uc.store.SaveReconcile(art)
	if err != nil {
		return art, "", err
	}
	return art, id, nil
}

func (uc *ReconcileDetections) vocabulary(in ReconcileInput) (domain.Vocabulary, error) {
	if strings.TrimSpace(in.VocabularyPath) != "" {
		return uc.vocabs.LoadVocabulary(in.VocabularyPath)
	}

	name := strings.TrimSpace(in.VocabularyName)
	if name == "" {
		name = uc.cfg.Defaults.Vocabulary
	}
	v, ok := reconcile.Builtin(name)
	if !ok {
		return domain.Vocabulary{}, &domain.OpError{
			Op:   "reconcile.vocabulary",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("vocabulary %q: %w", name, domain.ErrNotFound),
		}
	}
	return v, nil
}
