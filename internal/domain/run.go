package domain

import "time"

// ReconcileArtifact represents a persisted reconciliation for reproducibility.
type ReconcileArtifact struct {
	ID string

	DetectionsPath string
	FixedBoxesPath string

	StartedAt  time.Time
	FinishedAt time.Time

	Result Reconciliation
}
