package ports

import "github.com/aalvaropc/vilain/internal/domain"

// ArtifactStore persists reconciliation artifacts for reproducibility.
type ArtifactStore interface {
	SaveReconcile(run domain.ReconcileArtifact) (id string, err error)
}
