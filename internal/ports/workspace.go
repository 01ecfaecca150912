package ports

import "github.com/aalvaropc/vilain/internal/domain"

// WorkspaceInitializer lays out a new workspace on disk.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
