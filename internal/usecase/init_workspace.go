package usecase

import (
	"errors"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/ports"
)

// InitWorkspace lays out a new vilain workspace through the initializer port.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute refuses an empty root; force overwrites existing templates.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
