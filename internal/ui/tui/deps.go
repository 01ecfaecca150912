package tui

import (
	"log/slog"

	"github.com/aalvaropc/vilain/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool

	// LogPath is shown when the browser recovers from a panic.
	LogPath string
}
