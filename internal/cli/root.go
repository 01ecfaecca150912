package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/infra/fsworkspace"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/infra/workspacefinder"
	"github.com/aalvaropc/vilain/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "vilain",
		Short:        "Vilain: planning definitions from generated text and scene detections",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c, _ := logger.Setup(logger.Config{
				Root:  logRoot(workspace),
				Debug: debug,
			})
			cleanup = c
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.Named("tui"),
				Debug:                debug,
				LogPath:              logger.Path(),
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .vilain/logs/vilain.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		initCmd(),
		versionCmd(),
		domainCmd(),
		problemCmd(),
		extractCmd(),
		reconcileCmd(),
		generateCmd(),
		vocabCmd(),
		boxesCmd(),
	)
	return cmd
}

// logRoot picks where .vilain/logs lives: the workspace when one is
// found, the working directory otherwise.
func logRoot(workspaceFlag string) string {
	if root, err := resolveWorkspaceRoot(workspaceFlag); err == nil {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	wd, _ = filepath.Abs(wd)
	return wd
}
