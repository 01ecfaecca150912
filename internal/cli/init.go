package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/infra/fsworkspace"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a Vilain workspace (vilain.yaml, example domain, problem and vocabulary)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				logger.L().Error("workspace.init.failed", "root", root, "error", err)
				return err
			}

			logger.L().Info("workspace.init.ok", "root", root, "force", force)
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
