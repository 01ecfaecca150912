package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func vocabCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vocab",
		Short: "Manage detection vocabularies in a workspace",
	}

	c.AddCommand(vocabListCmd())
	return c
}

func vocabListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vocabularies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			refs, err := ws.vocabs.ListVocabularies(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no vocabularies found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, relTo(ws.root, r.Path))
			}
			return nil
		},
	}
}

func boxesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "boxes",
		Short: "Manage fixed box sets in a workspace",
	}

	c.AddCommand(boxesListCmd())
	return c
}

func boxesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixed box sets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			refs, err := ws.boxes.ListBoxSets(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no box sets found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, relTo(ws.root, r.Path))
			}
			return nil
		},
	}
}
