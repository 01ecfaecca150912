package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/usecase/extract"
)

const (
	partList   = "list"
	partObject = "object"
)

func extractCmd() *cobra.Command {
	var part string
	var strip bool

	c := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract a balanced fragment (init, goal, whole, list or object) from generated text",
		Long: "Reads generated text from a file, or from stdin when no file is given, and prints\n" +
			"the first well-formed fragment of the requested part.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			frag, err := extractPart(text, part)
			if err != nil {
				return err
			}
			if strip {
				frag = extract.StripComments(frag)
			}

			fmt.Fprintln(cmd.OutOrStdout(), frag)
			return nil
		},
	}

	c.Flags().StringVar(&part, "part", string(extract.PartWhole), "Part to extract: init|goal|whole|list|object")
	c.Flags().BoolVar(&strip, "strip-comments", false, "Remove ';' comments from the extracted fragment")
	return c
}

func extractPart(text, part string) (string, error) {
	switch part {
	case partList:
		return extract.Span(text, extract.Brackets)
	case partObject:
		return extract.JSONPayload(text)
	default:
		return extract.Extract(text, extract.Part(part))
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}
