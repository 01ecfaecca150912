package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/usecase"
	"github.com/aalvaropc/vilain/internal/usecase/pddl"
	"github.com/aalvaropc/vilain/internal/usecase/reconcile"
)

func generateCmd() *cobra.Command {
	var domainArg string
	var problemArg string
	var vocab string
	var attempts int
	var format string

	c := &cobra.Command{
		Use:       "generate <task>",
		Short:     "Generate a fragment for a task (init|goal|whole|plan|detect) with bounded retries",
		Args:      cobra.ExactArgs(1),
		ValidArgs: taskNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := domain.ParseTask(args[0])
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			known, err := knownContext(cmd.Context(), ws, domainArg, problemArg)
			if err != nil {
				return err
			}

			policy := usecase.DefaultRetryPolicy()
			policy.MaxAttempts = ws.cfg.Generation.MaxAttempts
			if attempts > 0 {
				policy.MaxAttempts = attempts
			}

			opts := []usecase.GenerateOption{
				usecase.WithRetryPolicy(policy),
				usecase.WithGenerateLogger(logger.Named("generate")),
			}
			if task == domain.TaskDetect {
				v, err := loadVocabulary(ws, vocab)
				if err != nil {
					return err
				}
				opts = append(opts, usecase.WithDetectionVocabulary(v))
			}

			res, err := usecase.NewGenerate(ws.gen, opts...).Execute(cmd.Context(), task, known)
			if err != nil {
				return err
			}
			return printGeneration(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVar(&domainArg, "domain", "", "Domain name or path; fills the {{domain}}, {{predicates}} and {{actions}} fixture placeholders (optional)")
	c.Flags().StringVar(&problemArg, "problem", "", "Problem name or path whose objects are passed as context (optional)")
	c.Flags().StringVar(&vocab, "vocab", "", "Vocabulary for detect output (optional; defaults to workspace default)")
	c.Flags().IntVar(&attempts, "max-attempts", 0, "Override generation.max_attempts")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func taskNames() []string {
	var out []string
	for _, t := range domain.Tasks() {
		out = append(out, string(t))
	}
	return out
}

// knownContext gathers declarative text a remote generator would be prompted
// with. Keys match the fixture placeholders: domain, predicates, actions,
// objects and init.
func knownContext(ctx context.Context, ws *workspaceCtx, domainArg, problemArg string) (map[string]string, error) {
	known := map[string]string{}
	uc := usecase.NewParseDocuments(ws.docs, usecase.WithParseLogger(logger.Named("parse")))

	if strings.TrimSpace(domainArg) != "" {
		path, err := resolveDocumentPath(ws, domain.DocumentDomain, domainArg)
		if err != nil {
			return nil, err
		}
		d, err := uc.Domain(ctx, path)
		if err != nil {
			return nil, err
		}
		known["domain"] = d.Raw
		known["predicates"] = pddl.DescribePredicates(d)
		known["actions"] = pddl.ActionsText(d)
	}

	if strings.TrimSpace(problemArg) != "" {
		path, err := resolveDocumentPath(ws, domain.DocumentProblem, problemArg)
		if err != nil {
			return nil, err
		}
		p, err := uc.Problem(ctx, path)
		if err != nil {
			return nil, err
		}
		known["objects"] = p.ObjectsText
		known["init"] = p.InitText
	}

	return known, nil
}

func loadVocabulary(ws *workspaceCtx, arg string) (domain.Vocabulary, error) {
	path, name := resolveVocabulary(ws, arg)
	if path != "" {
		return ws.vocabs.LoadVocabulary(path)
	}
	v, ok := reconcile.Builtin(name)
	if !ok {
		return domain.Vocabulary{}, &domain.OpError{
			Op:   "cli.vocabulary",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("vocabulary %q: %w", name, domain.ErrNotFound),
		}
	}
	return v, nil
}

type generationJSON struct {
	Task     string          `json:"task"`
	Attempts int             `json:"attempts"`
	Fragment string          `json:"fragment"`
	Init     []predicateJSON `json:"init,omitempty"`
	Goal     []predicateJSON `json:"goal,omitempty"`
	Plan     []string        `json:"plan,omitempty"`
	Boxes    []boxJSON       `json:"boxes,omitempty"`
}

func printGeneration(w io.Writer, res domain.GenerationResult, format string) error {
	switch format {
	case "json":
		out := generationJSON{
			Task:     string(res.Task),
			Attempts: res.Attempts,
			Fragment: res.Fragment,
			Plan:     res.Plan,
		}
		if len(res.Init) > 0 {
			out.Init = toPredicatesJSON(res.Init)
		}
		if len(res.Goal) > 0 {
			out.Goal = toPredicatesJSON(res.Goal)
		}
		for _, b := range res.Boxes {
			out.Boxes = append(out.Boxes, boxJSON{Label: b.Label, Box: b.Coords})
		}
		return writeJSON(w, out)

	case "pretty", "":
		fmt.Fprintf(w, "Task:     %s\n", res.Task)
		fmt.Fprintf(w, "Attempts: %d\n\n", res.Attempts)
		fmt.Fprintln(w, res.Fragment)

		switch {
		case len(res.Plan) > 0:
			fmt.Fprintf(w, "\nPlan (%d):\n", len(res.Plan))
			for i, step := range res.Plan {
				fmt.Fprintf(w, "  %d. %s\n", i+1, step)
			}
		case len(res.Boxes) > 0:
			fmt.Fprintf(w, "\nDetections (%d):\n%s\n", len(res.Boxes), reconcile.DescribeBoxes(res.Boxes))
		}
		return nil

	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
