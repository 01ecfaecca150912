package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/usecase"
)

func domainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "domain",
		Short: "Work with domain definitions",
	}
	c.AddCommand(parseCmd(domain.DocumentDomain))
	return c
}

func problemCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "problem",
		Short: "Work with problem instances",
	}
	c.AddCommand(parseCmd(domain.DocumentProblem))
	return c
}

func parseCmd(kind domain.DocumentKind) *cobra.Command {
	var format string
	var all bool

	c := &cobra.Command{
		Use:   "parse [name|path]",
		Short: fmt.Sprintf("Parse a %s document and print its structure", kind),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("%s name or path is required (or use --all)", kind)
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			uc := usecase.NewParseDocuments(ws.docs, usecase.WithParseLogger(logger.Named("parse")))
			out := cmd.OutOrStdout()

			if all {
				results, err := uc.ParseAll(cmd.Context(), kind, ws.root)
				if err != nil {
					return err
				}
				return printParseAll(out, ws.root, results, format)
			}

			path, err := resolveDocumentPath(ws, kind, args[0])
			if err != nil {
				return err
			}

			switch kind {
			case domain.DocumentDomain:
				d, err := uc.Domain(cmd.Context(), path)
				if err != nil {
					return err
				}
				return printDomain(out, d, format)
			default:
				p, err := uc.Problem(cmd.Context(), path)
				if err != nil {
					return err
				}
				return printProblem(out, p, format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&all, "all", false, fmt.Sprintf("Parse every %s document in the workspace", kind))
	return c
}

type predicateJSON struct {
	Name    string   `json:"name"`
	Args    []string `json:"args"`
	Raw     string   `json:"raw"`
	Comment string   `json:"comment,omitempty"`
}

type actionJSON struct {
	Name         string          `json:"name"`
	Parameters   string          `json:"parameters"`
	Precondition []predicateJSON `json:"precondition"`
	Effect       []predicateJSON `json:"effect"`
}

type domainJSON struct {
	Name       string          `json:"name"`
	Predicates []predicateJSON `json:"predicates"`
	Actions    []actionJSON    `json:"actions"`
}

type objectJSON struct {
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
}

type problemJSON struct {
	Name    string          `json:"name"`
	Domain  string          `json:"domain,omitempty"`
	Objects []objectJSON    `json:"objects"`
	Init    []predicateJSON `json:"init"`
	Goal    []predicateJSON `json:"goal"`
}

func toPredicatesJSON(in []domain.Predicate) []predicateJSON {
	out := make([]predicateJSON, 0, len(in))
	for _, p := range in {
		args := p.Args
		if args == nil {
			args = []string{}
		}
		out = append(out, predicateJSON{Name: p.Name, Args: args, Raw: p.Raw, Comment: p.Comment})
	}
	return out
}

func toDomainJSON(d domain.Domain) domainJSON {
	out := domainJSON{
		Name:       d.Name,
		Predicates: toPredicatesJSON(d.Predicates),
		Actions:    make([]actionJSON, 0, len(d.Actions)),
	}
	for _, a := range d.Actions {
		out.Actions = append(out.Actions, actionJSON{
			Name:         a.Name,
			Parameters:   a.Parameters,
			Precondition: toPredicatesJSON(a.Precondition),
			Effect:       toPredicatesJSON(a.Effect),
		})
	}
	return out
}

func toProblemJSON(p domain.Problem) problemJSON {
	out := problemJSON{
		Name:    p.Name,
		Domain:  p.DomainName,
		Objects: make([]objectJSON, 0, len(p.Objects)),
		Init:    toPredicatesJSON(p.Init),
		Goal:    toPredicatesJSON(p.Goal),
	}
	for _, o := range p.Objects {
		out.Objects = append(out.Objects, objectJSON{Symbol: o.Symbol, Type: o.Type})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDomain(w io.Writer, d domain.Domain, format string) error {
	switch format {
	case "json":
		return writeJSON(w, toDomainJSON(d))
	case "pretty", "":
		printPrettyDomain(w, d)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyDomain(w io.Writer, d domain.Domain) {
	fmt.Fprintf(w, "Domain: %s\n\n", d.Name)

	fmt.Fprintf(w, "Predicates (%d):\n", len(d.Predicates))
	for _, p := range d.Predicates {
		if p.Comment != "" {
			fmt.Fprintf(w, "  - %s  ; %s\n", p.Raw, p.Comment)
			continue
		}
		fmt.Fprintf(w, "  - %s\n", p.Raw)
	}

	fmt.Fprintf(w, "\nActions (%d):\n", len(d.Actions))
	for _, a := range d.Actions {
		fmt.Fprintf(w, "  - %s %s\n", a.Name, a.Parameters)
		fmt.Fprintf(w, "      pre: %s\n", joinRaw(a.Precondition))
		fmt.Fprintf(w, "      eff: %s\n", joinRaw(a.Effect))
	}
}

func printProblem(w io.Writer, p domain.Problem, format string) error {
	switch format {
	case "json":
		return writeJSON(w, toProblemJSON(p))
	case "pretty", "":
		printPrettyProblem(w, p)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyProblem(w io.Writer, p domain.Problem) {
	fmt.Fprintf(w, "Problem: %s\n", p.Name)
	if p.DomainName != "" {
		fmt.Fprintf(w, "Domain:  %s\n", p.DomainName)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Objects (%d):\n", len(p.Objects))
	for _, o := range p.Objects {
		fmt.Fprintf(w, "  - %s - %s\n", o.Symbol, o.Type)
	}
	fmt.Fprintf(w, "\nInit (%d):\n", len(p.Init))
	for _, q := range p.Init {
		fmt.Fprintf(w, "  - %s\n", q.Raw)
	}
	fmt.Fprintf(w, "\nGoal (%d):\n", len(p.Goal))
	for _, q := range p.Goal {
		fmt.Fprintf(w, "  - %s\n", q.Raw)
	}
}

func joinRaw(preds []domain.Predicate) string {
	if len(preds) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, p.Raw)
	}
	return strings.Join(parts, " ")
}

func printParseAll(w io.Writer, root string, results []usecase.ParseResult, format string) error {
	fails := 0
	for _, r := range results {
		if r.Err != nil {
			fails++
		}
	}

	switch format {
	case "json":
		type entry struct {
			Name    string       `json:"name"`
			Path    string       `json:"path"`
			Error   string       `json:"error,omitempty"`
			Domain  *domainJSON  `json:"domain,omitempty"`
			Problem *problemJSON `json:"problem,omitempty"`
		}
		entries := make([]entry, 0, len(results))
		for _, r := range results {
			e := entry{Name: r.Ref.Name, Path: relTo(root, r.Ref.Path)}
			switch {
			case r.Err != nil:
				e.Error = r.Err.Error()
			case r.Ref.Kind == domain.DocumentDomain:
				d := toDomainJSON(r.Domain)
				e.Domain = &d
			default:
				p := toProblemJSON(r.Problem)
				e.Problem = &p
			}
			entries = append(entries, e)
		}
		if err := writeJSON(w, entries); err != nil {
			return err
		}

	case "pretty", "":
		if len(results) == 0 {
			fmt.Fprintln(w, "(no documents found)")
			return nil
		}
		for _, r := range results {
			rel := relTo(root, r.Ref.Path)
			if r.Err != nil {
				fmt.Fprintf(w, "- [FAIL] %s  (%s)\n    %v\n", r.Ref.Name, rel, r.Err)
				continue
			}
			if r.Ref.Kind == domain.DocumentDomain {
				fmt.Fprintf(w, "- [OK]   %s  (%s) predicates=%d actions=%d\n",
					r.Ref.Name, rel, len(r.Domain.Predicates), len(r.Domain.Actions))
				continue
			}
			fmt.Fprintf(w, "- [OK]   %s  (%s) objects=%d init=%d goal=%d\n",
				r.Ref.Name, rel, len(r.Problem.Objects), len(r.Problem.Init), len(r.Problem.Goal))
		}

	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}

	if fails > 0 {
		return fmt.Errorf("parse failed (%d of %d document(s))", fails, len(results))
	}
	return nil
}

func relTo(root, p string) string {
	if rel, err := filepath.Rel(root, p); err == nil {
		return rel
	}
	return p
}
