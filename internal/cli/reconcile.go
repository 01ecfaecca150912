package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/logger"
	"github.com/aalvaropc/vilain/internal/usecase"
	"github.com/aalvaropc/vilain/internal/usecase/reconcile"
)

func reconcileCmd() *cobra.Command {
	var detections string
	var fixed string
	var vocab string
	var width, height int
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "reconcile",
		Short: "Merge detector output with fixed boxes into a typed (:objects ...) block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			detPath := resolveInputPath(ws, detections)
			text, err := readInput(cmd, []string{detPath})
			if err != nil {
				return err
			}

			in := usecase.ReconcileInput{
				Detections:     text,
				DetectionsPath: detPath,
				Frame:          domain.Frame{Width: width, Height: height},
				Save:           !noSave,
			}
			if strings.TrimSpace(fixed) != "" {
				in.FixedPath = fixed
				if looksLikePath(fixed) {
					in.FixedPath = resolveInputPath(ws, fixed)
				}
			}
			in.VocabularyPath, in.VocabularyName = resolveVocabulary(ws, vocab)

			uc := usecase.NewReconcileDetections(ws.vocabs, ws.boxes, ws.store, ws.cfg,
				usecase.WithReconcileLogger(logger.Named("reconcile")),
			)

			art, runID, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				if art.ID != "" {
					_ = printReconcile(cmd.OutOrStdout(), art, runID, format)
				}
				return err
			}
			return printReconcile(cmd.OutOrStdout(), art, runID, format)
		},
	}

	c.Flags().StringVarP(&detections, "detections", "d", "", "Detector output file, '-' for stdin (required)")
	c.Flags().StringVar(&fixed, "fixed", "", "Fixed box set name or path (optional)")
	c.Flags().StringVar(&vocab, "vocab", "", "Vocabulary name or path (optional; defaults to workspace default)")
	c.Flags().IntVar(&width, "width", 0, "Target frame width in pixels (optional; defaults to workspace default)")
	c.Flags().IntVar(&height, "height", 0, "Target frame height in pixels (optional; defaults to workspace default)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the reconciliation under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("detections")
	return c
}

// resolveVocabulary prefers a workspace vocabulary file and falls back to
// the built-in vocabulary of the same name.
func resolveVocabulary(ws *workspaceCtx, arg string) (path, name string) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Vocabulary
	}
	if looksLikePath(in) {
		return resolveInputPath(ws, in), ""
	}
	if p, ok := ws.vocabs.Resolve(in); ok {
		return p, ""
	}
	return "", in
}

type boxJSON struct {
	Label string     `json:"label"`
	Box   [4]float64 `json:"box"`
}

type typedObjectJSON struct {
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
	Fixed  bool   `json:"fixed"`
}

type dropJSON struct {
	Label   string  `json:"label"`
	Reason  string  `json:"reason"`
	IoU     float64 `json:"iou,omitempty"`
	Against string  `json:"against,omitempty"`
}

type reconcileJSON struct {
	RunID       string            `json:"run_id,omitempty"`
	ID          string            `json:"id"`
	Vocabulary  string            `json:"vocabulary"`
	Frame       string            `json:"frame"`
	Boxes       []boxJSON         `json:"boxes"`
	Objects     []typedObjectJSON `json:"objects"`
	Dropped     []dropJSON        `json:"dropped"`
	ObjectsText string            `json:"objects_text"`
}

func toReconcileJSON(art domain.ReconcileArtifact, runID string) reconcileJSON {
	r := art.Result
	out := reconcileJSON{
		RunID:       runID,
		ID:          art.ID,
		Vocabulary:  r.Vocabulary,
		Frame:       r.Frame.String(),
		Boxes:       make([]boxJSON, 0, len(r.Boxes)),
		Objects:     make([]typedObjectJSON, 0, len(r.Objects)),
		Dropped:     make([]dropJSON, 0, len(r.Dropped)),
		ObjectsText: r.ObjectsText,
	}
	for _, b := range r.Boxes {
		out.Boxes = append(out.Boxes, boxJSON{Label: b.Label, Box: b.Coords})
	}
	for _, o := range r.Objects {
		out.Objects = append(out.Objects, typedObjectJSON{Symbol: o.Symbol, Type: o.Type, Fixed: o.Fixed})
	}
	for _, d := range r.Dropped {
		out.Dropped = append(out.Dropped, dropJSON{Label: d.Label, Reason: string(d.Reason), IoU: d.IoU, Against: d.Against})
	}
	return out
}

func printReconcile(w io.Writer, art domain.ReconcileArtifact, runID, format string) error {
	switch format {
	case "json":
		return writeJSON(w, toReconcileJSON(art, runID))
	case "pretty", "":
		printPrettyReconcile(w, art, runID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReconcile(w io.Writer, art domain.ReconcileArtifact, runID string) {
	r := art.Result

	fmt.Fprintf(w, "Vocabulary: %s\n", r.Vocabulary)
	fmt.Fprintf(w, "Frame:      %s\n", r.Frame)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:     %s\n", runID)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Boxes (%d):\n", len(r.Boxes))
	if len(r.Boxes) > 0 {
		fmt.Fprintln(w, reconcile.DescribeBoxes(r.Boxes))
	}

	if len(r.Dropped) > 0 {
		fmt.Fprintf(w, "\nDropped (%d):\n", len(r.Dropped))
		for _, d := range r.Dropped {
			if d.Against != "" {
				fmt.Fprintf(w, "- %s (%s, iou=%.3f vs %s)\n", d.Label, d.Reason, d.IoU, d.Against)
				continue
			}
			fmt.Fprintf(w, "- %s (%s)\n", d.Label, d.Reason)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.ObjectsText)
}
