package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/boxfile"
	"github.com/aalvaropc/vilain/internal/infra/fixturegen"
	"github.com/aalvaropc/vilain/internal/infra/pddlfs"
	"github.com/aalvaropc/vilain/internal/infra/runstore"
	"github.com/aalvaropc/vilain/internal/infra/workspacefinder"
	"github.com/aalvaropc/vilain/internal/infra/yamlvocab"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	docs   *pddlfs.Loader
	vocabs *yamlvocab.Catalog
	boxes  *boxfile.Loader
	store  *runstore.JSONStore
	gen    *fixturegen.Generator
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root: root,
		cfg:  cfg,
		docs: pddlfs.NewLoader(
			pddlfs.WithDomainsDir(cfg.Paths.DomainsDir),
			pddlfs.WithProblemsDir(cfg.Paths.ProblemsDir),
		),
		vocabs: yamlvocab.NewCatalog(root, yamlvocab.WithVocabulariesDir(cfg.Paths.VocabulariesDir)),
		boxes:  boxfile.NewLoader(root, boxfile.WithBoxesDir(cfg.Paths.BoxesDir)),
		store:  runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
		gen:    fixturegen.New(root, cfg.Generation),
	}, nil
}

// workspaceFlag reads the persistent -w flag; subcommands built on their
// own (tests) simply have none.
func workspaceFlag(cmd *cobra.Command) string {
	f := cmd.Flags().Lookup("workspace")
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `vilain init`): %w", wd, err)
	}
	return root, nil
}

// resolveDocumentPath turns a document name ("cooking"), file name
// ("cooking.pddl") or path into a file path.
func resolveDocumentPath(ws *workspaceCtx, kind domain.DocumentKind, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("%s name or path is required", kind)
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(ws.root, ws.docs.Dir(kind))

	if pddlfs.HasPDDLExt(in) {
		p := filepath.Join(dir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p := filepath.Join(dir, in+".pddl")
	if fileExists(p) {
		return p, nil
	}

	// As a last resort: a file relative to the working directory.
	if fileExists(in) {
		return filepath.Abs(in)
	}

	return "", fmt.Errorf("%s %q not found in %q", kind, in, dir)
}

// resolveInputPath resolves a plain input file relative to the working
// directory first and to the workspace root second.
func resolveInputPath(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" || filepath.IsAbs(in) || fileExists(in) {
		return in
	}
	if p := filepath.Join(ws.root, in); fileExists(p) {
		return p
	}
	return in
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
