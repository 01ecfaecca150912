package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/vilain/internal/domain"
	"github.com/aalvaropc/vilain/internal/infra/pddlfs"
	"github.com/aalvaropc/vilain/internal/infra/workspacefinder"
	"github.com/aalvaropc/vilain/internal/infra/yamlvocab"
	"github.com/aalvaropc/vilain/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func documentLoader(cfg domain.Config) *pddlfs.Loader {
	return pddlfs.NewLoader(
		pddlfs.WithDomainsDir(cfg.Paths.DomainsDir),
		pddlfs.WithProblemsDir(cfg.Paths.ProblemsDir),
	)
}

func cmdLoadDocuments(root string, kind domain.DocumentKind) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return documentsLoadedMsg{kind: kind, err: err}
		}

		refs, err := documentLoader(cfg).ListDocuments(kind, root)
		return documentsLoadedMsg{kind: kind, refs: refs, err: err}
	}
}

func cmdLoadVocabularies(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return vocabulariesLoadedMsg{err: err}
		}

		catalog := yamlvocab.NewCatalog(root, yamlvocab.WithVocabulariesDir(cfg.Paths.VocabulariesDir))
		refs, err := catalog.ListVocabularies(root)
		return vocabulariesLoadedMsg{refs: refs, err: err}
	}
}

func cmdPreviewDocument(root string, ref domain.DocumentRef, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return previewMsg{title: ref.Name, path: ref.Path, err: err}
		}

		uc := usecase.NewParseDocuments(documentLoader(cfg), usecase.WithParseLogger(log))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		switch ref.Kind {
		case domain.DocumentDomain:
			d, err := uc.Domain(ctx, ref.Path)
			if err != nil {
				return previewMsg{title: ref.Name, path: ref.Path, err: err}
			}
			return previewMsg{title: ref.Name, path: ref.Path, preview: renderDomainSummary(d)}
		default:
			p, err := uc.Problem(ctx, ref.Path)
			if err != nil {
				return previewMsg{title: ref.Name, path: ref.Path, err: err}
			}
			return previewMsg{title: ref.Name, path: ref.Path, preview: renderProblemSummary(p)}
		}
	}
}

func cmdPreviewVocabulary(root string, ref domain.VocabularyRef) tea.Cmd {
	return func() tea.Msg {
		catalog := yamlvocab.NewCatalog(root)
		v, err := catalog.LoadVocabulary(filepath.Clean(ref.Path))
		if err != nil {
			return previewMsg{title: ref.Name, path: ref.Path, err: err}
		}
		return previewMsg{title: ref.Name, path: ref.Path, preview: renderVocabularySummary(v)}
	}
}
