package tui

import "github.com/aalvaropc/vilain/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type documentsLoadedMsg struct {
	kind domain.DocumentKind
	refs []domain.DocumentRef
	err  error
}

type vocabulariesLoadedMsg struct {
	refs []domain.VocabularyRef
	err  error
}

type previewMsg struct {
	title   string
	path    string
	preview string
	err     error
}
