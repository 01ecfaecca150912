package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/vilain/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenList
	screenDetail
)

const (
	menuDomains      = "Domains"
	menuProblems     = "Problems"
	menuVocabularies = "Vocabularies"
	menuInit         = "Init Workspace"
	menuQuit         = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// entryItem is one document or vocabulary in the section list.
type entryItem struct {
	name string
	path string

	doc   *domain.DocumentRef
	vocab *domain.VocabularyRef
}

func (e entryItem) Title() string       { return e.name }
func (e entryItem) Description() string { return e.path }
func (e entryItem) FilterValue() string { return e.name }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	menu    list.Model
	entries list.Model
	section string

	detailTitle string
	detail      string
	detailErr   string

	loading bool
	toast   string

	workspaceFound bool
	workspaceRoot  string
	cwd            string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{menuDomains, "Browse and parse domain definitions"},
		menuItem{menuProblems, "Browse and parse problem instances"},
		menuItem{menuVocabularies, "Detection vocabularies and object types"},
		menuItem{menuInit, "Create vilain.yaml and example files here"},
		menuItem{menuQuit, "Exit Vilain"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Vilain"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	e := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	e.SetShowStatusBar(false)
	e.SetFilteringEnabled(true)
	e.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		scr:     screenHome,
		menu:    l,
		entries: e,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.entries.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for i := range msg.refs {
			ref := msg.refs[i]
			items = append(items, entryItem{name: ref.Name, path: m.relPath(ref.Path), doc: &ref})
		}
		m.entries.SetItems(items)
		m.entries.ResetSelected()
		return m, nil

	case vocabulariesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for i := range msg.refs {
			ref := msg.refs[i]
			items = append(items, entryItem{name: ref.Name, path: m.relPath(ref.Path), vocab: &ref})
		}
		m.entries.SetItems(items)
		m.entries.ResetSelected()
		return m, nil

	case previewMsg:
		m.loading = false
		m.scr = screenDetail
		m.detailTitle = msg.title
		m.detail = msg.preview
		m.detailErr = ""
		if msg.err != nil {
			m.detailErr = userMessage(msg.err)
			if m.deps.Logger != nil {
				m.deps.Logger.Warn("tui.preview.failed", "path", msg.path, "error", msg.err)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.isFiltering() {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "enter":
			return m.open()

		case "esc", "b":
			switch m.scr {
			case screenDetail:
				m.scr = screenList
				return m, nil
			case screenList:
				m.scr = screenHome
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenList:
		m.entries, cmd = m.entries.Update(msg)
	}
	return m, cmd
}

func (m model) isFiltering() bool {
	switch m.scr {
	case screenHome:
		return m.menu.FilterState() == list.Filtering
	case screenList:
		return m.entries.FilterState() == list.Filtering
	}
	return false
}

func (m model) open() (tea.Model, tea.Cmd) {
	switch m.scr {
	case screenHome:
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""

		switch it.title {
		case menuQuit:
			return m, tea.Quit
		case menuInit:
			root := m.cwd
			if root == "" {
				root = "."
			}
			m.loading = true
			return m, cmdInitWorkspaceHere(m.deps, root)
		}

		if !m.workspaceFound {
			m.toast = "No workspace found (choose Init Workspace)"
			return m, nil
		}

		m.scr = screenList
		m.section = it.title
		m.entries.Title = it.title
		m.entries.SetItems(nil)
		m.loading = true

		switch it.title {
		case menuDomains:
			return m, cmdLoadDocuments(m.workspaceRoot, domain.DocumentDomain)
		case menuProblems:
			return m, cmdLoadDocuments(m.workspaceRoot, domain.DocumentProblem)
		default:
			return m, cmdLoadVocabularies(m.workspaceRoot)
		}

	case screenList:
		it, ok := m.entries.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		m.loading = true
		if it.doc != nil {
			return m, cmdPreviewDocument(m.workspaceRoot, *it.doc, m.deps.Logger)
		}
		if it.vocab != nil {
			return m, cmdPreviewVocabulary(m.workspaceRoot, *it.vocab)
		}
	}
	return m, nil
}

func (m model) relPath(p string) string {
	if m.workspaceRoot == "" {
		return p
	}
	if rel, err := filepath.Rel(m.workspaceRoot, p); err == nil {
		return rel
	}
	return p
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Vilain") + "\n" +
		m.theme.Subtitle.Render("Planning definitions, generated fragments and scene detections") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nChoose Init Workspace to create one here.")
	}

	var status string
	switch {
	case m.loading:
		status = m.theme.Help.Render("Loading…")
	case m.toast != "":
		status = m.theme.Toast.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.theme.Card.Render(m.menu.View())
		help = "↑/↓ navigate • enter open • / search • q quit"

	case screenList:
		if !m.loading && len(m.entries.Items()) == 0 {
			body = m.theme.Card.Render(m.theme.Title.Render(m.section) + "\n\n(nothing found)")
		} else {
			body = m.theme.Card.Render(m.entries.View())
		}
		help = "enter parse • / search • esc/b back • q home"

	case screenDetail:
		content := m.detail
		if m.detailErr != "" {
			content = m.theme.Error.Render(m.detailErr)
		}
		body = m.theme.Card.Render(m.theme.Title.Render(m.detailTitle) + "\n\n" + strings.TrimRight(content, "\n"))
		help = "esc/b back • q home"

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	out := header + "\n" + banner + "\n\n" + body + "\n" + m.theme.Help.Render(help)
	if status != "" {
		out += "\n" + status
	}
	return wrap.Render(out)
}
