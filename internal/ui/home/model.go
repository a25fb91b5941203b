package home

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/keys"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/theme"
)

// NewProjectMsg is sent when the user starts a fresh storyboard.
type NewProjectMsg struct{}

// OpenPathMsg is sent when the user picks a project file to open.
type OpenPathMsg struct {
	Path string
}

// RestoreRecoveryMsg is sent when the user accepts the autosaved copy.
type RestoreRecoveryMsg struct{}

// DiscardRecoveryMsg is sent when the user declines the autosaved copy.
type DiscardRecoveryMsg struct{}

const (
	itemNew  = "new"
	itemOpen = "open"
)

// entry is one row on the home screen.
type entry struct {
	kind  string // itemNew, itemOpen, or "" for a recent project
	title string
	path  string
	when  time.Time
}

func (e entry) FilterValue() string { return e.title }
func (e entry) Title() string       { return e.title }

func (e entry) Description() string {
	if e.path == "" {
		return ""
	}
	return fmt.Sprintf("%s  %s", e.path, e.when.Format("Jan 02 15:04"))
}

// Model is the home screen: recent projects plus new/open actions, with
// an optional crash-recovery prompt layered on top.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	pathInput   textinput.Model
	pathMode    bool
	recoveryAt  time.Time
	hasRecovery bool
	width       int
	height      int
}

// New creates the home screen from the recent project list.
func New(recents []model.RecentProject, k *keys.KeyMap, width, height int) Model {
	items := []list.Item{
		entry{kind: itemNew, title: "New storyboard"},
		entry{kind: itemOpen, title: "Open file..."},
	}
	for _, r := range recents {
		items = append(items, entry{title: r.Name, path: r.Path, when: r.LastOpened})
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height-2)
	l.Title = "Shotlist"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	ti := textinput.New()
	ti.Placeholder = "/path/to/project.shotlist"
	ti.Prompt = "> "
	ti.Width = width - 4

	return Model{
		list:      l,
		keys:      k,
		pathInput: ti,
		width:     width,
		height:    height,
	}
}

// Typing reports whether the path input owns the keyboard, so global
// shortcuts must stand down.
func (m Model) Typing() bool { return m.pathMode }

// SetRecovery arms the crash-recovery prompt with the autosave time.
func (m *Model) SetRecovery(savedAt time.Time) {
	m.hasRecovery = true
	m.recoveryAt = savedAt
}

// Update handles messages for the home screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.hasRecovery {
		switch keyMsg.String() {
		case "y", "Y", "enter":
			m.hasRecovery = false
			return m, func() tea.Msg { return RestoreRecoveryMsg{} }
		case "n", "N", "esc":
			m.hasRecovery = false
			return m, func() tea.Msg { return DiscardRecoveryMsg{} }
		}
		return m, nil
	}

	if m.pathMode {
		switch keyMsg.String() {
		case "enter":
			m.pathMode = false
			path := m.pathInput.Value()
			if path == "" {
				return m, nil
			}
			return m, func() tea.Msg { return OpenPathMsg{Path: path} }
		case "esc":
			m.pathMode = false
			m.pathInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(keyMsg)
		return m, cmd
	}

	if key.Matches(keyMsg, m.keys.Select) {
		e, ok := m.list.SelectedItem().(entry)
		if !ok {
			return m, nil
		}
		switch e.kind {
		case itemNew:
			return m, func() tea.Msg { return NewProjectMsg{} }
		case itemOpen:
			m.pathMode = true
			m.pathInput.Reset()
			return m, m.pathInput.Focus()
		default:
			path := e.path
			return m, func() tea.Msg { return OpenPathMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(keyMsg)
	return m, cmd
}

// View renders the home screen.
func (m Model) View() string {
	if m.hasRecovery {
		return m.renderRecoveryPrompt()
	}

	if m.pathMode {
		bar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.pathInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, bar, m.list.View())
	}

	return m.list.View()
}

// renderRecoveryPrompt asks whether to restore the autosaved copy.
func (m Model) renderRecoveryPrompt() string {
	msg := fmt.Sprintf(
		"An autosaved copy from %s was found.\n\nRestore it? (y/n)",
		m.recoveryAt.Format("Jan 02 15:04:05"),
	)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.BorderStyle.Padding(1, 3).Render(msg))
}

// SetSize updates the home screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.pathInput.Width = width - 4
}
