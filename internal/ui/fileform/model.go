package fileform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/export"
	"github.com/nhle/shotlist/internal/theme"
)

// SaveRequestedMsg is dispatched when the save-as form is submitted.
type SaveRequestedMsg struct {
	Path string
}

// ExportRequestedMsg is dispatched when the export form is submitted.
type ExportRequestedMsg struct {
	Format export.Format
	Path   string
}

// FileFormCancelMsg is dispatched when the user cancels either form.
type FileFormCancelMsg struct{}

type mode int

const (
	modeSave mode = iota
	modeExport
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	path   string
	format string
}

// Model is the Bubble Tea model for the save-as and export prompts.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	mode   mode
	width  int
	height int
}

// New creates a new file form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartSave initializes the save-as prompt with a suggested path.
func (m *Model) StartSave(defaultPath string) tea.Cmd {
	m.mode = modeSave
	m.fb.path = defaultPath
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Save As").
			Placeholder("storyboard.shotlist").
			Value(&m.fb.path).
			Validate(validatePath),
	)).WithWidth(m.formWidth())
	return m.form.Init()
}

// StartExport initializes the export prompt with a suggested base path.
func (m *Model) StartExport(defaultPath string) tea.Cmd {
	m.mode = modeExport
	m.fb.path = defaultPath
	m.fb.format = string(export.FormatPDF)
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Format").
			Options(
				huh.NewOption("PDF", string(export.FormatPDF)),
				huh.NewOption("PNG", string(export.FormatPNG)),
				huh.NewOption("CSV", string(export.FormatCSV)),
			).
			Value(&m.fb.format),
		huh.NewInput().
			Title("Output Path").
			Value(&m.fb.path).
			Validate(validatePath),
	)).WithWidth(m.formWidth())
	return m.form.Init()
}

// Update handles messages for the file form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return FileFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the file form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := "Save Project"
	if m.mode == modeExport {
		title = "Export"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(titleStyle.Render(title) + "\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) handleSubmit() tea.Cmd {
	path := strings.TrimSpace(m.fb.path)
	if m.mode == modeSave {
		return func() tea.Msg { return SaveRequestedMsg{Path: path} }
	}
	format, err := export.ParseFormat(m.fb.format)
	if err != nil {
		format = export.FormatPDF
	}
	return func() tea.Msg {
		return ExportRequestedMsg{Format: format, Path: path}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}
