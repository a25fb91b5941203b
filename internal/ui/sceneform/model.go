package sceneform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/theme"
)

// SceneSavedMsg is dispatched when the form is submitted.
type SceneSavedMsg struct {
	SceneID string
	Patch   document.ScenePatch
}

// SceneFormCancelMsg is dispatched when the user cancels the form.
type SceneFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	label     string
	location  string
	intOrExt  string
	dayNight  string
	cameras   string // one camera per line, "Name: Body"
	pageNotes string
}

// Model is the Bubble Tea model for the scene header edit form.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	sceneID string
	width   int
	height  int
}

// New creates a new scene form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form for editing the given scene.
func (m *Model) Start(sc model.Scene) tea.Cmd {
	m.sceneID = sc.ID
	m.fb.label = sc.SceneLabel
	m.fb.location = sc.Location
	m.fb.intOrExt = sc.IntOrExt
	m.fb.dayNight = sc.DayNight
	m.fb.cameras = formatCameras(sc.Cameras)
	m.fb.pageNotes = sc.PageNotes
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the scene form.
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
		return m, func() tea.Msg { return SceneFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the scene form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Edit Scene") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Scene Label").
			Placeholder("SCENE 1").
			Value(&m.fb.label).
			Validate(validateRequired("Scene Label")),
		huh.NewInput().
			Title("Location").
			Value(&m.fb.location),
		huh.NewSelect[string]().
			Title("Int/Ext").
			Options(
				huh.NewOption(model.IntExtInt, model.IntExtInt),
				huh.NewOption(model.IntExtExt, model.IntExtExt),
				huh.NewOption(model.IntExtBoth, model.IntExtBoth),
			).
			Value(&m.fb.intOrExt),
		huh.NewSelect[string]().
			Title("Day/Night").
			Options(
				huh.NewOption(model.DayNightDay, model.DayNightDay),
				huh.NewOption(model.DayNightNight, model.DayNightNight),
				huh.NewOption(model.DayNightBoth, model.DayNightBoth),
			).
			Value(&m.fb.dayNight),
		huh.NewText().
			Title("Cameras (one per line, Name: Body)").
			Placeholder(model.DefaultCameraName + ": " + model.DefaultCameraBody).
			Value(&m.fb.cameras),
		huh.NewText().
			Title("Page Notes").
			Value(&m.fb.pageNotes),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	patch := document.ScenePatch{
		SceneLabel: &m.fb.label,
		Location:   &m.fb.location,
		IntOrExt:   &m.fb.intOrExt,
		DayNight:   &m.fb.dayNight,
		PageNotes:  &m.fb.pageNotes,
	}
	if cameras := parseCameras(m.fb.cameras); len(cameras) > 0 {
		patch.Cameras = cameras
	}
	id := m.sceneID
	return func() tea.Msg {
		return SceneSavedMsg{SceneID: id, Patch: patch}
	}
}

// formatCameras renders camera lines for the text area, one per line.
func formatCameras(cameras []model.Camera) string {
	lines := make([]string, len(cameras))
	for i, cam := range cameras {
		lines[i] = cam.Name + ": " + cam.Body
	}
	return strings.Join(lines, "\n")
}

// parseCameras reads "Name: Body" lines back into camera records. Lines
// without a colon become a camera with an empty body; blank lines are
// skipped.
func parseCameras(s string) []model.Camera {
	var cameras []model.Camera
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, body, found := strings.Cut(line, ":")
		if !found {
			cameras = append(cameras, model.Camera{Name: line})
			continue
		}
		cameras = append(cameras, model.Camera{
			Name: strings.TrimSpace(name),
			Body: strings.TrimSpace(body),
		})
	}
	return cameras
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

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
