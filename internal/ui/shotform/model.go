package shotform

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

// ShotSavedMsg is dispatched when the form is submitted. ImagePath, when
// non-empty, names an image file the caller should attach to the shot.
type ShotSavedMsg struct {
	ShotID    string
	Patch     document.ShotPatch
	Specs     model.ShotSpecs
	ImagePath string
}

// ShotFormCancelMsg is dispatched when the user cancels the form.
type ShotFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	cameraName     string
	focalLength    string
	size           string
	shotType       string
	move           string
	equip          string
	notes          string
	scriptTime     string
	setupTime      string
	predictedTakes string
	shootTime      string
	takeNumber     string
	imagePath      string
	checked        bool
}

// Model is the Bubble Tea model for the shot edit form.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	shotID    string
	displayID string
	width     int
	height    int
}

// New creates a new shot form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form for editing the given shot. The project
// supplies the input mode and the merged spec option catalogs, including
// any project-level additions.
func (m *Model) Start(shot document.ShotView, project *model.Project) tea.Cmd {
	m.shotID = shot.ID
	m.displayID = shot.DisplayID
	m.fb.cameraName = shot.CameraName
	m.fb.focalLength = shot.FocalLength
	m.fb.size = shot.Specs.Size
	m.fb.shotType = shot.Specs.Type
	m.fb.move = shot.Specs.Move
	m.fb.equip = shot.Specs.Equip
	m.fb.notes = shot.Notes
	m.fb.scriptTime = shot.ScriptTime
	m.fb.setupTime = shot.SetupTime
	m.fb.predictedTakes = shot.PredictedTakes
	m.fb.shootTime = shot.ShootTime
	m.fb.takeNumber = shot.TakeNumber
	m.fb.imagePath = ""
	m.fb.checked = shot.Checked
	m.form = m.buildForm(project)
	return m.form.Init()
}

// Update handles messages for the shot form.
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
		return m, func() tea.Msg { return ShotFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the shot form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Shot "+m.displayID) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm(project *model.Project) *huh.Form {
	coreGroup := huh.NewGroup(
		huh.NewInput().
			Title("Camera").
			Value(&m.fb.cameraName).
			Validate(validateRequired("Camera")),
		huh.NewInput().
			Title("Focal Length").
			Placeholder("85mm").
			Value(&m.fb.focalLength),
		m.specField("Size", "size", &m.fb.size, project),
		m.specField("Type", "type", &m.fb.shotType, project),
		m.specField("Move", "move", &m.fb.move, project),
		m.specField("Equip", "equip", &m.fb.equip, project),
		huh.NewText().
			Title("Notes").
			Placeholder("Blocking, lens notes...").
			Value(&m.fb.notes),
	)

	scheduleGroup := huh.NewGroup(
		huh.NewInput().
			Title("Script Time").
			Placeholder("MM:SS").
			Value(&m.fb.scriptTime).
			Validate(validateOptionalTime),
		huh.NewInput().
			Title("Setup Time").
			Value(&m.fb.setupTime),
		huh.NewInput().
			Title("Predicted Takes").
			Value(&m.fb.predictedTakes),
		huh.NewInput().
			Title("Shoot Time").
			Value(&m.fb.shootTime),
		huh.NewInput().
			Title("Take").
			Value(&m.fb.takeNumber),
		huh.NewInput().
			Title("Attach Image").
			Placeholder("/path/to/frame.png (optional)").
			Value(&m.fb.imagePath),
		huh.NewConfirm().
			Title("Done").
			Affirmative("Shot").
			Negative("Pending").
			Value(&m.fb.checked),
	)

	return huh.NewForm(coreGroup, scheduleGroup).
		WithWidth(m.formWidth()).
		WithHeight(m.formHeight())
}

// specField builds one spec editor: a select over the merged option
// catalog, or a plain input when the project disables dropdowns. The
// shot's current value always appears in the select, so free text
// entered before a mode switch is never silently replaced.
func (m *Model) specField(title, key string, value *string, project *model.Project) huh.Field {
	if !project.UseDropdowns {
		return huh.NewInput().Title(title).Value(value)
	}
	options := project.SpecOptionsFor(key)
	opts := make([]huh.Option[string], 0, len(options)+1)
	found := false
	for _, o := range options {
		if o == *value {
			found = true
		}
		opts = append(opts, huh.NewOption(o, o))
	}
	if !found && *value != "" {
		opts = append(opts, huh.NewOption(*value, *value))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

func (m Model) handleSubmit() tea.Cmd {
	patch := document.ShotPatch{
		CameraName:     &m.fb.cameraName,
		FocalLength:    &m.fb.focalLength,
		Notes:          &m.fb.notes,
		ScriptTime:     &m.fb.scriptTime,
		SetupTime:      &m.fb.setupTime,
		PredictedTakes: &m.fb.predictedTakes,
		ShootTime:      &m.fb.shootTime,
		TakeNumber:     &m.fb.takeNumber,
		Checked:        &m.fb.checked,
	}
	specs := model.ShotSpecs{
		Size:  m.fb.size,
		Type:  m.fb.shotType,
		Move:  m.fb.move,
		Equip: m.fb.equip,
	}
	id := m.shotID
	imagePath := strings.TrimSpace(m.fb.imagePath)
	return func() tea.Msg {
		return ShotSavedMsg{ShotID: id, Patch: patch, Specs: specs, ImagePath: imagePath}
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

func validateOptionalTime(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := model.ParseScriptTime(s); err != nil {
		return fmt.Errorf("invalid time, use MM:SS or HH:MM:SS")
	}
	return nil
}
