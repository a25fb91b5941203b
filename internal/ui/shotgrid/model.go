package shotgrid

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/keys"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/theme"
)

// EditShotMsg is sent when the user opens a shot for editing.
type EditShotMsg struct {
	ShotID string
}

// EditSceneMsg is sent when the user opens the scene header for editing.
type EditSceneMsg struct {
	SceneID string
}

// Model is the per-scene shot list view.
type Model struct {
	list       list.Model
	doc        *document.Store
	keys       *keys.KeyMap
	sceneIndex int
	width      int
	height     int
}

// New creates the shot grid bound to the given document store.
func New(doc *document.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ShotDelegate{}, width, height-4)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := Model{
		list:   l,
		doc:    doc,
		keys:   k,
		width:  width,
		height: height,
	}
	m.Refresh()
	return m
}

// Scene returns the scene currently shown.
func (m Model) Scene() *model.Scene {
	scenes := m.doc.Project().Scenes
	if m.sceneIndex >= len(scenes) {
		return &scenes[len(scenes)-1]
	}
	return &scenes[m.sceneIndex]
}

// SceneIndex returns the position of the visible scene.
func (m Model) SceneIndex() int { return m.sceneIndex }

// Refresh reloads the visible scene's shots from the document store,
// keeping the cursor on the same row where possible.
func (m *Model) Refresh() {
	scenes := m.doc.Project().Scenes
	if m.sceneIndex >= len(scenes) {
		m.sceneIndex = len(scenes) - 1
	}
	shots := m.doc.Shots(scenes[m.sceneIndex].ID)
	items := make([]list.Item, len(shots))
	for i, sv := range shots {
		items[i] = ShotItem{Shot: sv}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// FocusShot moves the cursor to the shot with the given id.
func (m *Model) FocusShot(shotID string) {
	for i, item := range m.list.Items() {
		if si, ok := item.(ShotItem); ok && si.Shot.ID == shotID {
			m.list.Select(i)
			return
		}
	}
}

// selected returns the shot under the cursor, if any.
func (m Model) selected() (document.ShotView, bool) {
	item, ok := m.list.SelectedItem().(ShotItem)
	if !ok {
		return document.ShotView{}, false
	}
	return item.Shot, true
}

// Update handles messages for the shot grid.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextScene):
		if m.sceneIndex < len(m.doc.Project().Scenes)-1 {
			m.sceneIndex++
			m.list.Select(0)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevScene):
		if m.sceneIndex > 0 {
			m.sceneIndex--
			m.list.Select(0)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.AddShot):
		id := m.doc.AddShot(m.Scene().ID)
		m.Refresh()
		m.FocusShot(id)
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		if shot, ok := m.selected(); ok {
			m.doc.DeleteShot(shot.ID)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Duplicate):
		if shot, ok := m.selected(); ok {
			id := m.doc.DuplicateShot(shot.ID)
			m.Refresh()
			m.FocusShot(id)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.MoveUp):
		m.moveSelected(-1)
		return m, nil

	case key.Matches(keyMsg, m.keys.MoveDown):
		m.moveSelected(1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Check):
		if shot, ok := m.selected(); ok {
			m.doc.ToggleShotChecked(shot.ID)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Color):
		if shot, ok := m.selected(); ok {
			m.doc.CycleShotColor(shot.ID)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.AddScene):
		m.doc.AddScene()
		m.sceneIndex = len(m.doc.Project().Scenes) - 1
		m.list.Select(0)
		m.Refresh()
		return m, nil

	case key.Matches(keyMsg, m.keys.DeleteScene):
		if len(m.doc.Project().Scenes) > 1 {
			m.doc.DeleteScene(m.Scene().ID)
			m.list.Select(0)
			m.Refresh()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.CycleIntExt):
		m.doc.CycleSceneIntExt(m.Scene().ID)
		return m, nil

	case key.Matches(keyMsg, m.keys.CycleDayNight):
		m.doc.CycleSceneDayNight(m.Scene().ID)
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		if shot, ok := m.selected(); ok {
			return m, func() tea.Msg { return EditShotMsg{ShotID: shot.ID} }
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.EditScene):
		id := m.Scene().ID
		return m, func() tea.Msg { return EditSceneMsg{SceneID: id} }
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// moveSelected swaps the selected shot with its neighbor by issuing a
// reorder against the document store.
func (m *Model) moveSelected(delta int) {
	shot, ok := m.selected()
	if !ok {
		return
	}
	shots := m.doc.Shots(shot.SceneID)
	target := shot.Index + delta
	if target < 0 || target >= len(shots) {
		return
	}
	m.doc.ReorderShots(shot.SceneID, shot.ID, shots[target].ID)
	m.Refresh()
	m.FocusShot(shot.ID)
}

// View renders the scene header and the shot list beneath it.
func (m Model) View() string {
	sc := m.Scene()

	slug := fmt.Sprintf("%s | %s | %s - %s",
		sc.SceneLabel, sc.Location, sc.IntOrExt, sc.DayNight)
	header := theme.HeaderStyle.Render(slug)

	cameras := make([]string, len(sc.Cameras))
	for i, cam := range sc.Cameras {
		cameras[i] = cam.Name + ": " + cam.Body
	}
	cameraLine := theme.HelpStyle.Render(joinNonEmpty(cameras, "   "))

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = lipgloss.NewStyle().
			Width(m.width).
			Foreground(theme.ColorGray).
			Padding(1, 2).
			Render("No shots in this scene. Press 'a' to add one.")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, cameraLine, body)
}

// SetSize updates the grid dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-4)
}

func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
