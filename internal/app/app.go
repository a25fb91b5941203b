// Package app is the root Bubble Tea model: view routing, the autosave
// loop, and the save/open/export flows that tie the document store to
// the file gateway.
package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/envelope"
	"github.com/nhle/shotlist/internal/export"
	"github.com/nhle/shotlist/internal/gateway"
	"github.com/nhle/shotlist/internal/keys"
	"github.com/nhle/shotlist/internal/model"
	"github.com/nhle/shotlist/internal/recovery"
	"github.com/nhle/shotlist/internal/ui"
	"github.com/nhle/shotlist/internal/ui/fileform"
	helpview "github.com/nhle/shotlist/internal/ui/help"
	homeview "github.com/nhle/shotlist/internal/ui/home"
	"github.com/nhle/shotlist/internal/ui/sceneform"
	"github.com/nhle/shotlist/internal/ui/shotform"
	"github.com/nhle/shotlist/internal/ui/shotgrid"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewHome ViewState = iota
	ViewGrid
	ViewShotForm
	ViewSceneForm
	ViewFileForm
	ViewHelp
)

// autosaveTickMsg fires on the autosave interval.
type autosaveTickMsg struct{}

// savedMsg reports the outcome of a save.
type savedMsg struct {
	result gateway.SaveResult
	err    error
}

// openedMsg reports the outcome of opening a file.
type openedMsg struct {
	result gateway.OpenResult
	err    error
}

// exportedMsg reports the outcome of an export run.
type exportedMsg struct {
	report export.Report
	format export.Format
	err    error
}

// Options bundles the dependencies the root model needs.
type Options struct {
	Doc      *document.Store
	Gateway  gateway.Gateway
	Saver    *recovery.Saver
	Slot     recovery.Slot
	Exporter *export.Exporter
	Config   *model.AppConfig
	Pending  *recovery.Snapshot
	Recents  []model.RecentProject
	Log      *slog.Logger

	// OpenPath, when set, skips the home screen and opens the file
	// directly.
	OpenPath string
}

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the document and persistence layers.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	doc          *document.Store
	gw           gateway.Gateway
	saver        *recovery.Saver
	slot         recovery.Slot
	exporter     *export.Exporter
	cfg          *model.AppConfig
	log          *slog.Logger
	keys         *keys.KeyMap

	homeView  homeview.Model
	grid      shotgrid.Model
	shotForm  shotform.Model
	sceneForm sceneform.Model
	fileForm  fileform.Model
	helpView  helpview.Model

	path     string // current save path, empty until first save or open
	status   string // transient status bar message
	openPath string
	ready    bool

	// pendingProject holds the recovery snapshot's project until the
	// user answers the restore prompt.
	pendingProject *model.Project
}

// New creates the root application model.
func New(opts Options) Model {
	k := keys.DefaultKeyMap()
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	hv := homeview.New(opts.Recents, k, 80, 24)
	if opts.Pending != nil {
		hv.SetRecovery(opts.Pending.SavedAt)
	}

	m := Model{
		currentView: ViewHome,
		doc:         opts.Doc,
		gw:          opts.Gateway,
		saver:       opts.Saver,
		slot:        opts.Slot,
		exporter:    opts.Exporter,
		cfg:         opts.Config,
		log:         log,
		keys:        k,
		homeView:    hv,
		grid:        shotgrid.New(opts.Doc, k, 80, 24),
		shotForm:    shotform.New(80, 24),
		sceneForm:   sceneform.New(80, 24),
		fileForm:    fileform.New(80, 24),
		helpView:    helpview.New(k, 80, 24),
		openPath:    opts.OpenPath,
	}
	if opts.Pending != nil {
		m.pendingProject = opts.Pending.Project
	}
	return m
}

// Init starts the autosave ticker and, when a file argument was given,
// opens it immediately.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleAutosave()}
	if m.openPath != "" {
		cmds = append(cmds, m.openFile(m.openPath))
	}
	return tea.Batch(cmds...)
}

// scheduleAutosave arms the next autosave tick.
func (m Model) scheduleAutosave() tea.Cmd {
	interval := time.Duration(m.cfg.Autosave.IntervalSec) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.homeView.SetSize(w, h)
		m.grid.SetSize(w, h)
		m.shotForm.SetSize(w, h)
		m.sceneForm.SetSize(w, h)
		m.fileForm.SetSize(w, h)
		m.helpView.SetSize(w, h)
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case autosaveTickMsg:
		if err := m.saver.Tick(context.Background()); err != nil {
			m.status = "autosave failed"
		}
		return m, m.scheduleAutosave()

	case homeview.NewProjectMsg:
		m.doc.Replace(model.NewProject())
		m.applyConfigDefaults()
		m.grid.Refresh()
		m.currentView = ViewGrid
		return m, nil

	case homeview.OpenPathMsg:
		return m, m.openFile(msg.Path)

	case homeview.RestoreRecoveryMsg:
		if m.pendingProject != nil {
			m.doc.Replace(m.pendingProject)
			m.pendingProject = nil
			m.grid.Refresh()
			m.currentView = ViewGrid
			m.status = "restored autosaved copy"
		}
		return m, m.clearRecovery()

	case homeview.DiscardRecoveryMsg:
		m.pendingProject = nil
		return m, m.clearRecovery()

	case shotgrid.EditShotMsg:
		shots := m.doc.Shots(m.grid.Scene().ID)
		for _, sv := range shots {
			if sv.ID == msg.ShotID {
				m.previousView = m.currentView
				m.currentView = ViewShotForm
				return m, m.shotForm.Start(sv, m.doc.Project())
			}
		}
		return m, nil

	case shotgrid.EditSceneMsg:
		m.previousView = m.currentView
		m.currentView = ViewSceneForm
		return m, m.sceneForm.Start(*m.grid.Scene())

	case shotform.ShotSavedMsg:
		m.doc.UpdateShot(msg.ShotID, msg.Patch)
		m.doc.UpdateShotSpec(msg.ShotID, "size", msg.Specs.Size)
		m.doc.UpdateShotSpec(msg.ShotID, "type", msg.Specs.Type)
		m.doc.UpdateShotSpec(msg.ShotID, "move", msg.Specs.Move)
		m.doc.UpdateShotSpec(msg.ShotID, "equip", msg.Specs.Equip)
		if msg.ImagePath != "" {
			if err := m.attachImage(msg.ShotID, msg.ImagePath); err != nil {
				m.status = "image attach failed: " + err.Error()
			}
		}
		m.grid.Refresh()
		m.currentView = ViewGrid
		return m, nil

	case shotform.ShotFormCancelMsg:
		m.currentView = ViewGrid
		return m, nil

	case sceneform.SceneSavedMsg:
		m.doc.UpdateScene(msg.SceneID, msg.Patch)
		m.grid.Refresh()
		m.currentView = ViewGrid
		return m, nil

	case sceneform.SceneFormCancelMsg:
		m.currentView = ViewGrid
		return m, nil

	case fileform.SaveRequestedMsg:
		m.currentView = ViewGrid
		return m, m.saveFile(msg.Path)

	case fileform.ExportRequestedMsg:
		m.currentView = ViewGrid
		return m, m.exportFile(msg.Format, msg.Path)

	case fileform.FileFormCancelMsg:
		m.currentView = ViewGrid
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.path = msg.result.Path
		m.doc.SetProjectName(gateway.ProjectNameFromPath(msg.result.Path))
		m.doc.MarkSaved()
		if msg.result.Oversize {
			m.status = fmt.Sprintf("saved %.1fMB, large file, images inflate size", msg.result.SizeMB)
		} else {
			m.status = "saved " + filepath.Base(msg.result.Path)
		}
		return m, m.clearRecovery()

	case openedMsg:
		if msg.err != nil {
			m.status = "open failed: " + msg.err.Error()
			return m, nil
		}
		project, err := envelope.Unmarshal(msg.result.Data)
		if err != nil {
			m.status = "open failed: " + err.Error()
			return m, nil
		}
		m.doc.Replace(project)
		m.doc.SetProjectName(msg.result.Name)
		m.doc.MarkSaved()
		m.path = msg.result.Path
		m.grid.Refresh()
		m.currentView = ViewGrid
		m.status = "opened " + filepath.Base(msg.result.Path)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
			return m, nil
		}
		if len(msg.report.FailedPages) > 0 {
			m.status = fmt.Sprintf("exported %d file(s), %d page(s) skipped",
				len(msg.report.Files), len(msg.report.FailedPages))
		} else {
			m.status = fmt.Sprintf("exported %d %s file(s)",
				len(msg.report.Files), msg.format)
		}
		return m, nil

	case tea.KeyMsg:
		// Any key press clears the transient status message.
		m.status = ""

		// Global keys that work regardless of view.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == ViewGrid || (m.currentView == ViewHome && !m.homeView.Typing()) {
				return m, tea.Quit
			}

		case "?":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			if m.currentView == ViewGrid || (m.currentView == ViewHome && !m.homeView.Typing()) {
				m.previousView = m.currentView
				m.currentView = ViewHelp
				return m, nil
			}

		case "esc":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}

		case "s", "ctrl+s":
			if m.currentView == ViewGrid {
				if m.path != "" {
					return m, m.saveFile(m.path)
				}
				m.previousView = m.currentView
				m.currentView = ViewFileForm
				return m, m.fileForm.StartSave(gateway.DefaultFileName(m.doc.Project().Name))
			}

		case "o":
			if m.currentView == ViewGrid {
				m.currentView = ViewHome
				return m, nil
			}

		case "t":
			if m.currentView == ViewGrid {
				return m, m.toggleTheme()
			}

		case "E":
			if m.currentView == ViewGrid {
				m.previousView = m.currentView
				m.currentView = ViewFileForm
				base := gateway.DefaultFileName(m.doc.Project().Name)
				base = base[:len(base)-len(gateway.FileExt)] + ".pdf"
				return m, m.fileForm.StartExport(base)
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case ViewGrid:
		m.grid, cmd = m.grid.Update(msg)
	case ViewShotForm:
		m.shotForm, cmd = m.shotForm.Update(msg)
	case ViewSceneForm:
		m.sceneForm, cmd = m.sceneForm.Update(msg)
	case ViewFileForm:
		m.fileForm, cmd = m.fileForm.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHome:
		return m.homeView.View()
	case ViewGrid:
		return m.grid.View()
	case ViewShotForm:
		return m.shotForm.View()
	case ViewSceneForm:
		return m.sceneForm.View()
	case ViewFileForm:
		return m.fileForm.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// headerTitle is the project name with a dirty marker.
func (m Model) headerTitle() string {
	title := m.doc.Project().Name
	if m.doc.Dirty() {
		title += " *"
	}
	return title
}

// headerStatus shows the scene position on the grid view.
func (m Model) headerStatus() string {
	if m.currentView != ViewGrid {
		return ""
	}
	return fmt.Sprintf("scene %d/%d  %d shots",
		m.grid.SceneIndex()+1,
		len(m.doc.Project().Scenes),
		m.doc.Project().ShotCount())
}

// keyHints returns keyboard shortcut hints for the status bar. A
// transient status message takes priority over the hints.
func (m Model) keyHints() string {
	if m.status != "" {
		return m.status
	}

	switch m.currentView {
	case ViewHome:
		return "enter open | q quit"
	case ViewShotForm, ViewSceneForm, ViewFileForm:
		return "enter submit | esc cancel"
	case ViewHelp:
		return "? close help | esc back"
	default:
		return "a add shot | enter edit | d dup | x del | space done | s save | E export | ? help"
	}
}

// applyConfigDefaults copies configured display defaults onto a freshly
// created project.
func (m *Model) applyConfigDefaults() {
	if m.cfg.Display.ColumnCount != 0 {
		m.doc.SetColumnCount(m.cfg.Display.ColumnCount)
	}
	if m.cfg.Display.DefaultFocalLength != "" {
		m.doc.SetDefaultFocalLength(m.cfg.Display.DefaultFocalLength)
	}
	if m.cfg.Display.Theme != "" {
		m.doc.SetTheme(m.cfg.Display.Theme)
	}
	m.doc.SetUseDropdowns(m.cfg.Display.UseDropdowns)
	m.doc.SetAutoSave(m.cfg.Autosave.Enabled)
	m.doc.MarkSaved()
}

// saveFile serializes the document and writes it through the gateway.
func (m Model) saveFile(path string) tea.Cmd {
	doc := m.doc
	gw := m.gw
	return func() tea.Msg {
		data, err := envelope.Marshal(doc.Project(), time.Now())
		if err != nil {
			return savedMsg{err: err}
		}
		result, err := gw.Save(context.Background(), path, data)
		return savedMsg{result: result, err: err}
	}
}

// openFile reads a project file through the gateway.
func (m Model) openFile(path string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		result, err := gw.Open(context.Background(), path)
		return openedMsg{result: result, err: err}
	}
}

// exportFile runs the export pipeline off the UI goroutine.
func (m Model) exportFile(format export.Format, path string) tea.Cmd {
	exporter := m.exporter
	project := m.doc.Project()
	return func() tea.Msg {
		report, err := exporter.Export(project, format, path)
		return exportedMsg{report: report, format: format, err: err}
	}
}

// attachImage loads an image file from disk and embeds it into the shot.
func (m *Model) attachImage(shotID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	mimeType := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	}
	m.doc.UpdateShotImage(shotID, base64.StdEncoding.EncodeToString(data), mimeType)
	return nil
}

// toggleTheme flips the document theme between light and dark and
// persists the choice as the config default.
func (m *Model) toggleTheme() tea.Cmd {
	next := "dark"
	if m.doc.Project().Theme == "dark" {
		next = "light"
	}
	m.doc.SetTheme(next)
	m.cfg.Display.Theme = next
	m.status = next + " theme"

	cfg := m.cfg
	log := m.log
	return func() tea.Msg {
		if err := model.SaveConfig(model.DefaultConfigPath(), cfg); err != nil {
			log.Warn("persisting theme failed", "error", err)
		}
		return nil
	}
}

// clearRecovery empties the recovery slot after a successful save or an
// answered restore prompt.
func (m Model) clearRecovery() tea.Cmd {
	slot := m.slot
	return func() tea.Msg {
		_ = slot.ClearRecovery(context.Background())
		return nil
	}
}
