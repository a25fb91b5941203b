// Package document owns the in-memory project aggregate and is the
// single source of truth for all scene and shot mutations. Lookups by
// id that do not match are deliberately no-ops: the UI may act on a
// selection that a preceding event already removed, and that must never
// surface as an error.
package document

import (
	"fmt"
	"log/slog"

	"github.com/nhle/shotlist/internal/model"
)

// Store wraps a model.Project with named mutation operations. Every
// successful mutation marks the document dirty and fires the change
// hook, which the application layer uses to schedule autosave.
type Store struct {
	project  *model.Project
	dirty    bool
	log      *slog.Logger
	onChange func()
}

// New creates a store owning the given project. A nil logger is
// replaced with a discarding one.
func New(project *model.Project, log *slog.Logger) *Store {
	if project == nil {
		project = model.NewProject()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{project: project, log: log}
}

// Project returns the live aggregate. Callers treat it as read-only;
// all mutation goes through the named operations.
func (s *Store) Project() *model.Project {
	return s.project
}

// Replace swaps in a freshly loaded project and clears the dirty flag.
func (s *Store) Replace(project *model.Project) {
	if project == nil {
		return
	}
	s.project = project
	s.dirty = false
}

// Dirty reports whether the document has unsaved changes.
func (s *Store) Dirty() bool { return s.dirty }

// MarkSaved clears the dirty flag after a successful save.
func (s *Store) MarkSaved() { s.dirty = false }

// SetOnChange registers a hook invoked after every mutation.
func (s *Store) SetOnChange(fn func()) { s.onChange = fn }

// touch marks the document dirty and fires the change hook.
func (s *Store) touch() {
	s.dirty = true
	if s.onChange != nil {
		s.onChange()
	}
}

// miss records a lookup that matched nothing. Policy is a silent no-op;
// the diagnostic exists only at debug level.
func (s *Store) miss(op, id string) {
	s.log.Debug("lookup miss", "op", op, "id", id)
}

// sceneByID returns a pointer into the scene slice, or nil.
func (s *Store) sceneByID(id string) *model.Scene {
	for i := range s.project.Scenes {
		if s.project.Scenes[i].ID == id {
			return &s.project.Scenes[i]
		}
	}
	return nil
}

// findShot locates a shot globally by id, returning its scene and index.
func (s *Store) findShot(shotID string) (*model.Scene, int) {
	for i := range s.project.Scenes {
		sc := &s.project.Scenes[i]
		for j := range sc.Shots {
			if sc.Shots[j].ID == shotID {
				return sc, j
			}
		}
	}
	return nil, -1
}

// ShotView pairs a shot with its derived display identity. Views are
// produced on read and go stale on the next mutation; never hold one
// across operations.
type ShotView struct {
	model.Shot
	DisplayID string
	SceneID   string
	Index     int
}

// Shots returns the named scene's shots with display IDs derived from
// their current positions. Unknown scene ids yield nil.
func (s *Store) Shots(sceneID string) []ShotView {
	sc := s.sceneByID(sceneID)
	if sc == nil {
		return nil
	}
	views := make([]ShotView, len(sc.Shots))
	for i := range sc.Shots {
		views[i] = ShotView{
			Shot:      sc.Shots[i],
			DisplayID: model.DisplayID(sc.SceneLabel, i),
			SceneID:   sc.ID,
			Index:     i,
		}
	}
	return views
}

// AddScene appends a new scene labeled after the next scene number and
// returns its identifier.
func (s *Store) AddScene() string {
	label := fmt.Sprintf("SCENE %d", len(s.project.Scenes)+1)
	sc := model.NewScene(label)
	s.project.Scenes = append(s.project.Scenes, sc)
	s.touch()
	return sc.ID
}

// DeleteScene removes the named scene unless it is the last one
// remaining. Both the last-scene guard and an unknown id are no-ops.
func (s *Store) DeleteScene(id string) {
	if len(s.project.Scenes) <= 1 {
		s.log.Debug("delete refused for last remaining scene", "id", id)
		return
	}
	for i := range s.project.Scenes {
		if s.project.Scenes[i].ID == id {
			s.project.Scenes = append(s.project.Scenes[:i], s.project.Scenes[i+1:]...)
			s.touch()
			return
		}
	}
	s.miss("deleteScene", id)
}

// ScenePatch carries optional field updates for UpdateScene. Nil fields
// are left untouched.
type ScenePatch struct {
	SceneLabel *string
	Location   *string
	IntOrExt   *string
	DayNight   *string
	Cameras    []model.Camera
	PageNotes  *string
}

// UpdateScene shallow-merges the patch into the named scene.
func (s *Store) UpdateScene(id string, patch ScenePatch) {
	sc := s.sceneByID(id)
	if sc == nil {
		s.miss("updateScene", id)
		return
	}
	if patch.SceneLabel != nil {
		sc.SceneLabel = *patch.SceneLabel
	}
	if patch.Location != nil {
		sc.Location = *patch.Location
	}
	if patch.IntOrExt != nil {
		sc.IntOrExt = *patch.IntOrExt
	}
	if patch.DayNight != nil {
		sc.DayNight = *patch.DayNight
	}
	if patch.Cameras != nil {
		sc.Cameras = patch.Cameras
	}
	if patch.PageNotes != nil {
		sc.PageNotes = *patch.PageNotes
	}
	s.touch()
}

// CycleSceneIntExt advances the named scene's header through the
// INT, EXT, INT/EXT cycle.
func (s *Store) CycleSceneIntExt(sceneID string) {
	sc := s.sceneByID(sceneID)
	if sc == nil {
		s.miss("cycleSceneIntExt", sceneID)
		return
	}
	sc.IntOrExt = model.CycleIntExt(sc.IntOrExt)
	s.touch()
}

// CycleSceneDayNight advances the named scene's header through the
// DAY, NIGHT, DAY/NIGHT cycle.
func (s *Store) CycleSceneDayNight(sceneID string) {
	sc := s.sceneByID(sceneID)
	if sc == nil {
		s.miss("cycleSceneDayNight", sceneID)
		return
	}
	sc.DayNight = model.CycleDayNight(sc.DayNight)
	s.touch()
}

// AddShot appends a defaulted shot to the named scene and returns its
// id. The camera name comes from the scene's first camera line and the
// focal length from the project default.
func (s *Store) AddShot(sceneID string) string {
	sc := s.sceneByID(sceneID)
	if sc == nil {
		s.miss("addShot", sceneID)
		return ""
	}
	camera := model.DefaultCameraName
	if len(sc.Cameras) > 0 {
		camera = sc.Cameras[0].Name
	}
	shot := model.NewShot(camera, s.project.DefaultFocalLength)
	sc.Shots = append(sc.Shots, shot)
	s.touch()
	return shot.ID
}

// DeleteShot removes the shot with the given id from whichever scene
// contains it. Shots are addressed globally by id; trailing shots'
// display IDs shift automatically because they are index-derived.
func (s *Store) DeleteShot(shotID string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("deleteShot", shotID)
		return
	}
	sc.Shots = append(sc.Shots[:idx], sc.Shots[idx+1:]...)
	s.touch()
}

// DuplicateShot inserts an independent copy with a fresh id immediately
// after the original. Returns the new shot's id, or "" on a miss.
func (s *Store) DuplicateShot(shotID string) string {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("duplicateShot", shotID)
		return ""
	}
	dup := sc.Shots[idx].Clone()
	sc.Shots = append(sc.Shots, model.Shot{})
	copy(sc.Shots[idx+2:], sc.Shots[idx+1:])
	sc.Shots[idx+1] = dup
	s.touch()
	return dup.ID
}

// ReorderShots moves activeID to the position currently occupied by
// overID within the named scene. Cross-scene moves are not supported;
// a drag must resolve within the scene it started in.
func (s *Store) ReorderShots(sceneID, activeID, overID string) {
	sc := s.sceneByID(sceneID)
	if sc == nil {
		s.miss("reorderShots", sceneID)
		return
	}
	oldIndex, newIndex := -1, -1
	for i := range sc.Shots {
		switch sc.Shots[i].ID {
		case activeID:
			oldIndex = i
		case overID:
			newIndex = i
		}
	}
	if oldIndex < 0 || newIndex < 0 || oldIndex == newIndex {
		if oldIndex < 0 {
			s.miss("reorderShots", activeID)
		} else if newIndex < 0 {
			s.miss("reorderShots", overID)
		}
		return
	}
	moved := sc.Shots[oldIndex]
	sc.Shots = append(sc.Shots[:oldIndex], sc.Shots[oldIndex+1:]...)
	sc.Shots = append(sc.Shots, model.Shot{})
	copy(sc.Shots[newIndex+1:], sc.Shots[newIndex:])
	sc.Shots[newIndex] = moved
	s.touch()
}

// ShotPatch carries optional field updates for UpdateShot. Nil fields
// are left untouched.
type ShotPatch struct {
	CameraName     *string
	FocalLength    *string
	Notes          *string
	Checked        *bool
	ScriptTime     *string
	SetupTime      *string
	PredictedTakes *string
	ShootTime      *string
	TakeNumber     *string
}

// UpdateShot shallow-merges the patch into the shot with the given id.
func (s *Store) UpdateShot(shotID string, patch ShotPatch) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("updateShot", shotID)
		return
	}
	shot := &sc.Shots[idx]
	if patch.CameraName != nil {
		shot.CameraName = *patch.CameraName
	}
	if patch.FocalLength != nil {
		shot.FocalLength = *patch.FocalLength
	}
	if patch.Notes != nil {
		shot.Notes = *patch.Notes
	}
	if patch.Checked != nil {
		shot.Checked = *patch.Checked
	}
	if patch.ScriptTime != nil {
		shot.ScriptTime = *patch.ScriptTime
	}
	if patch.SetupTime != nil {
		shot.SetupTime = *patch.SetupTime
	}
	if patch.PredictedTakes != nil {
		shot.PredictedTakes = *patch.PredictedTakes
	}
	if patch.ShootTime != nil {
		shot.ShootTime = *patch.ShootTime
	}
	if patch.TakeNumber != nil {
		shot.TakeNumber = *patch.TakeNumber
	}
	s.touch()
}

// UpdateShotSpec sets one of the four spec fields ("size", "type",
// "move", "equip") on the shot with the given id. Unknown keys are
// ignored the same way unknown ids are.
func (s *Store) UpdateShotSpec(shotID, key, value string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("updateShotSpec", shotID)
		return
	}
	specs := &sc.Shots[idx].Specs
	switch key {
	case "size":
		specs.Size = value
	case "type":
		specs.Type = value
	case "move":
		specs.Move = value
	case "equip":
		specs.Equip = value
	default:
		s.log.Debug("unknown spec key", "key", key, "id", shotID)
		return
	}
	s.touch()
}

// UpdateShotColor sets the card swatch of the shot with the given id.
func (s *Store) UpdateShotColor(shotID, color string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("updateShotColor", shotID)
		return
	}
	sc.Shots[idx].Color = color
	s.touch()
}

// CycleShotColor advances the shot's swatch to the next palette entry.
// Colors outside the palette restart from the first entry.
func (s *Store) CycleShotColor(shotID string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("cycleShotColor", shotID)
		return
	}
	cur := sc.Shots[idx].Color
	next := model.CardColors[0]
	for i, c := range model.CardColors {
		if c == cur {
			next = model.CardColors[(i+1)%len(model.CardColors)]
			break
		}
	}
	sc.Shots[idx].Color = next
	s.touch()
}

// UpdateShotImage attaches (or clears) the embedded reference image.
func (s *Store) UpdateShotImage(shotID, imageBase64, mimeType string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("updateShotImage", shotID)
		return
	}
	sc.Shots[idx].Image = imageBase64
	sc.Shots[idx].ImageType = mimeType
	s.touch()
}

// UpdateShotNotes replaces the shot's free-text notes.
func (s *Store) UpdateShotNotes(shotID, notes string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("updateShotNotes", shotID)
		return
	}
	sc.Shots[idx].Notes = notes
	s.touch()
}

// ToggleShotChecked flips the completed/strikethrough flag.
func (s *Store) ToggleShotChecked(shotID string) {
	sc, idx := s.findShot(shotID)
	if sc == nil {
		s.miss("toggleShotChecked", shotID)
		return
	}
	sc.Shots[idx].Checked = !sc.Shots[idx].Checked
	s.touch()
}

// SetProjectName renames the project.
func (s *Store) SetProjectName(name string) {
	s.project.Name = name
	s.touch()
}

// SetColumnCount sets the grid column count, clamped to {2,3,4}.
func (s *Store) SetColumnCount(count int) {
	if count < 2 || count > 4 {
		return
	}
	s.project.ColumnCount = count
	s.touch()
}

// SetDefaultFocalLength sets the focal length applied to new shots.
func (s *Store) SetDefaultFocalLength(fl string) {
	s.project.DefaultFocalLength = fl
	s.touch()
}

// SetTheme sets the project theme ("light" or "dark").
func (s *Store) SetTheme(theme string) {
	s.project.Theme = theme
	s.touch()
}

// SetAutoSave toggles the recovery snapshot schedule.
func (s *Store) SetAutoSave(enabled bool) {
	s.project.AutoSave = enabled
	s.touch()
}

// SetUseDropdowns toggles constrained-choice spec input.
func (s *Store) SetUseDropdowns(enabled bool) {
	s.project.UseDropdowns = enabled
	s.touch()
}
