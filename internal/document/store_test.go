package document

import (
	"reflect"
	"testing"

	"github.com/nhle/shotlist/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(model.NewProject(), nil)
}

func shotIDs(views []ShotView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func displayIDs(views []ShotView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.DisplayID
	}
	return ids
}

func TestAddShotDefaults(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID

	id := s.AddShot(sceneID)
	if id == "" {
		t.Fatal("expected a shot id")
	}

	views := s.Shots(sceneID)
	if len(views) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(views))
	}
	shot := views[0]
	if shot.CameraName != model.DefaultCameraName {
		t.Errorf("camera = %q", shot.CameraName)
	}
	if shot.FocalLength != model.DefaultFocalLength {
		t.Errorf("focal length = %q", shot.FocalLength)
	}
	if shot.Color != model.DefaultCardColor {
		t.Errorf("color = %q", shot.Color)
	}
	if shot.Specs.Size != "WIDE SHOT" || shot.Specs.Equip != "STICKS" {
		t.Errorf("unexpected default specs %+v", shot.Specs)
	}
	if !s.Dirty() {
		t.Error("store should be dirty after a mutation")
	}
}

func TestDisplayIDsDerivedFromPosition(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	for i := 0; i < 3; i++ {
		s.AddShot(sceneID)
	}

	got := displayIDs(s.Shots(sceneID))
	want := []string{"1A", "1B", "1C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("display ids = %v, want %v", got, want)
	}

	// Re-read without mutation must be identical.
	again := displayIDs(s.Shots(sceneID))
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("display ids unstable: %v vs %v", got, again)
	}

	// Scene renumbering propagates immediately.
	label := "SCENE 4"
	s.UpdateScene(sceneID, ScenePatch{SceneLabel: &label})
	got = displayIDs(s.Shots(sceneID))
	want = []string{"4A", "4B", "4C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after renumber: display ids = %v, want %v", got, want)
	}
}

func TestDeleteShotRelabelsTrailing(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, s.AddShot(sceneID))
	}

	s.DeleteShot(ids[1])

	views := s.Shots(sceneID)
	if len(views) != 3 {
		t.Fatalf("expected 3 shots, got %d", len(views))
	}
	wantOrder := []string{ids[0], ids[2], ids[3]}
	if !reflect.DeepEqual(shotIDs(views), wantOrder) {
		t.Fatalf("order = %v, want %v", shotIDs(views), wantOrder)
	}
	wantLabels := []string{"1A", "1B", "1C"}
	if !reflect.DeepEqual(displayIDs(views), wantLabels) {
		t.Fatalf("labels = %v, want %v", displayIDs(views), wantLabels)
	}
}

func TestDuplicateShot(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	first := s.AddShot(sceneID)
	second := s.AddShot(sceneID)

	notes := "over the bar"
	s.UpdateShot(second, ShotPatch{Notes: &notes})
	s.UpdateShotSpec(second, "size", "CLOSE UP")

	dupID := s.DuplicateShot(second)
	if dupID == "" || dupID == second {
		t.Fatalf("expected fresh id, got %q", dupID)
	}

	views := s.Shots(sceneID)
	if len(views) != 3 {
		t.Fatalf("expected 3 shots, got %d", len(views))
	}
	if views[1].ID != second || views[2].ID != dupID {
		t.Fatalf("duplicate not inserted after original: %v", shotIDs(views))
	}
	if views[2].Notes != notes {
		t.Errorf("notes not copied: %q", views[2].Notes)
	}
	if !reflect.DeepEqual(views[1].Specs, views[2].Specs) {
		t.Errorf("specs not deep-equal: %+v vs %+v", views[1].Specs, views[2].Specs)
	}

	// Mutating the copy must not touch the original.
	s.UpdateShotSpec(dupID, "size", "ECU")
	views = s.Shots(sceneID)
	if views[1].Specs.Size != "CLOSE UP" {
		t.Errorf("original specs mutated through duplicate")
	}
	_ = first
}

func TestReorderShotsIsPermutation(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, s.AddShot(sceneID))
	}

	// Move the first shot onto the fourth's position.
	s.ReorderShots(sceneID, ids[0], ids[3])

	views := s.Shots(sceneID)
	got := shotIDs(views)
	want := []string{ids[1], ids[2], ids[3], ids[0], ids[4]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	// Same set, same length.
	if len(got) != len(ids) {
		t.Fatalf("length changed: %d", len(got))
	}
	set := make(map[string]bool, len(got))
	for _, id := range got {
		set[id] = true
	}
	for _, id := range ids {
		if !set[id] {
			t.Fatalf("shot %s lost in reorder", id)
		}
	}

	// Labels follow the new order, not the shots.
	wantLabels := []string{"1A", "1B", "1C", "1D", "1E"}
	if !reflect.DeepEqual(displayIDs(views), wantLabels) {
		t.Fatalf("labels = %v, want %v", displayIDs(views), wantLabels)
	}

	// Moving backwards works too.
	s.ReorderShots(sceneID, ids[4], ids[1])
	got = shotIDs(s.Shots(sceneID))
	want = []string{ids[4], ids[1], ids[2], ids[3], ids[0]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("backward move: order = %v, want %v", got, want)
	}
}

func TestLastSceneGuard(t *testing.T) {
	s := newTestStore(t)
	only := s.Project().Scenes[0].ID

	s.DeleteScene(only)
	if len(s.Project().Scenes) != 1 {
		t.Fatalf("last scene was deleted")
	}

	second := s.AddScene()
	s.DeleteScene(only)
	if len(s.Project().Scenes) != 1 || s.Project().Scenes[0].ID != second {
		t.Fatalf("expected only the second scene to remain")
	}
	// Now the guard protects the survivor.
	s.DeleteScene(second)
	if len(s.Project().Scenes) != 1 {
		t.Fatalf("scene count reached zero")
	}
}

func TestLookupMissIsSilentNoop(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	s.AddShot(sceneID)
	before := shotIDs(s.Shots(sceneID))

	s.DeleteShot("no-such-id")
	s.DuplicateShot("no-such-id")
	s.UpdateShotNotes("no-such-id", "x")
	s.UpdateShotSpec("no-such-id", "size", "ECU")
	s.UpdateScene("no-such-scene", ScenePatch{})
	s.ReorderShots(sceneID, "no-such-id", before[0])
	s.AddShot("no-such-scene")

	after := shotIDs(s.Shots(sceneID))
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("missing-id operations changed state: %v vs %v", before, after)
	}
}

func TestGlobalShotLookupAcrossScenes(t *testing.T) {
	s := newTestStore(t)
	first := s.Project().Scenes[0].ID
	second := s.AddScene()
	inFirst := s.AddShot(first)
	inSecond := s.AddShot(second)

	// Delete by id only, without naming the scene.
	s.DeleteShot(inSecond)
	if len(s.Shots(second)) != 0 {
		t.Fatalf("shot not removed from second scene")
	}
	if len(s.Shots(first)) != 1 || s.Shots(first)[0].ID != inFirst {
		t.Fatalf("first scene disturbed")
	}
}

func TestCycleShotColor(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID
	id := s.AddShot(sceneID)

	s.CycleShotColor(id)
	if got := s.Shots(sceneID)[0].Color; got != model.CardColors[1] {
		t.Fatalf("color = %q, want %q", got, model.CardColors[1])
	}

	// Off-palette colors restart the cycle.
	s.UpdateShotColor(id, "#000000")
	s.CycleShotColor(id)
	if got := s.Shots(sceneID)[0].Color; got != model.CardColors[0] {
		t.Fatalf("color = %q, want palette start", got)
	}
}

// TestEndToEndScenario follows the documented add/delete/duplicate walk:
// three shots 1A..1C, delete the middle, duplicate the new 1B.
func TestEndToEndScenario(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, s.AddShot(sceneID))
	}
	if got := displayIDs(s.Shots(sceneID)); !reflect.DeepEqual(got, []string{"1A", "1B", "1C"}) {
		t.Fatalf("initial labels = %v", got)
	}

	s.DeleteShot(ids[1])
	if got := displayIDs(s.Shots(sceneID)); !reflect.DeepEqual(got, []string{"1A", "1B"}) {
		t.Fatalf("after delete: labels = %v", got)
	}

	// ids[2] is now labeled 1B; duplicate it.
	dup := s.DuplicateShot(ids[2])
	views := s.Shots(sceneID)
	if got := displayIDs(views); !reflect.DeepEqual(got, []string{"1A", "1B", "1C"}) {
		t.Fatalf("after duplicate: labels = %v", got)
	}
	if views[1].ID == views[2].ID {
		t.Fatal("duplicate shares the original's id")
	}
	if views[2].ID != dup {
		t.Fatalf("duplicate not at index 2: %v", shotIDs(views))
	}
	if !reflect.DeepEqual(views[1].Specs, views[2].Specs) {
		t.Fatalf("duplicate specs differ")
	}
}

func TestCycleSceneHeaderFields(t *testing.T) {
	s := newTestStore(t)
	sceneID := s.Project().Scenes[0].ID

	want := []string{model.IntExtExt, model.IntExtBoth, model.IntExtInt}
	for _, w := range want {
		s.CycleSceneIntExt(sceneID)
		if got := s.Project().Scenes[0].IntOrExt; got != w {
			t.Fatalf("IntOrExt = %q, want %q", got, w)
		}
	}

	want = []string{model.DayNightNight, model.DayNightBoth, model.DayNightDay}
	for _, w := range want {
		s.CycleSceneDayNight(sceneID)
		if got := s.Project().Scenes[0].DayNight; got != w {
			t.Fatalf("DayNight = %q, want %q", got, w)
		}
	}

	if !s.Dirty() {
		t.Fatal("cycling should dirty the document")
	}
	s.MarkSaved()
	s.CycleSceneIntExt("missing")
	s.CycleSceneDayNight("missing")
	if s.Dirty() {
		t.Fatal("misses should not dirty the document")
	}
}

func TestChangeHookFires(t *testing.T) {
	s := newTestStore(t)
	calls := 0
	s.SetOnChange(func() { calls++ })

	sceneID := s.Project().Scenes[0].ID
	id := s.AddShot(sceneID)
	s.ToggleShotChecked(id)
	s.DeleteShot("missing") // miss: must not fire

	if calls != 2 {
		t.Fatalf("change hook fired %d times, want 2", calls)
	}
}
