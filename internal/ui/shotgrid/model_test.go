package shotgrid

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/keys"
	"github.com/nhle/shotlist/internal/model"
)

func newTestGrid(scenes int) (Model, *document.Store) {
	p := model.NewProject()
	doc := document.New(p, nil)
	for len(doc.Project().Scenes) < scenes {
		doc.AddScene()
	}
	return New(doc, keys.DefaultKeyMap(), 80, 24), doc
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDeleteSceneKey(t *testing.T) {
	m, doc := newTestGrid(2)

	m, _ = m.Update(press('l'))
	if m.SceneIndex() != 1 {
		t.Fatalf("scene index = %d, want 1", m.SceneIndex())
	}
	deleted := m.Scene().ID

	m, _ = m.Update(press('X'))
	if got := len(doc.Project().Scenes); got != 1 {
		t.Fatalf("scene count = %d, want 1", got)
	}
	if m.SceneIndex() != 0 {
		t.Fatalf("scene index = %d, want clamped to 0", m.SceneIndex())
	}
	if m.Scene().ID == deleted {
		t.Fatal("grid still shows the deleted scene")
	}
}

func TestDeleteSceneKeyKeepsLastScene(t *testing.T) {
	m, doc := newTestGrid(1)

	m, _ = m.Update(press('X'))
	if got := len(doc.Project().Scenes); got != 1 {
		t.Fatalf("scene count = %d, want last scene kept", got)
	}
	if doc.Dirty() {
		t.Fatal("refused delete should not dirty the document")
	}
}

func TestCycleKeys(t *testing.T) {
	m, _ := newTestGrid(1)

	m, _ = m.Update(press('i'))
	if got := m.Scene().IntOrExt; got != model.IntExtExt {
		t.Fatalf("after one cycle IntOrExt = %q, want %q", got, model.IntExtExt)
	}
	m, _ = m.Update(press('i'))
	if got := m.Scene().IntOrExt; got != model.IntExtBoth {
		t.Fatalf("after two cycles IntOrExt = %q, want %q", got, model.IntExtBoth)
	}

	m, _ = m.Update(press('n'))
	if got := m.Scene().DayNight; got != model.DayNightNight {
		t.Fatalf("after one cycle DayNight = %q, want %q", got, model.DayNightNight)
	}
}

func TestFirstLineTruncatesOnRunes(t *testing.T) {
	long := "héros à vélo près du café, plan large über die Brücke, Nahaufnahme"
	got := firstLine(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated note is not valid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 40 {
		t.Fatalf("truncated to %d runes, want 40", n)
	}

	multi := "first line\nsecond line"
	if got := firstLine(multi); got != "first line" {
		t.Fatalf("firstLine(%q) = %q", multi, got)
	}
}
