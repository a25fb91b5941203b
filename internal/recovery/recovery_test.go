package recovery

import (
	"context"
	"testing"
	"time"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/model"
)

// fakeSlot is an in-memory Slot recording writes.
type fakeSlot struct {
	data    []byte
	savedAt time.Time
	has     bool
	saves   int
}

func (f *fakeSlot) SaveRecovery(_ context.Context, envelope []byte, savedAt time.Time) error {
	f.data = append([]byte(nil), envelope...)
	f.savedAt = savedAt
	f.has = true
	f.saves++
	return nil
}

func (f *fakeSlot) LoadRecovery(context.Context) ([]byte, time.Time, bool, error) {
	if !f.has {
		return nil, time.Time{}, false, nil
	}
	return f.data, f.savedAt, true, nil
}

func (f *fakeSlot) ClearRecovery(context.Context) error {
	f.has = false
	f.data = nil
	return nil
}

func TestTickGatedOnDirtyAndAutosave(t *testing.T) {
	doc := document.New(model.NewProject(), nil)
	slot := &fakeSlot{}
	saver := NewSaver(doc, slot, nil)
	ctx := context.Background()

	// Clean document: nothing written.
	if err := saver.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if slot.saves != 0 {
		t.Fatal("snapshot written for a clean document")
	}

	// Dirty document with autosave on: written.
	doc.AddShot(doc.Project().Scenes[0].ID)
	if err := saver.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if slot.saves != 1 {
		t.Fatalf("saves = %d, want 1", slot.saves)
	}

	// Autosave disabled: skipped even while dirty.
	doc.SetAutoSave(false)
	if err := saver.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if slot.saves != 1 {
		t.Fatalf("saves = %d, want still 1", slot.saves)
	}
}

func TestTickSkipsEmptyDocument(t *testing.T) {
	doc := document.New(model.NewProject(), nil)
	slot := &fakeSlot{}
	saver := NewSaver(doc, slot, nil)
	ctx := context.Background()

	// Adding an untouched default scene dirties the document without
	// giving it any content worth snapshotting.
	doc.AddScene()
	if !doc.Dirty() {
		t.Fatal("expected dirty document after AddScene")
	}
	if err := saver.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if slot.saves != 0 {
		t.Fatalf("saves = %d, want 0 for an empty document", slot.saves)
	}

	doc.AddShot(doc.Project().Scenes[0].ID)
	if err := saver.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if slot.saves != 1 {
		t.Fatalf("saves = %d, want 1 once the document has a shot", slot.saves)
	}
}

func TestPendingRoundTrip(t *testing.T) {
	doc := document.New(model.NewProject(), nil)
	doc.SetProjectName("Rooftop Chase")
	sceneID := doc.Project().Scenes[0].ID
	doc.AddShot(sceneID)
	doc.AddShot(sceneID)

	slot := &fakeSlot{}
	saver := NewSaver(doc, slot, nil)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	saver.now = func() time.Time { return at }

	if err := saver.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	snap, err := Pending(context.Background(), slot)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a pending snapshot")
	}
	if !snap.SavedAt.Equal(at) {
		t.Fatalf("savedAt = %v, want %v", snap.SavedAt, at)
	}
	if snap.Project.Name != "Rooftop Chase" {
		t.Fatalf("project name = %q", snap.Project.Name)
	}
	if snap.Project.ShotCount() != 2 {
		t.Fatalf("shot count = %d, want 2", snap.Project.ShotCount())
	}
}

func TestPendingEmptySlot(t *testing.T) {
	snap, err := Pending(context.Background(), &fakeSlot{})
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for empty slot")
	}
}

func TestPendingCorruptSnapshot(t *testing.T) {
	slot := &fakeSlot{data: []byte("{broken"), has: true, savedAt: time.Now()}
	if _, err := Pending(context.Background(), slot); err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
}
