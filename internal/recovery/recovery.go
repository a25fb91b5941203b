// Package recovery maintains the autosave snapshot: a periodic copy of
// the current document written to a slot distinct from the user's
// chosen save path, read back once at startup for crash recovery.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nhle/shotlist/internal/document"
	"github.com/nhle/shotlist/internal/envelope"
	"github.com/nhle/shotlist/internal/model"
)

// Slot is the storage the snapshot is written to. Satisfied by
// store.SQLiteStore.
type Slot interface {
	SaveRecovery(ctx context.Context, envelope []byte, savedAt time.Time) error
	LoadRecovery(ctx context.Context) ([]byte, time.Time, bool, error)
	ClearRecovery(ctx context.Context) error
}

// Snapshot is a restorable autosave state.
type Snapshot struct {
	Project *model.Project
	SavedAt time.Time
}

// Saver periodically snapshots a document store into the recovery slot.
// The caller drives it with Tick on a fixed interval; a tick is a no-op
// unless autosave is enabled and the document has unsaved changes.
type Saver struct {
	doc  *document.Store
	slot Slot
	log  *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewSaver creates a saver for the given document store and slot.
func NewSaver(doc *document.Store, slot Slot, log *slog.Logger) *Saver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Saver{doc: doc, slot: slot, log: log, now: time.Now}
}

// Tick writes a snapshot if one is due. A dirty but still-empty
// document is skipped so an older crash snapshot is never overwritten
// by an untouched one. Snapshot failures are logged and returned but
// never fatal; the next tick simply tries again.
func (s *Saver) Tick(ctx context.Context) error {
	if !s.doc.Project().AutoSave || !s.doc.Dirty() || s.doc.Project().IsEmpty() {
		return nil
	}

	at := s.now()
	data, err := envelope.Marshal(s.doc.Project(), at)
	if err != nil {
		s.log.Error("autosave serialization failed", "error", err)
		return fmt.Errorf("serializing autosave snapshot: %w", err)
	}
	if err := s.slot.SaveRecovery(ctx, data, at); err != nil {
		s.log.Error("autosave write failed", "error", err)
		return fmt.Errorf("writing autosave snapshot: %w", err)
	}
	s.log.Debug("autosave snapshot written", "bytes", len(data))
	return nil
}

// Pending returns the snapshot waiting in the recovery slot, if any.
// Called once at startup; the caller decides whether restoring is safe
// (only when the in-memory document is still empty) and prompts the
// user rather than restoring silently.
func Pending(ctx context.Context, slot Slot) (*Snapshot, error) {
	data, savedAt, ok, err := slot.LoadRecovery(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking recovery slot: %w", err)
	}
	if !ok {
		return nil, nil
	}

	project, err := envelope.Unmarshal(data)
	if err != nil {
		// A corrupt snapshot is unrecoverable; report it so the caller
		// can discard the slot instead of prompting forever.
		return nil, fmt.Errorf("parsing recovery snapshot: %w", err)
	}
	return &Snapshot{Project: project, SavedAt: savedAt}, nil
}
