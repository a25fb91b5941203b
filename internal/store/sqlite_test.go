package store

import (
	"context"
	"testing"
	"time"
)

// newTestStore creates an in-memory SQLiteStore with all migrations
// applied and closes it when the test completes.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

func TestRecentProjects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("ordered most recent first and deduped by path", func(t *testing.T) {
		if err := s.AppendRecent(ctx, "/films/a.shotlist", "a", 5); err != nil {
			t.Fatalf("append: %v", err)
		}
		if err := s.AppendRecent(ctx, "/films/b.shotlist", "b", 5); err != nil {
			t.Fatalf("append: %v", err)
		}
		// Reopen a; it must move to the front, not duplicate.
		if err := s.AppendRecent(ctx, "/films/a.shotlist", "a", 5); err != nil {
			t.Fatalf("append: %v", err)
		}

		recents, err := s.ListRecent(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(recents) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(recents))
		}
		if recents[0].Path != "/films/a.shotlist" {
			t.Fatalf("front entry = %s", recents[0].Path)
		}
	})

	t.Run("trims beyond the cap", func(t *testing.T) {
		for _, p := range []string{"/p1", "/p2", "/p3", "/p4"} {
			if err := s.AppendRecent(ctx, p, p, 3); err != nil {
				t.Fatalf("append %s: %v", p, err)
			}
		}
		recents, err := s.ListRecent(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(recents) != 3 {
			t.Fatalf("expected 3 entries after trim, got %d", len(recents))
		}
	})

	t.Run("clear", func(t *testing.T) {
		if err := s.ClearRecent(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		recents, err := s.ListRecent(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(recents) != 0 {
			t.Fatalf("expected empty list, got %d entries", len(recents))
		}
	})

	t.Run("empty path rejected", func(t *testing.T) {
		if err := s.AppendRecent(ctx, "", "x", 5); err == nil {
			t.Fatal("expected error for empty path")
		}
	})
}

func TestRecoverySlot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("empty slot reports absent", func(t *testing.T) {
		_, _, ok, err := s.LoadRecovery(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if ok {
			t.Fatal("expected no snapshot")
		}
	})

	t.Run("save then load", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		if err := s.SaveRecovery(ctx, []byte(`{"version":2}`), at); err != nil {
			t.Fatalf("save: %v", err)
		}

		data, ts, ok, err := s.LoadRecovery(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !ok {
			t.Fatal("expected a snapshot")
		}
		if string(data) != `{"version":2}` {
			t.Fatalf("data = %s", data)
		}
		if !ts.Equal(at) {
			t.Fatalf("timestamp = %v, want %v", ts, at)
		}
	})

	t.Run("second save replaces", func(t *testing.T) {
		if err := s.SaveRecovery(ctx, []byte(`{"version":2,"projectName":"x"}`), time.Now()); err != nil {
			t.Fatalf("save: %v", err)
		}
		data, _, ok, err := s.LoadRecovery(ctx)
		if err != nil || !ok {
			t.Fatalf("load: ok=%v err=%v", ok, err)
		}
		if string(data) != `{"version":2,"projectName":"x"}` {
			t.Fatalf("slot not replaced: %s", data)
		}
	})

	t.Run("clear", func(t *testing.T) {
		if err := s.ClearRecovery(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		_, _, ok, err := s.LoadRecovery(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if ok {
			t.Fatal("snapshot survived clear")
		}
	})
}
