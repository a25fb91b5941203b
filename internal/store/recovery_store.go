package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SaveRecovery writes the serialized envelope into the recovery slot,
// replacing whatever snapshot was there. The slot holds exactly one
// snapshot; there is no history.
func (s *SQLiteStore) SaveRecovery(ctx context.Context, envelope []byte, savedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recovery_slot (id, envelope, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET envelope = excluded.envelope, saved_at = excluded.saved_at`,
		string(envelope), savedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing recovery slot: %w", err)
	}
	return nil
}

// LoadRecovery reads the recovery snapshot. The boolean reports whether
// a snapshot exists; an empty slot is not an error.
func (s *SQLiteStore) LoadRecovery(ctx context.Context) ([]byte, time.Time, bool, error) {
	var (
		envelope string
		savedAt  string
	)
	err := s.db.QueryRowxContext(ctx,
		"SELECT envelope, saved_at FROM recovery_slot WHERE id = 1",
	).Scan(&envelope, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("reading recovery slot: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("parsing recovery timestamp %q: %w", savedAt, err)
	}
	return []byte(envelope), ts, true, nil
}

// ClearRecovery discards the recovery snapshot, typically after the
// user declines a restore or completes a regular save.
func (s *SQLiteStore) ClearRecovery(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recovery_slot"); err != nil {
		return fmt.Errorf("clearing recovery slot: %w", err)
	}
	return nil
}
