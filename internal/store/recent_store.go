package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/shotlist/internal/model"
)

// AppendRecent records that the project at path was opened or saved,
// moving it to the front of the recent list and trimming the list to
// limit entries.
func (s *SQLiteStore) AppendRecent(ctx context.Context, path, name string, limit int) error {
	if path == "" {
		return fmt.Errorf("recent project path must not be empty")
	}
	if limit <= 0 {
		limit = 5
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recent_projects (path, name, last_opened)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET name = excluded.name, last_opened = excluded.last_opened`,
		path, name, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting recent project %s: %w", path, err)
	}

	// Trim entries beyond the cap, oldest first.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM recent_projects WHERE path NOT IN (
			SELECT path FROM recent_projects ORDER BY last_opened DESC LIMIT ?
		)`, limit)
	if err != nil {
		return fmt.Errorf("trimming recent projects: %w", err)
	}

	return tx.Commit()
}

// ListRecent returns the recent projects, most recently opened first.
func (s *SQLiteStore) ListRecent(ctx context.Context) ([]model.RecentProject, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT path, name, last_opened FROM recent_projects ORDER BY last_opened DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying recent projects: %w", err)
	}
	defer rows.Close()

	var recents []model.RecentProject
	for rows.Next() {
		var r model.RecentProject
		if err := rows.Scan(&r.Path, &r.Name, &r.LastOpened); err != nil {
			return nil, fmt.Errorf("scanning recent project row: %w", err)
		}
		recents = append(recents, r)
	}
	return recents, rows.Err()
}

// ClearRecent removes every recent-project entry.
func (s *SQLiteStore) ClearRecent(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recent_projects"); err != nil {
		return fmt.Errorf("clearing recent projects: %w", err)
	}
	return nil
}
