package model

import "time"

// RecentProject is one entry in the recently-opened list shown on the
// home screen. Entries are keyed by path; reopening a project moves it
// to the front.
type RecentProject struct {
	Path       string    `json:"path" db:"path"`
	Name       string    `json:"name" db:"name"`
	LastOpened time.Time `json:"last_opened" db:"last_opened"`
}
