// Package gateway is the boundary between the document pipeline and the
// filesystem: it reads and writes .shotlist files and keeps the
// recent-projects list in step. The UI resolves paths (prompts, recent
// picks, CLI arguments) before calling in; the gateway never prompts.
package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nhle/shotlist/internal/model"
)

// FileExt is the project file extension.
const FileExt = ".shotlist"

// OversizeMB is the save size above which the result carries a warning.
// Embedded images are the usual culprit.
const OversizeMB = 50.0

// SaveResult describes a completed save.
type SaveResult struct {
	Path   string
	SizeMB float64

	// Oversize is set when the file exceeds OversizeMB. The save still
	// succeeds; the flag only drives a user-facing notice.
	Oversize bool
}

// OpenResult describes a successfully opened project file.
type OpenResult struct {
	Path string
	Name string
	Data []byte
}

// Recents is the recent-projects bookkeeping the gateway updates on
// every successful save and open. Satisfied by store.SQLiteStore.
type Recents interface {
	AppendRecent(ctx context.Context, path, name string, limit int) error
	ListRecent(ctx context.Context) ([]model.RecentProject, error)
	ClearRecent(ctx context.Context) error
}

// Gateway is the file boundary interface.
type Gateway interface {
	Save(ctx context.Context, path string, data []byte) (SaveResult, error)
	Open(ctx context.Context, path string) (OpenResult, error)
	ListRecent(ctx context.Context) ([]model.RecentProject, error)
	ClearRecent(ctx context.Context) error
}

// OSGateway implements Gateway against the local filesystem.
type OSGateway struct {
	recents     Recents
	recentLimit int
}

// NewOSGateway creates a gateway. recents may be nil, in which case the
// recent list is simply not maintained (headless export runs).
func NewOSGateway(recents Recents, recentLimit int) *OSGateway {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &OSGateway{recents: recents, recentLimit: recentLimit}
}

// Save writes data to path, appending the .shotlist extension when the
// path has none, and records the file in the recent list.
func (g *OSGateway) Save(ctx context.Context, path string, data []byte) (SaveResult, error) {
	if path == "" {
		return SaveResult{}, fmt.Errorf("save path must not be empty")
	}
	if filepath.Ext(path) == "" {
		path += FileExt
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return SaveResult{}, fmt.Errorf("writing %s: %w", path, err)
	}

	sizeMB := float64(len(data)) / (1024 * 1024)
	res := SaveResult{Path: path, SizeMB: sizeMB, Oversize: sizeMB > OversizeMB}

	if g.recents != nil {
		if err := g.recents.AppendRecent(ctx, path, ProjectNameFromPath(path), g.recentLimit); err != nil {
			// Recents are cosmetic; a failed append must not fail the save.
			return res, nil
		}
	}
	return res, nil
}

// Open reads the project file at path and records it in the recent list.
func (g *OSGateway) Open(ctx context.Context, path string) (OpenResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OpenResult{}, fmt.Errorf("reading %s: %w", path, err)
	}

	name := ProjectNameFromPath(path)
	if g.recents != nil {
		_ = g.recents.AppendRecent(ctx, path, name, g.recentLimit)
	}
	return OpenResult{Path: path, Name: name, Data: data}, nil
}

// ListRecent returns the recent projects, most recent first.
func (g *OSGateway) ListRecent(ctx context.Context) ([]model.RecentProject, error) {
	if g.recents == nil {
		return nil, nil
	}
	return g.recents.ListRecent(ctx)
}

// ClearRecent empties the recent-projects list.
func (g *OSGateway) ClearRecent(ctx context.Context) error {
	if g.recents == nil {
		return nil
	}
	return g.recents.ClearRecent(ctx)
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// DefaultFileName derives a save filename from the project name,
// replacing non-alphanumeric runs with underscores.
func DefaultFileName(projectName string) string {
	name := unsafeNameRe.ReplaceAllString(projectName, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "untitled"
	}
	return name + FileExt
}

// ProjectNameFromPath returns the display name for a file path: the
// base name without the .shotlist extension.
func ProjectNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), FileExt)
}
