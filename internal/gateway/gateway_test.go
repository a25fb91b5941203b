package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhle/shotlist/internal/model"
)

type fakeRecents struct {
	appended []string
}

func (f *fakeRecents) AppendRecent(_ context.Context, path, _ string, _ int) error {
	f.appended = append(f.appended, path)
	return nil
}

func (f *fakeRecents) ListRecent(context.Context) ([]model.RecentProject, error) {
	return nil, nil
}

func (f *fakeRecents) ClearRecent(context.Context) error { return nil }

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	recents := &fakeRecents{}
	g := NewOSGateway(recents, 5)
	ctx := context.Background()

	path := filepath.Join(dir, "chase")
	res, err := g.Save(ctx, path, []byte(`{"version":2}`))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Ext(res.Path) != FileExt {
		t.Fatalf("extension not appended: %s", res.Path)
	}
	if res.Oversize {
		t.Fatal("tiny file flagged oversize")
	}

	opened, err := g.Open(ctx, res.Path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(opened.Data) != `{"version":2}` {
		t.Fatalf("data = %s", opened.Data)
	}
	if opened.Name != "chase" {
		t.Fatalf("name = %q", opened.Name)
	}

	if len(recents.appended) != 2 {
		t.Fatalf("recents updated %d times, want 2", len(recents.appended))
	}
}

func TestOpenMissingFile(t *testing.T) {
	g := NewOSGateway(nil, 5)
	if _, err := g.Open(context.Background(), filepath.Join(t.TempDir(), "nope.shotlist")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveEmptyPath(t *testing.T) {
	g := NewOSGateway(nil, 5)
	if _, err := g.Save(context.Background(), "", []byte("x")); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSaveKeepsExplicitExtension(t *testing.T) {
	dir := t.TempDir()
	g := NewOSGateway(nil, 5)
	path := filepath.Join(dir, "export.json")
	res, err := g.Save(context.Background(), path, []byte("{}"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Path != path {
		t.Fatalf("path rewritten to %s", res.Path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestDefaultFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Untitled Shotlist", "Untitled_Shotlist.shotlist"},
		{"Night / Club (v2)", "Night_Club_v2.shotlist"},
		{"***", "untitled.shotlist"},
	}
	for _, c := range cases {
		if got := DefaultFileName(c.in); got != c.want {
			t.Errorf("DefaultFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
