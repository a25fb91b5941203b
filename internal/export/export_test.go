package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// flakyRenderer fails selected pages, optionally succeeding on the
// reduced-scale retry.
type flakyRenderer struct {
	failPages   map[int]bool // scene page numbers that always fail
	failAtScale float64      // pages fail at this scale but pass below it
	calls       []float64
}

func (r *flakyRenderer) RenderPage(page Page, opts RenderOptions) ([]byte, error) {
	r.calls = append(r.calls, opts.Scale)
	if r.failAtScale != 0 && opts.Scale == r.failAtScale {
		return nil, fmt.Errorf("render timeout at scale %v", opts.Scale)
	}
	if r.failPages[page.ScenePage] {
		return nil, fmt.Errorf("page %d out of memory", page.ScenePage)
	}
	return []byte("png-bytes"), nil
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"pdf": FormatPDF, " PNG ": FormatPNG, "Csv": FormatCSV} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestExportPNGNaming(t *testing.T) {
	dir := t.TempDir()
	e := New(&flakyRenderer{}, nil)

	t.Run("single page plain name", func(t *testing.T) {
		p := projectWithShots(4, 3)
		report, err := e.Export(p, FormatPNG, filepath.Join(dir, "board.png"))
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if len(report.Files) != 1 || filepath.Base(report.Files[0]) != "board.png" {
			t.Fatalf("files = %v", report.Files)
		}
	})

	t.Run("multi page suffixed", func(t *testing.T) {
		p := projectWithShots(4, 13)
		report, err := New(&flakyRenderer{}, nil).Export(p, FormatPNG, filepath.Join(dir, "board.png"))
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if len(report.Files) != 2 {
			t.Fatalf("files = %v", report.Files)
		}
		if !strings.HasSuffix(report.Files[0], "board_page1.png") ||
			!strings.HasSuffix(report.Files[1], "board_page2.png") {
			t.Fatalf("files = %v", report.Files)
		}
		for _, f := range report.Files {
			if _, err := os.Stat(f); err != nil {
				t.Errorf("missing output %s: %v", f, err)
			}
		}
	})
}

func TestExportPNGRetriesAtReducedScale(t *testing.T) {
	r := &flakyRenderer{failAtScale: 2}
	e := New(r, nil)
	p := projectWithShots(4, 3)

	report, err := e.Export(p, FormatPNG, filepath.Join(t.TempDir(), "board.png"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(report.Files) != 1 || len(report.FailedPages) != 0 {
		t.Fatalf("report = %+v", report)
	}
	if len(r.calls) != 2 || r.calls[0] != 2 || r.calls[1] != 1 {
		t.Fatalf("scales tried = %v, want [2 1]", r.calls)
	}
}

func TestExportPNGSkipsFailedPages(t *testing.T) {
	r := &flakyRenderer{failPages: map[int]bool{1: true}}
	e := New(r, nil)
	p := projectWithShots(4, 13) // 2 pages

	report, err := e.Export(p, FormatPNG, filepath.Join(t.TempDir(), "board.png"))
	if err != nil {
		t.Fatalf("partial failure should not abort: %v", err)
	}
	if len(report.FailedPages) != 1 || report.FailedPages[0] != 1 {
		t.Fatalf("failed pages = %v", report.FailedPages)
	}
	if len(report.Files) != 1 {
		t.Fatalf("files = %v", report.Files)
	}
}

func TestExportCSVAndPDFWriteFiles(t *testing.T) {
	dir := t.TempDir()
	e := New(nil, nil)
	p := projectWithShots(4, 2)

	for _, c := range []struct {
		format Format
		name   string
	}{
		{FormatCSV, "out.csv"},
		{FormatPDF, "out.pdf"},
	} {
		report, err := e.Export(p, c.format, filepath.Join(dir, c.name))
		if err != nil {
			t.Fatalf("%s export: %v", c.format, err)
		}
		info, err := os.Stat(report.Files[0])
		if err != nil {
			t.Fatalf("%s output missing: %v", c.format, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s output empty", c.format)
		}
	}
}

func TestRealPNGRendererProducesImage(t *testing.T) {
	p := projectWithShots(3, 4)
	pages := Paginate(p)

	data, err := PNGRenderer{}.RenderPage(pages[0], RenderOptions{ColumnCount: 3, Scale: 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// PNG signature.
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("output is not a png (%d bytes)", len(data))
	}
}
