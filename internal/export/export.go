package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nhle/shotlist/internal/model"
)

// Format identifies an export target.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatCSV Format = "csv"
)

// ParseFormat maps a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "png":
		return FormatPNG, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pdf, png or csv)", s)
	}
}

// Report summarizes an export run: the files written and the pages that
// failed. A partially failed export is not an error; the caller decides
// how to surface FailedPages.
type Report struct {
	Files       []string
	FailedPages []int
}

// Exporter runs exports against a project snapshot.
type Exporter struct {
	renderer PageRenderer
	log      *slog.Logger
}

// New creates an exporter. A nil renderer defaults to the in-process
// PNG rasterizer; a nil logger discards.
func New(renderer PageRenderer, log *slog.Logger) *Exporter {
	if renderer == nil {
		renderer = PNGRenderer{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Exporter{renderer: renderer, log: log}
}

// Export writes the project in the given format. path is the output
// file for PDF/CSV; for PNG it is the base name, expanded to
// base_pageN.png when there is more than one page.
func (e *Exporter) Export(p *model.Project, format Format, path string) (Report, error) {
	switch format {
	case FormatPDF:
		return e.exportPDF(p, path)
	case FormatPNG:
		return e.exportPNG(p, path)
	case FormatCSV:
		return e.exportCSV(p, path)
	default:
		return Report{}, fmt.Errorf("unknown export format %q", format)
	}
}

func (e *Exporter) exportPDF(p *model.Project, path string) (Report, error) {
	if filepath.Ext(path) == "" {
		path += ".pdf"
	}
	f, err := os.Create(path)
	if err != nil {
		return Report{}, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePDF(f, p); err != nil {
		return Report{}, err
	}
	e.log.Info("pdf export complete", "path", path, "pages", len(Paginate(p)))
	return Report{Files: []string{path}}, nil
}

func (e *Exporter) exportCSV(p *model.Project, path string) (Report, error) {
	if filepath.Ext(path) == "" {
		path += ".csv"
	}
	f, err := os.Create(path)
	if err != nil {
		return Report{}, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, p); err != nil {
		return Report{}, err
	}
	e.log.Info("csv export complete", "path", path, "shots", p.ShotCount())
	return Report{Files: []string{path}}, nil
}

// exportPNG rasterizes every page. A failed page is retried once at
// half scale, then skipped and reported; the export never aborts over
// a single page.
func (e *Exporter) exportPNG(p *model.Project, path string) (Report, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	pages := Paginate(p)
	opts := RenderOptions{ColumnCount: p.ColumnCount, Scale: 2}

	var report Report
	for i, page := range pages {
		data, err := e.renderer.RenderPage(page, opts)
		if err != nil {
			e.log.Warn("page render failed, retrying at reduced scale",
				"page", i+1, "error", err)
			reduced := opts
			reduced.Scale = opts.Scale / 2
			data, err = e.renderer.RenderPage(page, reduced)
		}
		if err != nil {
			e.log.Error("page render failed", "page", i+1, "error", err)
			report.FailedPages = append(report.FailedPages, i+1)
			continue
		}

		name := base + ".png"
		if len(pages) > 1 {
			name = fmt.Sprintf("%s_page%d.png", base, i+1)
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return report, fmt.Errorf("writing %s: %w", name, err)
		}
		report.Files = append(report.Files, name)
	}

	if len(report.Files) == 0 && len(report.FailedPages) > 0 {
		return report, fmt.Errorf("every page failed to render")
	}
	e.log.Info("png export complete",
		"files", len(report.Files), "failed", len(report.FailedPages))
	return report, nil
}
