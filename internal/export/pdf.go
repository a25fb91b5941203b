package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/nhle/shotlist/internal/model"
)

// A4 landscape geometry in millimeters.
const (
	pdfPageW   = 297.0
	pdfPageH   = 210.0
	pdfMargin  = 10.0
	pdfHeaderH = 26.0
	pdfCardGap = 3.0
)

// WritePDF renders the paginated project as a multi-page A4 landscape
// PDF. Drawing failures on individual cards (typically undecodable
// embedded images) are skipped; a failure of the PDF engine itself is
// returned.
func WritePDF(w io.Writer, p *model.Project) error {
	pages := Paginate(p)
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(p.Name, true)

	cols := p.ColumnCount
	if cols < 2 || cols > 4 {
		cols = model.DefaultColumnCount
	}

	for _, page := range pages {
		pdf.AddPage()
		drawPDFHeader(pdf, page)
		drawPDFCards(pdf, page, cols)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("encoding pdf: %w", err)
	}
	return nil
}

func drawPDFHeader(pdf *gofpdf.Fpdf, page Page) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pdfMargin, pdfMargin)
	header := fmt.Sprintf("%s | %s | %s - %s",
		page.SceneLabel, page.Location, page.IntOrExt, page.DayNight)
	pdf.CellFormat(0, 8, header, "", 1, "L", false, 0, "")

	if page.Continued {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetX(pdfMargin)
		pdf.CellFormat(0, 4,
			fmt.Sprintf("(CONTINUED - PAGE %d OF %d)", page.ScenePage, page.ScenePages),
			"", 1, "L", false, 0, "")
	}

	// Camera lines, right-aligned under the header rule.
	pdf.SetFont("Helvetica", "", 8)
	y := pdfMargin + 9
	for _, cam := range page.Cameras {
		pdf.SetXY(pdfPageW-pdfMargin-60, y)
		pdf.CellFormat(60, 3.5, fmt.Sprintf("%s = %s", cam.Name, cam.Body), "", 0, "R", false, 0, "")
		y += 3.5
	}

	if page.PageNotes != "" && !page.Continued {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(pdfMargin, pdfMargin+10)
		pdf.MultiCell(120, 3, page.PageNotes, "", "L", false)
	}

	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(pdfMargin, pdfMargin+pdfHeaderH-2, pdfPageW-pdfMargin, pdfMargin+pdfHeaderH-2)
}

func drawPDFCards(pdf *gofpdf.Fpdf, page Page, cols int) {
	gridW := pdfPageW - 2*pdfMargin
	gridH := pdfPageH - 2*pdfMargin - pdfHeaderH
	cardW := (gridW - float64(cols-1)*pdfCardGap) / float64(cols)
	cardH := (gridH - pdfCardGap) / 2

	for i, card := range page.Cards {
		col := i % cols
		row := i / cols
		x := pdfMargin + float64(col)*(cardW+pdfCardGap)
		y := pdfMargin + pdfHeaderH + float64(row)*(cardH+pdfCardGap)
		drawPDFCard(pdf, card, x, y, cardW, cardH)
	}
}

func drawPDFCard(pdf *gofpdf.Fpdf, card Card, x, y, w, h float64) {
	pdf.SetDrawColor(60, 60, 60)
	pdf.Rect(x, y, w, h, "D")

	// Color tab along the left edge.
	r, g, b := hexRGB(card.Color)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(x, y, 1.5, h, "F")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(x+3, y+2)
	pdf.CellFormat(w-6, 5, card.DisplayID, "", 0, "L", false, 0, "")
	if card.Checked {
		labelW := pdf.GetStringWidth(card.DisplayID)
		pdf.Line(x+3, y+4.5, x+3+labelW, y+4.5)
	}

	// Image slot occupies the upper portion of the card.
	imgH := h * 0.45
	if raw, format, err := rawCardImage(card.Image, card.ImageType); err == nil {
		name := "shot-" + card.ID
		opts := gofpdf.ImageOptions{ImageType: format}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
		if pdf.Ok() {
			pdf.ImageOptions(name, x+3, y+8, w-6, imgH, false, opts, 0, "")
		}
		// A bad image poisons gofpdf's sticky error; clear it so the
		// rest of the export survives.
		if !pdf.Ok() {
			pdf.ClearError()
		}
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(x+3, y+9+imgH)
	specs := fmt.Sprintf("%s / %s / %s / %s",
		card.Specs.Size, card.Specs.Type, card.Specs.Move, card.Specs.Equip)
	pdf.MultiCell(w-6, 3, specs, "", "L", false)

	pdf.SetXY(x+3, y+16+imgH)
	pdf.CellFormat(w-6, 3, fmt.Sprintf("%s - %s", card.CameraName, card.FocalLength), "", 1, "L", false, 0, "")

	if card.Notes != "" {
		pdf.SetXY(x+3, y+20+imgH)
		pdf.MultiCell(w-6, 3, card.Notes, "", "L", false)
	}
}

// hexRGB parses a #rrggbb swatch, falling back to mid gray.
func hexRGB(hex string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 128, 128, 128
	}
	return r, g, b
}
