package export

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Base raster geometry at scale 1. An A4 landscape page at ~96 DPI.
const (
	pngBaseW   = 1122
	pngBaseH   = 793
	pngMargin  = 40
	pngHeaderH = 100
	pngCardGap = 12
)

// PNGRenderer rasterizes pages with an in-process 2D canvas. It
// implements PageRenderer.
type PNGRenderer struct{}

// RenderPage draws the page and encodes it as PNG. Panics inside the
// drawing backend are converted to errors so one bad page cannot take
// down a whole export.
func (PNGRenderer) RenderPage(page Page, opts RenderOptions) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rasterizing page: %v", r)
		}
	}()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cols := opts.ColumnCount
	if cols < 2 || cols > 4 {
		cols = 4
	}

	w := int(float64(pngBaseW) * scale)
	h := int(float64(pngBaseH) * scale)
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)

	dc.SetRGB(1, 1, 1)
	dc.Push()
	dc.Identity()
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	dc.Pop()

	dc.SetFontFace(basicfont.Face7x13)

	drawPNGHeader(dc, page)
	drawPNGCards(dc, page, cols)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPNGHeader(dc *gg.Context, page Page) {
	dc.SetRGB(0, 0, 0)
	header := fmt.Sprintf("%s | %s | %s - %s",
		page.SceneLabel, page.Location, page.IntOrExt, page.DayNight)
	dc.DrawString(header, pngMargin, pngMargin+14)

	if page.Continued {
		dc.SetRGB(0.45, 0.45, 0.45)
		dc.DrawString(
			fmt.Sprintf("(CONTINUED - PAGE %d OF %d)", page.ScenePage, page.ScenePages),
			pngMargin, pngMargin+32)
	}

	dc.SetRGB(0.25, 0.25, 0.25)
	y := float64(pngMargin + 14)
	for _, cam := range page.Cameras {
		line := fmt.Sprintf("%s = %s", cam.Name, cam.Body)
		lw, _ := dc.MeasureString(line)
		dc.DrawString(line, pngBaseW-pngMargin-lw, y)
		y += 16
	}

	dc.SetRGB(0.7, 0.7, 0.7)
	dc.DrawLine(pngMargin, pngMargin+pngHeaderH-10, pngBaseW-pngMargin, pngMargin+pngHeaderH-10)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func drawPNGCards(dc *gg.Context, page Page, cols int) {
	gridW := float64(pngBaseW - 2*pngMargin)
	gridH := float64(pngBaseH - 2*pngMargin - pngHeaderH)
	cardW := (gridW - float64(cols-1)*pngCardGap) / float64(cols)
	cardH := (gridH - pngCardGap) / 2

	for i, card := range page.Cards {
		col := i % cols
		row := i / cols
		x := float64(pngMargin) + float64(col)*(cardW+pngCardGap)
		y := float64(pngMargin+pngHeaderH) + float64(row)*(cardH+pngCardGap)
		drawPNGCard(dc, card, x, y, cardW, cardH)
	}
}

func drawPNGCard(dc *gg.Context, card Card, x, y, w, h float64) {
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	dc.SetHexColor(card.Color)
	dc.DrawRectangle(x, y, 5, h)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	dc.DrawString(card.DisplayID, x+12, y+18)
	if card.Checked {
		lw, _ := dc.MeasureString(card.DisplayID)
		dc.DrawLine(x+12, y+13, x+12+lw, y+13)
		dc.Stroke()
	}

	imgH := h * 0.45
	if img, err := decodeCardImage(card.Image); err == nil {
		bounds := img.Bounds()
		sx := (w - 16) / float64(bounds.Dx())
		sy := imgH / float64(bounds.Dy())
		if sy < sx {
			sx = sy
		}
		dc.Push()
		dc.Translate(x+12, y+26)
		dc.Scale(sx, sx)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	}

	dc.SetRGB(0.15, 0.15, 0.15)
	textY := y + 40 + imgH
	specs := fmt.Sprintf("%s / %s / %s / %s",
		card.Specs.Size, card.Specs.Type, card.Specs.Move, card.Specs.Equip)
	dc.DrawStringWrapped(specs, x+12, textY, 0, 0, w-20, 1.3, gg.AlignLeft)

	dc.DrawString(fmt.Sprintf("%s - %s", card.CameraName, card.FocalLength), x+12, textY+34)

	if card.Notes != "" {
		dc.SetRGB(0.35, 0.35, 0.35)
		dc.DrawStringWrapped(card.Notes, x+12, textY+44, 0, 0, w-20, 1.3, gg.AlignLeft)
	}
}
