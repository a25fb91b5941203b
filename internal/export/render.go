package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// RenderOptions are the cosmetic parameters of page rendering. They are
// not contracts: page size and margins may differ between backends.
type RenderOptions struct {
	// ColumnCount mirrors the project's grid setting.
	ColumnCount int

	// Scale is the raster pixel density multiplier. Renderers may retry
	// at a lower scale after a failure.
	Scale float64
}

// PageRenderer rasterizes one page view-model into an encoded image.
// The backend is treated as an opaque service: a failure is reported
// per page and the export continues with the remaining pages.
type PageRenderer interface {
	RenderPage(page Page, opts RenderOptions) ([]byte, error)
}

// decodeCardImage decodes a shot's embedded base64 image. The data may
// carry a data-URL prefix from older files; both forms are accepted.
func decodeCardImage(encoded string) (image.Image, error) {
	if encoded == "" {
		return nil, fmt.Errorf("no image data")
	}
	if idx := strings.Index(encoded, "base64,"); idx >= 0 {
		encoded = encoded[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding image base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// rawCardImage returns the decoded bytes and a format hint ("PNG" or
// "JPEG") for embedding into a PDF without re-encoding.
func rawCardImage(encoded, mimeType string) ([]byte, string, error) {
	if encoded == "" {
		return nil, "", fmt.Errorf("no image data")
	}
	format := "PNG"
	if strings.Contains(strings.ToLower(mimeType), "jpeg") ||
		strings.Contains(strings.ToLower(mimeType), "jpg") {
		format = "JPEG"
	}
	if idx := strings.Index(encoded, "base64,"); idx >= 0 {
		// Data-URL prefix names the real type; prefer it over the field.
		if strings.Contains(encoded[:idx], "jpeg") || strings.Contains(encoded[:idx], "jpg") {
			format = "JPEG"
		} else if strings.Contains(encoded[:idx], "png") {
			format = "PNG"
		}
		encoded = encoded[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image base64: %w", err)
	}
	return raw, format, nil
}
