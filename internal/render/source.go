// Package render produces page images from source documents.
//
// Order sheets arrive either as PDFs (rendered with MuPDF via go-fitz) or as
// already-scanned page images. Both are exposed through the Source
// interface so the processing pipeline does not care which it got.
package render

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// DefaultDPI is the rendering resolution used when none is configured.
// Order sheets were tuned at a 4x scale of the 72dpi PDF coordinate space;
// lower resolutions degrade word-level OCR noticeably.
const DefaultDPI = 288

// Source supplies the pages of one document as images.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Render rasterizes page index (0-based) at the given resolution.
	Render(index int, dpi int) (image.Image, error)

	// Close releases the underlying document.
	Close() error
}

// Open returns a Source for path: a PDF source for .pdf files, an image
// source for anything else that decodes as PNG, JPEG or GIF.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return OpenPDF(path)
	}
	return OpenImages(path)
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("page index %d out of range (document has %d pages)", index, count)
	}
	return nil
}
