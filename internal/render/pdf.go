package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// PDFSource renders the pages of a PDF document with MuPDF.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

// OpenPDF opens a PDF file for page rendering.
func OpenPDF(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	return &PDFSource{doc: doc, path: path}, nil
}

// PageCount returns the number of pages in the PDF.
func (s *PDFSource) PageCount() int {
	return s.doc.NumPage()
}

// Render rasterizes one page at the given DPI.
//
// fitz documents are not safe for concurrent use, so each render opens its
// own short-lived document handle; Render may therefore be called from
// multiple goroutines.
func (s *PDFSource) Render(index int, dpi int) (image.Image, error) {
	if err := checkIndex(index, s.PageCount()); err != nil {
		return nil, err
	}

	doc, err := fitz.New(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen PDF %s: %w", s.path, err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", index+1, err)
	}
	return img, nil
}

// Close releases the PDF document.
func (s *PDFSource) Close() error {
	return s.doc.Close()
}
