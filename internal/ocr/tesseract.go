// Package ocr turns rendered page images into positioned word tokens using
// Tesseract.
//
// This is the token source consumed by the extraction engine: one call per
// page yields the page's full text plus every recognized word with its pixel
// bounding box and confidence score. Token ordering is not guaranteed; the
// engine sorts tokens itself.
//
// OCR is CPU-intensive and Tesseract clients are not safe for concurrent
// use, so each call creates its own client. Callers processing many pages
// should bound their own concurrency.
package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironbark/ordersheet/internal/extract"
)

// PageText is the OCR output for one page.
type PageText struct {
	// FullText is all recognized text with original spacing and newlines.
	// Header metadata extraction runs over this.
	FullText string `json:"full_text"`

	// Tokens are the recognized words with bounding boxes, in no guaranteed
	// order. May be empty if word-level box extraction fails; FullText is
	// still populated in that case.
	Tokens []extract.Token `json:"tokens"`
}

// Tesseract recognizes pages with the gosseract bindings. The zero value
// uses Tesseract's default language; set Language to override (the language
// data must be installed on the system).
type Tesseract struct {
	Language string
}

// Recognize performs word-level OCR on an in-memory page image.
//
// The image is written to a temporary PNG first because Tesseract operates
// on files; the file is removed before returning.
func (r Tesseract) Recognize(img image.Image) (*PageText, error) {
	path, err := SaveImageToTemp(img, "ordersheet-page")
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return r.RecognizeFile(path)
}

// RecognizeFile performs word-level OCR on an image file.
//
// The page is segmented as a single uniform block of text, which is the
// mode that recovers order-sheet tables most reliably. If word-level
// bounding boxes cannot be extracted, the full text is still returned with
// an empty token slice; downstream extraction then has nothing to work
// with, but header metadata extraction can proceed.
func (r Tesseract) RecognizeFile(path string) (*PageText, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if r.Language != "" {
		if err := client.SetLanguage(r.Language); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Word boxes are best-effort; the text survives.
		return &PageText{FullText: text}, nil
	}

	tokens := make([]extract.Token, 0, len(boxes))
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		tokens = append(tokens, extract.Token{
			Text:       box.Word,
			Left:       box.Box.Min.X,
			Top:        box.Box.Min.Y,
			Right:      box.Box.Max.X,
			Bottom:     box.Box.Max.Y,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return &PageText{FullText: text, Tokens: tokens}, nil
}

// Version returns the Tesseract library version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// SaveImageToTemp writes an image to a temporary PNG file and returns its
// path. The caller is responsible for removing the file.
func SaveImageToTemp(img image.Image, prefix string) (string, error) {
	f, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
