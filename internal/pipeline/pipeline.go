// Package pipeline runs one document end to end: render pages, condition
// them, recognize text, and extract the product table and header fields.
//
// Pages are independent until extraction, so rendering and OCR run
// concurrently with a bounded worker count. Extraction itself sees the pages
// in document order regardless of completion order.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ironbark/ordersheet/internal/config"
	"github.com/ironbark/ordersheet/internal/docmeta"
	"github.com/ironbark/ordersheet/internal/extract"
	"github.com/ironbark/ordersheet/internal/ocr"
	"github.com/ironbark/ordersheet/internal/prep"
	"github.com/ironbark/ordersheet/internal/render"
)

// Recognizer turns a page image into text and word tokens.
type Recognizer interface {
	Recognize(img image.Image) (*ocr.PageText, error)
}

// Document is the result of processing one order sheet.
type Document struct {
	// Meta holds the header fields found in the document text.
	Meta docmeta.Meta `json:"meta"`

	// Rows are the extracted product rows, deduplicated and sorted.
	Rows []extract.Row `json:"rows"`

	// Warnings describe pages that looked like order sheets but yielded
	// nothing, e.g. a located table header with no recognized rows.
	Warnings []string `json:"warnings,omitempty"`

	// Pages is the number of pages processed.
	Pages int `json:"pages"`
}

// Process renders every page of src, recognizes it with rec, and extracts
// the document's rows and header fields. It returns extract.ErrNoTokens
// when OCR produced no text at all.
func Process(ctx context.Context, src render.Source, rec Recognizer, cfg config.Config) (*Document, error) {
	engine, err := extract.New(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction engine: %w", err)
	}

	n := src.PageCount()
	pages := make([]*ocr.PageText, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := src.Render(i, cfg.DPI)
			if err != nil {
				return fmt.Errorf("failed to render page %d: %w", i+1, err)
			}
			img, _ = prep.Prepare(img, cfg.Prep)
			text, err := rec.Recognize(img)
			if err != nil {
				return fmt.Errorf("failed to recognize page %d: %w", i+1, err)
			}
			pages[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tokens := make([][]extract.Token, n)
	var full strings.Builder
	for i, p := range pages {
		tokens[i] = p.Tokens
		if i > 0 {
			full.WriteString("\n")
		}
		full.WriteString(p.FullText)
	}

	result, err := engine.ExtractDocument(tokens)
	if err != nil {
		return nil, err
	}

	return &Document{
		Meta:     docmeta.Extract(full.String()),
		Rows:     result.Rows,
		Warnings: result.Warnings,
		Pages:    n,
	}, nil
}
