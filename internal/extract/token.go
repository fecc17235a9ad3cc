package extract

import "strings"

// Token is a single OCR-recognized word with its pixel bounding box and
// recognition confidence. Tokens are supplied by the caller's OCR layer and
// are never mutated by the engine.
type Token struct {
	// Text is the recognized word, exactly as the OCR engine produced it.
	Text string `json:"text"`

	// Left, Top, Right, Bottom are the bounding box edges in pixels.
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// Line is a horizontal cluster of tokens assumed to represent one printed
// text line. Tokens are ordered by their Left edge.
type Line struct {
	Tokens []Token
}

// MeanTop returns the average Top edge of the line's tokens, or 0 for an
// empty line.
func (l Line) MeanTop() float64 {
	if len(l.Tokens) == 0 {
		return 0
	}
	sum := 0
	for _, t := range l.Tokens {
		sum += t.Top
	}
	return float64(sum) / float64(len(l.Tokens))
}

// Text returns the line's token texts joined by single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

// Band is the vertical page region between the detected header and footer of
// the product table. When a signature line is not found the corresponding
// edge falls back to the extent of the page's tokens and the Found flag stays
// false.
type Band struct {
	HeaderY float64
	FooterY float64

	HeaderFound bool
	FooterFound bool
}

// Row is one extracted product line item. Code is always non-empty and
// matches a recognized code family; Name may be empty when no description
// could be recovered.
type Row struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PageResult holds the outcome of extracting a single page.
type PageResult struct {
	// Rows are the product rows recognized on the page, in reading order.
	// They are not yet normalized for cross-page duplicates; pass the
	// accumulated rows of all pages through Engine.Finalize.
	Rows []Row

	// Band is the table region the rows were taken from.
	Band Band
}
