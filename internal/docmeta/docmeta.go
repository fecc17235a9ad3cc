// Package docmeta extracts dispatch header fields from full-document OCR
// text.
//
// Unlike the table extractor, header fields sit in free-form regions of the
// sheet, so this package works on plain text with ordered regular
// expressions: for each field the first pattern that matches wins. Missing
// fields stay empty; a sheet without a PO number is a delivery, not an
// error.
package docmeta

import (
	"regexp"
	"strings"
)

// Meta holds the header fields of one dispatch document. Any field may be
// empty when the corresponding text was not found.
type Meta struct {
	// Date as printed, e.g. "2/09/2025".
	Date string `json:"date"`

	// InvoiceNo is the invoice number digits.
	InvoiceNo string `json:"invoice_no"`

	// PONumber is the purchase-order or pickup number. Its presence marks
	// the document as a pickup rather than a delivery.
	PONumber string `json:"po_number"`

	// CompanyName is the customer from the Bill To block.
	CompanyName string `json:"company_name"`
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Date[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})`),
	regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{4})`),
}

var invoicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Invoice[#\s]*No[.:\s]*([0-9]+)`),
	regexp.MustCompile(`(?i)Invoice[#\s]*([0-9]+)`),
	regexp.MustCompile(`([0-9]{8,})`),
	regexp.MustCompile(`(?i)INV[#\s]*([0-9]+)`),
}

var poPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)PO[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)Pickup[:\s]*(\d+)`),
	regexp.MustCompile(`(?i)P\.O[.:\s]*(\d+)`),
	regexp.MustCompile(`(?i)Order[:\s]*No[.:\s]*(\d+)`),
}

var companyPattern = regexp.MustCompile(`(?i)Bill\s+To[:\s]*\n?([^\n]+)`)

// Extract scans the document text for the header fields.
func Extract(text string) Meta {
	var m Meta

	m.Date = firstMatch(datePatterns, text)
	m.InvoiceNo = firstMatch(invoicePatterns, text)

	m.PONumber = firstMatch(poPatterns, text)
	if m.PONumber == "" {
		// Sheets that print the pickup number without a label carry it as
		// a bare 4-digit line.
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if len(line) == 4 && isDigits(line) {
				m.PONumber = line
				break
			}
		}
	}

	if sub := companyPattern.FindStringSubmatch(text); sub != nil {
		m.CompanyName = strings.TrimSpace(sub[1])
	}

	return m
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if sub := re.FindStringSubmatch(text); sub != nil {
			return strings.TrimSpace(sub[1])
		}
	}
	return ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
