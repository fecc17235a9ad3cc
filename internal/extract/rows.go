package extract

import (
	"strconv"
	"strings"
)

// ExtractRows classifies each line inside the table band and extracts a
// product row from every qualifying line.
//
// A line qualifies when its mean Top lies strictly inside
// (HeaderY+BandMargin, FooterY-BandMargin) and its upper-cased text contains
// no denylisted structural keyword. The band boundaries are approximate, so
// the denylist is what keeps stray administrative lines out.
//
// Within a qualifying line, the code is the first token in left-to-right
// order matching a recognized code-family shape and the quantity is the
// first pure 1-3 digit integer scanning right-to-left. Both are mandatory;
// a line missing either contributes zero rows, which is the normal negative
// outcome rather than an error. The description is assembled from the tokens
// strictly between the code's left edge and the quantity token, skipping
// price-shaped tokens. An empty description falls back once to the same
// token-range scan over the immediately following line, recovering
// descriptions that wrapped onto a second printed line.
//
// Codes are normalized (see NormalizeCode) before the row is emitted, so
// OCR variants of the same physical code merge during finalization.
func (e *Engine) ExtractRows(lines []Line, band Band) []Row {
	lo := band.HeaderY + float64(e.cfg.BandMargin)
	hi := band.FooterY - float64(e.cfg.BandMargin)

	var rows []Row
	for i, line := range lines {
		mean := line.MeanTop()
		if mean <= lo || mean >= hi {
			continue
		}
		upper := strings.ToUpper(line.Text())
		if e.denylisted(upper) {
			continue
		}

		code, codeLeft, ok := e.findCode(line)
		if !ok {
			continue
		}
		qty, ok := e.findQuantity(line)
		if !ok {
			continue
		}

		desc := e.descriptionSpan(line, codeLeft)
		if desc == "" && i+1 < len(lines) {
			desc = e.descriptionSpan(lines[i+1], codeLeft)
		}
		desc = e.correctDescription(desc)

		rows = append(rows, Row{
			Code:     e.NormalizeCode(code),
			Name:     desc,
			Quantity: qty,
		})
	}
	return rows
}

func (e *Engine) denylisted(upperText string) bool {
	for _, k := range e.cfg.Denylist {
		if strings.Contains(upperText, strings.ToUpper(k)) {
			return true
		}
	}
	return false
}

// findCode returns the first token matching a code-family shape, with its
// Left edge.
func (e *Engine) findCode(line Line) (code string, left int, ok bool) {
	for _, t := range line.Tokens {
		if e.codePattern.MatchString(t.Text) {
			return t.Text, t.Left, true
		}
	}
	return "", 0, false
}

// findQuantity scans tokens right-to-left for the first pure small integer.
func (e *Engine) findQuantity(line Line) (int, bool) {
	for i := len(line.Tokens) - 1; i >= 0; i-- {
		if e.qtyPattern.MatchString(line.Tokens[i].Text) {
			n, err := strconv.Atoi(line.Tokens[i].Text)
			if err != nil {
				continue
			}
			return n, true
		}
	}
	return 0, false
}

// descriptionSpan joins the tokens strictly right of codeLeft up to the
// first quantity-shaped token, excluding price-shaped tokens.
func (e *Engine) descriptionSpan(line Line, codeLeft int) string {
	var parts []string
	for _, t := range line.Tokens {
		if t.Left <= codeLeft {
			continue
		}
		if e.qtyPattern.MatchString(t.Text) {
			break
		}
		if e.pricePattern.MatchString(t.Text) {
			continue
		}
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// correctDescription applies the configured keyword replacement table.
func (e *Engine) correctDescription(desc string) string {
	for _, c := range e.corrections {
		desc = c.re.ReplaceAllString(desc, c.replace)
	}
	return desc
}
