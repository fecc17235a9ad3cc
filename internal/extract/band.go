package extract

import "strings"

// LocateBand finds the vertical extent of the product table within the
// page's assembled lines.
//
// The header is the first line whose upper-cased text contains every
// configured header keyword; the footer is the first later line whose
// upper-cased text begins with any configured footer prefix. Each boundary
// is the matching line's mean Top.
//
// When a signature is not found the boundary falls back to the extent of the
// page's tokens: the topmost Top for the header, the bottommost Bottom for
// the footer. The fallback trades precision for never silently dropping all
// rows; stray lines admitted this way are filtered again during row
// classification.
func (e *Engine) LocateBand(lines []Line) Band {
	var band Band
	if len(lines) == 0 {
		return band
	}

	headerIdx := -1
	for i, line := range lines {
		if containsAll(strings.ToUpper(line.Text()), e.cfg.HeaderKeywords) {
			headerIdx = i
			band.HeaderY = line.MeanTop()
			band.HeaderFound = true
			break
		}
	}

	for i := headerIdx + 1; i < len(lines); i++ {
		if hasAnyPrefix(strings.ToUpper(lines[i].Text()), e.cfg.FooterPrefixes) {
			band.FooterY = lines[i].MeanTop()
			band.FooterFound = true
			break
		}
	}

	if !band.HeaderFound {
		band.HeaderY = float64(topmost(lines))
	}
	if !band.FooterFound {
		band.FooterY = float64(bottommost(lines))
	}

	return band
}

func containsAll(s string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, k := range keywords {
		if !strings.Contains(s, strings.ToUpper(k)) {
			return false
		}
	}
	return true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}

func topmost(lines []Line) int {
	top := lines[0].Tokens[0].Top
	for _, line := range lines {
		for _, t := range line.Tokens {
			if t.Top < top {
				top = t.Top
			}
		}
	}
	return top
}

func bottommost(lines []Line) int {
	bottom := lines[0].Tokens[0].Bottom
	for _, line := range lines {
		for _, t := range line.Tokens {
			if t.Bottom > bottom {
				bottom = t.Bottom
			}
		}
	}
	return bottom
}
