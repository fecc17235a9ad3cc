package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoTokens is returned by ExtractDocument when every page of a document
// produced an empty token stream. Callers should report "no rows found"
// rather than treating the empty result as a document with zero products.
var ErrNoTokens = errors.New("document produced no OCR tokens")

// Engine extracts product rows from positioned OCR tokens. It is immutable
// after construction and safe for concurrent use across pages.
type Engine struct {
	cfg Config

	codePattern  *regexp.Regexp
	qtyPattern   *regexp.Regexp
	pricePattern *regexp.Regexp

	fixups      []compiledFixup
	corrections []compiledCorrection
}

type compiledFixup struct {
	prefix  string
	re      *regexp.Regexp
	replace string
}

type compiledCorrection struct {
	re      *regexp.Regexp
	replace string
}

// priceShape matches currency/unit-price tokens (digits with a decimal
// separator), which are excluded from descriptions.
const priceShape = `^[0-9]+[.,][0-9]+$`

// New builds an Engine from cfg, compiling its patterns. It returns an error
// when cfg names no code families, a confusion pair is not single characters,
// or a fixup pattern does not compile.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Families) == 0 {
		return nil, errors.New("extract: config names no code families")
	}
	if cfg.LineTolerance <= 0 {
		return nil, fmt.Errorf("extract: line tolerance must be positive, got %d", cfg.LineTolerance)
	}
	if cfg.QuantityMaxDigits <= 0 {
		return nil, fmt.Errorf("extract: quantity max digits must be positive, got %d", cfg.QuantityMaxDigits)
	}
	for _, c := range cfg.Confusions {
		if len(c.Letter) != 1 || len(c.Digit) != 1 {
			return nil, fmt.Errorf("extract: confusion pair %q/%q must be single characters", c.Letter, c.Digit)
		}
	}

	e := &Engine{cfg: cfg}

	alts := make([]string, len(cfg.Families))
	for i, f := range cfg.Families {
		alts[i] = regexp.QuoteMeta(strings.ToUpper(f.Prefix))
	}
	codeExpr := `(?i)^(?:` + strings.Join(alts, "|") + `)[A-Z0-9]*\b`
	re, err := regexp.Compile(codeExpr)
	if err != nil {
		return nil, fmt.Errorf("extract: compiling code pattern: %w", err)
	}
	e.codePattern = re

	e.qtyPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{1,%d}$`, cfg.QuantityMaxDigits))
	e.pricePattern = regexp.MustCompile(priceShape)

	for _, f := range cfg.Families {
		for _, fx := range f.Fixups {
			re, err := regexp.Compile(fx.Pattern)
			if err != nil {
				return nil, fmt.Errorf("extract: compiling fixup %q for family %s: %w", fx.Pattern, f.Prefix, err)
			}
			e.fixups = append(e.fixups, compiledFixup{
				prefix:  strings.ToUpper(f.Prefix),
				re:      re,
				replace: fx.Replace,
			})
		}
	}

	for _, c := range cfg.Corrections {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(c.Match) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("extract: compiling correction %q: %w", c.Match, err)
		}
		e.corrections = append(e.corrections, compiledCorrection{re: re, replace: c.Replace})
	}

	return e, nil
}

// Result is the final output for a whole document.
type Result struct {
	// Rows is the filtered, deduplicated and sorted row list.
	Rows []Row

	// Warnings flags pages where a table header was located but no product
	// row resolved; a low-confidence signal worth reviewing, not a failure.
	Warnings []string
}

// ExtractDocument runs the full pipeline over all pages of a document and
// finalizes the merged rows. pages holds one token slice per page, in
// document order; ordering of tokens within a page does not matter.
//
// Returns ErrNoTokens when the whole document yielded no tokens.
func (e *Engine) ExtractDocument(pages [][]Token) (*Result, error) {
	total := 0
	var all []Row
	var warnings []string

	for i, tokens := range pages {
		total += len(tokens)
		pr := e.ExtractPage(tokens)
		all = append(all, pr.Rows...)
		if pr.Band.HeaderFound && len(pr.Rows) == 0 {
			warnings = append(warnings, fmt.Sprintf("page %d: table header located but no product rows recognized", i+1))
		}
	}

	if total == 0 {
		return nil, ErrNoTokens
	}

	return &Result{Rows: e.Finalize(all), Warnings: warnings}, nil
}

// ExtractPage extracts the product rows of a single page. Pages have no
// cross-page dependencies, so callers may invoke this concurrently and merge
// the accumulated rows with Finalize.
func (e *Engine) ExtractPage(tokens []Token) PageResult {
	lines := e.AssembleLines(tokens)
	band := e.LocateBand(lines)
	return PageResult{Rows: e.ExtractRows(lines, band), Band: band}
}

// familyRank returns the sort priority of code's family: the index of the
// first configured family whose prefix matches, or len(Families) when none
// does (unknown families sort last).
func (e *Engine) familyRank(code string) int {
	upper := strings.ToUpper(code)
	for i, f := range e.cfg.Families {
		if strings.HasPrefix(upper, strings.ToUpper(f.Prefix)) {
			return i
		}
	}
	return len(e.cfg.Families)
}
