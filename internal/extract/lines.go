package extract

import (
	"math"
	"sort"
	"strings"
)

// AssembleLines clusters a page's tokens into horizontal text lines by
// vertical proximity.
//
// Whitespace-only tokens are discarded first; they carry no signal and would
// distort the vertical mean. The remaining tokens are sorted by (Top, Left)
// and clustered in a single greedy pass: a token whose Top differs from the
// open line's running mean Top by more than the configured line tolerance
// closes that line and opens a new one. Lines are returned ordered by mean
// Top, with each line's tokens ordered by Left.
//
// The pass never re-merges lines once split, so pages rotated or skewed
// beyond the tolerance will fragment. An empty token slice yields an empty
// line slice.
func (e *Engine) AssembleLines(tokens []Token) []Line {
	kept := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return nil
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Top != kept[j].Top {
			return kept[i].Top < kept[j].Top
		}
		return kept[i].Left < kept[j].Left
	})

	tol := float64(e.cfg.LineTolerance)

	var lines []Line
	var current []Token
	sumTop := 0

	for _, t := range kept {
		if len(current) > 0 {
			mean := float64(sumTop) / float64(len(current))
			if math.Abs(float64(t.Top)-mean) > tol {
				lines = append(lines, Line{Tokens: current})
				current = nil
				sumTop = 0
			}
		}
		current = append(current, t)
		sumTop += t.Top
	}
	lines = append(lines, Line{Tokens: current})

	for i := range lines {
		toks := lines[i].Tokens
		sort.Slice(toks, func(a, b int) bool {
			if toks[a].Left != toks[b].Left {
				return toks[a].Left < toks[b].Left
			}
			return toks[a].Top < toks[b].Top
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].MeanTop() < lines[j].MeanTop()
	})

	return lines
}
