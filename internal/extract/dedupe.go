package extract

import (
	"sort"
	"strings"
)

// Finalize turns the rows accumulated across all pages of a document into
// the final output list.
//
// Rows whose code matches no configured family prefix are dropped; they are
// stray alphanumeric noise that slipped through classification. Remaining
// rows are deduplicated on the exact (Code, Name, Quantity) triple (rows
// differing in any field are kept as distinct line items rather than guessed
// at), then sorted by family priority, then code, then name, then quantity.
// The sort key is total, so the output order is deterministic for any input
// permutation.
func (e *Engine) Finalize(rows []Row) []Row {
	seen := make(map[Row]struct{}, len(rows))
	out := make([]Row, 0, len(rows))

	for _, r := range rows {
		if !e.knownFamily(r.Code) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := e.familyRank(out[i].Code), e.familyRank(out[j].Code)
		if ri != rj {
			return ri < rj
		}
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Quantity < out[j].Quantity
	})

	return out
}

func (e *Engine) knownFamily(code string) bool {
	upper := strings.ToUpper(code)
	for _, f := range e.cfg.Families {
		if strings.HasPrefix(upper, strings.ToUpper(f.Prefix)) {
			return true
		}
	}
	return false
}
