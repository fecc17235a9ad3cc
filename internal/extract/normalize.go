package extract

import "strings"

// NormalizeCode corrects OCR digit/letter confusions in a raw product code.
//
// The code is upper-cased, then scanned once left to right: a configured
// confusion letter becomes its digit when a horizontally adjacent character
// is a digit. The scan is scoped to the characters after the code's family
// prefix: prefixes legitimately contain the confusion letters, and
// rewriting them would detach the code from its family. The left neighbor is
// inspected after any replacement it already received, so a run like "17O"
// resolves fully in one pass. The pass deliberately does not iterate to a
// fixed point; repeated passes would risk over-correcting valid
// alphanumeric codes.
//
// Family-specific fixups then run in configuration order for every family
// whose prefix matches the corrected code.
//
// NormalizeCode must run before deduplication: two OCR variants of the same
// physical code have to normalize to an identical string to merge.
func (e *Engine) NormalizeCode(code string) string {
	b := []byte(strings.ToUpper(code))

	start := 0
	for _, f := range e.cfg.Families {
		p := strings.ToUpper(f.Prefix)
		if strings.HasPrefix(string(b), p) {
			start = len(p)
			break
		}
	}

	for i := start; i < len(b); i++ {
		for _, c := range e.cfg.Confusions {
			if b[i] != c.Letter[0] {
				continue
			}
			leftDigit := i > 0 && isASCIIDigit(b[i-1])
			rightDigit := i+1 < len(b) && isASCIIDigit(b[i+1])
			if leftDigit || rightDigit {
				b[i] = c.Digit[0]
			}
		}
	}

	s := string(b)
	for _, f := range e.fixups {
		if !strings.HasPrefix(s, f.prefix) {
			continue
		}
		s = f.re.ReplaceAllString(s, f.replace)
	}
	return s
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
