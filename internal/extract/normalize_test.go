package extract

import "testing"

func TestNormalizeCode_ConfusionPass(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		in   string
		want string
	}{
		// Letter O next to a digit becomes zero.
		{"DUCMI17OHB", "DUCMI170HB"},
		// Letter I next to a digit becomes one.
		{"CASMI35IB", "CASMI351B"},
		// A replaced character counts as a digit for its right neighbor,
		// so a confused run resolves in the single pass.
		{"DUCMI17OIHB", "DUCMI1701HB"},
		// Both OCR variants of the same physical code converge.
		{"DUCMI170IHB", "DUCMI1701HB"},
		// No adjacent digit: letters stay.
		{"DUCMIOB", "DUCMIOB"},
		// Lower-case input is upper-cased.
		{"ducmi17ohb", "DUCMI170HB"},
	}

	for _, tt := range tests {
		if got := e.NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCode_FamilyPrefixProtected(t *testing.T) {
	e := newTestEngine(t)

	// The I in UCMI sits next to a digit but belongs to the family prefix;
	// rewriting it would detach the code from its catalog series.
	if got := e.NormalizeCode("UCMI170B"); got != "UCMI170B" {
		t.Errorf("NormalizeCode corrupted family prefix: %q", got)
	}
}

func TestNormalizeCode_FamilyFixups(t *testing.T) {
	// Disable the generic confusion pass so the family-scoped fixups are
	// exercised on their own.
	cfg := DefaultConfig()
	cfg.Confusions = nil
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"UCMI170OB", "UCMI1700B"},
		{"CASMI35IB", "CASMI351B"},
		// Fixups are anchored to their family; other codes untouched.
		{"DUCMI170OB", "DUCMI170OB"},
	}

	for _, tt := range tests {
		if got := e.NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCode_UnknownPrefixStillCorrected(t *testing.T) {
	e := newTestEngine(t)

	// Codes outside every family get the confusion pass over the whole
	// string; the family filter deals with them later.
	if got := e.NormalizeCode("XX7O"); got != "XX70" {
		t.Errorf("NormalizeCode(%q) = %q, want %q", "XX7O", got, "XX70")
	}
}
