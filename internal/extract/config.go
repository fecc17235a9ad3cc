package extract

// Family identifies one product-catalog code series by its prefix and
// carries the OCR fixups specific to that series. Families are ordered: the
// position in Config.Families is the sort priority of the family's rows, and
// the first prefix that matches a code decides its family.
type Family struct {
	// Prefix is the catalog prefix, e.g. "DUCMI". Matched case-insensitively
	// against the start of a code.
	Prefix string `yaml:"prefix"`

	// Fixups are regular-expression substitutions applied, in order, to
	// codes of this family after the generic confusion pass. They correct
	// systematic recognition errors particular to the family's shape.
	Fixups []Fixup `yaml:"fixups,omitempty"`
}

// Fixup is a single regular-expression substitution. Replace may use
// ${n} capture references.
type Fixup struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// Confusion pairs a letter with the digit it is visually confused with by
// the OCR engine. Both fields must be a single character.
type Confusion struct {
	Letter string `yaml:"letter"`
	Digit  string `yaml:"digit"`
}

// Correction rewrites a known OCR misspelling or standardizes the
// capitalization of a domain term in descriptions. Match is treated as a
// whole word and compared case-insensitively.
type Correction struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// Config holds every tunable parameter of the extraction engine. The zero
// value is not usable; start from DefaultConfig and override fields as
// needed.
type Config struct {
	// LineTolerance is the vertical clustering tolerance in pixels: a token
	// whose Top differs from the open line's mean Top by more than this
	// starts a new line. Roughly one text-line height at the scan
	// resolution.
	LineTolerance int `yaml:"line_tolerance"`

	// BandMargin is the pixel margin inside the table band that excludes
	// the header and footer lines themselves from row classification.
	BandMargin int `yaml:"band_margin"`

	// QuantityMaxDigits bounds the quantity token: a pure integer of 1 to
	// this many digits.
	QuantityMaxDigits int `yaml:"quantity_max_digits"`

	// HeaderKeywords must all appear in a line's upper-cased text for it to
	// be the table header.
	HeaderKeywords []string `yaml:"header_keywords"`

	// FooterPrefixes terminate the table: the first line after the header
	// whose upper-cased text begins with any of these is the footer.
	FooterPrefixes []string `yaml:"footer_prefixes"`

	// Denylist excludes structural lines that stray inside the band: a line
	// containing any of these upper-cased keywords is never a product row.
	Denylist []string `yaml:"denylist"`

	// Families are the recognized product code families, in sort-priority
	// order. At least one is required.
	Families []Family `yaml:"families"`

	// Confusions are the digit/letter pairs corrected inside codes when a
	// horizontally adjacent character is a digit.
	Confusions []Confusion `yaml:"confusions"`

	// Corrections is the keyword replacement table applied to assembled
	// descriptions.
	Corrections []Correction `yaml:"corrections"`
}

// DefaultConfig returns the parameters tuned for the dispatch order-sheet
// template this engine was built against: A4 sheets scanned at roughly
// 288 DPI with an ITEM/DESCRIPTION table header.
func DefaultConfig() Config {
	return Config{
		LineTolerance:     18,
		BandMargin:        5,
		QuantityMaxDigits: 3,
		HeaderKeywords:    []string{"ITEM", "DESCRIPTION"},
		FooterPrefixes:    []string{"COMMENT", "TOTAL ITEMS", "PREPARE"},
		Denylist: []string{
			"ITEM NO", "DESCRIPTION", "PRICE", "AMOUNT", "TOTAL",
			"COMMENT", "ABN", "A.B.N", "PAGE", "BILL TO",
			"PREPARE", "CUSTOMER", "CHECK BY", "MANAGER",
		},
		Families: []Family{
			{Prefix: "DUCMI"},
			{Prefix: "UCMI", Fixups: []Fixup{
				// Trailing outdoor-unit marker: a zero before the final B is
				// routinely read as the letter O.
				{Pattern: `^(UCMI\d+)O(B)$`, Replace: `${1}0${2}`},
			}},
			{Prefix: "CASMI", Fixups: []Fixup{
				// Indoor-unit suffix 1B misread as IB.
				{Pattern: `^(CASMI\d+)IB$`, Replace: `${1}1B`},
			}},
			{Prefix: "CASMIFP"},
		},
		Confusions: []Confusion{
			{Letter: "O", Digit: "0"},
			{Letter: "I", Digit: "1"},
		},
		Corrections: []Correction{
			{Match: "Casstte", Replace: "Cassette"},
			{Match: "Cassstte", Replace: "Cassette"},
			{Match: "ducted", Replace: "DUCTED"},
			{Match: "cassette", Replace: "Cassette"},
			{Match: "outdoor", Replace: "OUTDOOR"},
			{Match: "indoor", Replace: "INDOOR"},
			{Match: "panel", Replace: "Panel"},
		},
	}
}
