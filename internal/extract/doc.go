// Package extract recovers structured product rows from word-level OCR
// output of scanned order sheets.
//
// Scanned order sheets carry a product table with no reliable column or row
// delimiters, and character-level recognition noise corrupts individual
// codes. This package reconstructs the table purely from token geometry:
// each input Token is an OCR-recognized word with its pixel bounding box and
// confidence score, and the output is a list of Row values holding a product
// code, description and quantity.
//
// # Pipeline
//
// Extraction of a page runs in fixed stages:
//
//  1. Line assembly: tokens are clustered into horizontal text lines by
//     vertical proximity (greedy single pass against a running mean).
//  2. Band location: the table header and footer lines are found by keyword
//     signature, bounding the vertical region that can contain product rows.
//  3. Row classification: each line inside the band is tested for a code
//     token and a quantity token; description tokens are taken from the span
//     between them, with a one-line continuation fallback for wrapped
//     descriptions.
//  4. Code normalization: digit/letter OCR confusions are corrected and
//     family-specific fixups applied.
//  5. Finalization: rows from all pages are filtered to known code families,
//     deduplicated and deterministically ordered.
//
// # Coordinate System
//
// All geometry uses image pixel coordinates: origin at the top-left corner,
// X increasing rightward, Y increasing downward.
//
// # Error Handling
//
// OCR noise is expected, not exceptional. A line that yields no code or no
// quantity simply contributes zero rows, and a page without header/footer
// matches degrades to scanning the whole page. The only explicit failure is
// ErrNoTokens, returned when an entire document produced no tokens at all.
// A page whose table header was located but yielded no rows is surfaced as a
// warning on the Result, not an error.
//
// # Limitations
//
// The greedy vertical clustering assumes pages are not rotated or skewed
// beyond the line tolerance, and the continuation fallback recovers at most
// one extra description line. Documents outside those assumptions need a
// denser clustering step that is deliberately not part of this package.
package extract
