// Package textutil provides small presentation helpers shared by the
// dashboard layer that also consumes the contentsafe sanitizers:
// rune-safe truncation, whitespace normalization, and diacritic
// folding for labels that must survive narrow table cells.
//
// All helpers are pure functions over strings; none return errors, and
// all are safe for concurrent use.
package textutil
