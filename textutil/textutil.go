package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Truncate shortens s to at most max runes, appending a single
// ellipsis rune when anything was cut. max of zero or less yields the
// empty string. Truncation counts runes, not bytes, so multi-byte
// characters are never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses every run of whitespace to a single
// space and trims leading and trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// SingleLine converts a multi-line string into one line: line breaks
// become spaces, then whitespace is normalized.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return NormalizeWhitespace(s)
}

// foldChain decomposes to NFD, strips combining marks, and recomposes,
// so "Crème Brûlée" folds to "Creme Brulee".
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics replaces accented characters with their unaccented
// equivalents. Characters the chain cannot transform are passed
// through unchanged.
func FoldDiacritics(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return s
	}
	return out
}
