package contentsafe

import "strings"

// htmlEscaper covers the five HTML-significant characters plus the
// forward slash. strings.Replacer substitutes each position at most
// once per pass, so the ampersands of emitted entities are not
// re-escaped within a single call.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeText replaces every HTML-significant character in s (&, <, >,
// double and single quote, and the forward slash) with its entity
// equivalent. It is total and deliberately not idempotent: escaping
// already-escaped text double-escapes the ampersands, so callers must
// escape raw text exactly once per pipeline stage.
func EscapeText(s string) string {
	return htmlEscaper.Replace(s)
}
