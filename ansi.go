package contentsafe

import (
	"regexp"
	"strings"
)

// sgrTable maps literal SGR escape sequences to span markup, applied
// in order. Codes that open a span are only ever closed by a reset
// (ESC[0m); input with unmatched opens produces unbalanced markup,
// mirroring how the terminal stream itself was unbalanced.
var sgrTable = []struct {
	seq    string
	markup string
}{
	{"\x1b[30m", `<span class="text-gray-400">`},
	{"\x1b[31m", `<span class="text-red-400">`},
	{"\x1b[32m", `<span class="text-green-400">`},
	{"\x1b[33m", `<span class="text-yellow-400">`},
	{"\x1b[34m", `<span class="text-blue-400">`},
	{"\x1b[35m", `<span class="text-purple-400">`},
	{"\x1b[36m", `<span class="text-cyan-400">`},
	{"\x1b[37m", `<span class="text-white">`},
	{"\x1b[0m", "</span>"},
	{"\x1b[1m", `<span class="font-bold">`},
	{"\x1b[4m", `<span class="underline">`},
}

// unknownSGR matches any remaining SGR sequence after the known table
// has been applied.
var unknownSGR = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ANSIToHTML converts ANSI-colored terminal output to safe HTML. The
// input is escaped first (the escape byte and the bracket survive
// escaping, so the table sequences still match), then each known SGR
// sequence becomes its span markup, then every unrecognized SGR
// sequence is deleted with no replacement.
func ANSIToHTML(text string) string {
	if text == "" {
		return ""
	}
	out := EscapeText(text)
	for _, e := range sgrTable {
		out = strings.ReplaceAll(out, e.seq, e.markup)
	}
	return unknownSGR.ReplaceAllString(out, "")
}
