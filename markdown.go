package contentsafe

import (
	"regexp"
	"strings"
)

// The markdown dialect is deliberately tiny: headers, bold, italic,
// fenced and inline code, dash list items, paragraphs, line breaks.
// Conversion is a fixed sequence of textual substitutions over input
// that has already been escaped, so ordering is load-bearing:
//
//   - longer header markers before shorter ones, or "### x" matches
//     as an h1 with a "## " prefix
//   - bold before italic, or "**x**" is consumed as two italics
//   - fenced code before inline code, or the fence backticks are
//     consumed pairwise
var (
	mdH3       = regexp.MustCompile(`(?m)^### (.*)$`)
	mdH2       = regexp.MustCompile(`(?m)^## (.*)$`)
	mdH1       = regexp.MustCompile(`(?m)^# (.*)$`)
	mdBold     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic   = regexp.MustCompile(`\*([^*]+)\*`)
	mdFence    = regexp.MustCompile("(?s)```(.*?)```")
	mdCode     = regexp.MustCompile("`([^`]+)`")
	mdListItem = regexp.MustCompile(`(?m)^- (.*)$`)
)

// MarkdownToHTML converts the constrained markdown dialect to safe
// HTML. The entire input is escaped before any substitution runs, so
// raw HTML embedded in the markdown becomes inert text — that escape
// is the sole XSS defense of this pipeline, and the only markup in the
// output is markup this function emitted itself.
func MarkdownToHTML(text string) string {
	if text == "" {
		return ""
	}
	out := EscapeText(text)

	out = mdH3.ReplaceAllString(out, "<h3>$1</h3>")
	out = mdH2.ReplaceAllString(out, "<h2>$1</h2>")
	out = mdH1.ReplaceAllString(out, "<h1>$1</h1>")
	out = mdBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = mdItalic.ReplaceAllString(out, "<em>$1</em>")
	out = mdFence.ReplaceAllString(out, "<pre><code>$1</code></pre>")
	out = mdCode.ReplaceAllString(out, "<code>$1</code>")
	out = mdListItem.ReplaceAllString(out, "<li>$1</li>")
	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	out = strings.ReplaceAll(out, "\n", "<br/>")

	if !strings.HasPrefix(out, "<") {
		out = "<p>" + out + "</p>"
	}
	return out
}
