package contentsafe

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoTreeParser is returned by NullParser to signal that no
// document-tree parsing capability is available.
var ErrNoTreeParser = errors.New("contentsafe: no document tree parser available")

// TreeParser builds a document tree from raw markup. Sanitize uses the
// built-in golang.org/x/net/html implementation unless Options.Parser
// supplies another one; a parser that returns an error degrades the
// call to the weaker bracket-stripping path.
type TreeParser interface {
	Parse(r io.Reader) (*html.Node, error)
}

// nativeParser is the default TreeParser, backed by html.Parse.
type nativeParser struct{}

func (nativeParser) Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// NullParser is a TreeParser with no parsing capability. Every Parse
// call fails with ErrNoTreeParser, forcing Sanitize onto the
// bracket-stripping fallback. It exists for environments (and tests)
// where tree construction must be assumed unavailable.
type NullParser struct{}

// Parse always fails with ErrNoTreeParser.
func (NullParser) Parse(io.Reader) (*html.Node, error) {
	return nil, ErrNoTreeParser
}

var bracketRun = regexp.MustCompile(`<[^>]*>`)

// stripBrackets is the degraded substitute for tree filtering: remove
// every <...> run, then escape whatever markup-significant characters
// remain (unterminated brackets, attribute remnants) so no live markup
// can survive this path either. Strictly weaker than the full
// algorithm — attribute and scheme allowlists are not enforced, text
// is escaped wholesale.
func stripBrackets(s string) string {
	return EscapeText(bracketRun.ReplaceAllString(s, ""))
}

// findBody locates the <body> element html.Parse synthesizes around
// fragment input.
func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}

func parseFragment(p TreeParser, input string) (*html.Node, error) {
	doc, err := p.Parse(strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoTreeParser
	}
	if body := findBody(doc); body != nil {
		return body, nil
	}
	return doc, nil
}
