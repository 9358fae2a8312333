package contentsafe

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Sanitize parses input, removes everything outside the tag, attribute,
// and URL-scheme allowlists, and returns the re-serialized HTML.
//
// Disallowed elements are not deleted outright: each is replaced by its
// flattened text content, so unsafe structure disappears while the
// human-readable content survives. Comments never survive. Attributes
// whose name starts with "on" are dropped regardless of allowlists,
// href/src values must pass IsSafeURL, and every surviving anchor is
// force-set to rel="noopener noreferrer" target="_blank".
//
// A nil opts selects the default allowlists and the built-in parser.
// Sanitize is total; when the configured parser has no tree capability
// it silently degrades to bracket stripping — use SanitizeWithReport
// to observe that.
func Sanitize(input string, opts *Options) string {
	out, _ := SanitizeWithReport(input, opts)
	return out
}

// SanitizeWithReport is Sanitize plus a flag reporting whether the
// weaker bracket-stripping fallback was used in place of full tree
// filtering. The fallback removes <...> runs and escapes the rest; it
// does not enforce the attribute or URL allowlists, so callers that
// care about the full guarantee should check degraded.
func SanitizeWithReport(input string, opts *Options) (out string, degraded bool) {
	if input == "" {
		return "", false
	}
	if opts != nil && opts.StripAllTags {
		return EscapeText(input), false
	}

	root, err := parseFragment(opts.parser(), input)
	if err != nil {
		return stripBrackets(input), true
	}

	allowedTags := opts.tagSet()
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		writeSanitized(&buf, c, allowedTags)
	}
	return buf.String(), false
}

// writeSanitized walks n depth-first, writing the filtered
// serialization into buf. The parsed tree is never mutated; the output
// is built fresh, so there is no replace-during-iteration hazard.
func writeSanitized(buf *bytes.Buffer, n *html.Node, allowedTags map[string]bool) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if !allowedTags[tag] {
			// Unsafe structure is discarded, content is kept: the
			// whole subtree collapses to one text node.
			buf.WriteString(html.EscapeString(flattenText(n)))
			return
		}

		attrs := filterAttrs(n.Attr, tag)
		if tag == "a" {
			// Tag-level, not per-attribute: fires even when the anchor
			// had no attributes at all.
			attrs = setAttr(attrs, "rel", anchorRel)
			attrs = setAttr(attrs, "target", anchorTarget)
		}

		buf.WriteByte('<')
		buf.WriteString(tag)
		for _, a := range attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.Key)
			buf.WriteString(`="`)
			buf.WriteString(html.EscapeString(a.Val))
			buf.WriteByte('"')
		}
		if isVoidElement(tag) {
			buf.WriteString(" />")
			return
		}
		buf.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeSanitized(buf, c, allowedTags)
		}
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')

	case html.CommentNode, html.DoctypeNode:
		// dropped

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeSanitized(buf, c, allowedTags)
		}
	}
}

// StripTags flattens input to plain text: all markup is removed and
// entity references are decoded. Unlike Options.StripAllTags, which
// escapes tags into visible text, StripTags discards them.
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	root, err := parseFragment(nativeParser{}, input)
	if err != nil {
		return bracketRun.ReplaceAllString(input, "")
	}
	return flattenText(root)
}

// --- helpers ---------------------------------------------------------

func filterAttrs(attrs []html.Attribute, tag string) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, eventHandlerPrefix) {
			continue
		}
		if !attrAllowed(key, tag) {
			continue
		}
		if (key == "href" || key == "src") && !IsSafeURL(a.Val) {
			continue
		}
		out = append(out, html.Attribute{Key: key, Val: a.Val})
	}
	return out
}

func attrAllowed(attr, tag string) bool {
	return defaultAllowedAttributes[tag][attr] || defaultAllowedAttributes["*"][attr]
}

// setAttr replaces the named attribute in place or appends it,
// preserving attribute order so re-sanitizing sanitized output is
// byte-identical.
func setAttr(attrs []html.Attribute, key, val string) []html.Attribute {
	for i, a := range attrs {
		if a.Key == key {
			attrs[i].Val = val
			return attrs
		}
	}
	return append(attrs, html.Attribute{Key: key, Val: val})
}

func flattenText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
