package contentsafe

import "strings"

// The default allowlist tables below are built once at package
// initialization and never mutated afterwards; concurrent calls read
// them without synchronization. Per-call overrides go through
// [Options] instead of touching these.

// DefaultAllowedTags returns the tag names the sanitizer keeps when
// [Options.AllowedTags] is not set: headings, paragraph and line
// break, inline emphasis, lists, blockquote and code, anchors, generic
// containers, tables, and images.
func DefaultAllowedTags() []string {
	tags := make([]string, len(defaultAllowedTagList))
	copy(tags, defaultAllowedTagList)
	return tags
}

var defaultAllowedTagList = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "br",
	"b", "i", "em", "strong", "u", "s", "del",
	"ul", "ol", "li",
	"blockquote", "code", "pre",
	"a", "img",
	"div", "span",
	"table", "thead", "tbody", "tr", "th", "td",
}

var defaultAllowedTags = tagSet(defaultAllowedTagList)

// defaultAllowedAttributes maps tag name to permitted attribute names.
// The "*" key applies to every tag. An attribute survives only if its
// name is in the tag-specific set or the wildcard set.
var defaultAllowedAttributes = map[string]map[string]bool{
	"a":   {"href": true, "title": true, "target": true, "rel": true},
	"img": {"src": true, "alt": true, "title": true, "width": true, "height": true},
	"td":  {"colspan": true, "rowspan": true},
	"th":  {"colspan": true, "rowspan": true},
	"*":   {"id": true, "class": true, "lang": true, "dir": true},
}

// defaultAllowedSchemes are the schemes IsSafeURL accepts for href and
// src values: web and mail only, never script-executing schemes.
var defaultAllowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// webSchemes is the narrower set SanitizeURL repairs toward.
var webSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// Anchor hardening values, force-set on every surviving <a>.
const (
	anchorRel    = "noopener noreferrer"
	anchorTarget = "_blank"
)

// eventHandlerPrefix marks attributes that bind executable code
// (onclick, onerror, ...). They are dropped unconditionally,
// regardless of allowlist membership.
const eventHandlerPrefix = "on"

// Options configures a single Sanitize call. The zero value (or a nil
// pointer) selects the defaults.
type Options struct {
	// AllowedTags replaces the default tag allowlist for this call.
	// Nil means DefaultAllowedTags; an empty non-nil slice allows no
	// tags at all.
	AllowedTags []string

	// StripAllTags short-circuits tree filtering entirely: the input
	// is escaped as a whole and returned, so every tag becomes inert
	// text.
	StripAllTags bool

	// Parser supplies the document-tree parsing capability. Nil means
	// the built-in golang.org/x/net/html parser. A parser that fails
	// (for example NullParser) degrades the call to bracket stripping;
	// see SanitizeWithReport.
	Parser TreeParser
}

func (o *Options) tagSet() map[string]bool {
	if o == nil || o.AllowedTags == nil {
		return defaultAllowedTags
	}
	return tagSet(o.AllowedTags)
}

func (o *Options) parser() TreeParser {
	if o == nil || o.Parser == nil {
		return nativeParser{}
	}
	return o.Parser
}

func tagSet(tags []string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[strings.ToLower(t)] = true
	}
	return m
}
