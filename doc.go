// Package contentsafe converts untrusted or semi-trusted text into
// strings that are safe to render as HTML.
//
// # Overview
//
// contentsafe covers three kinds of input, each through its own
// pipeline:
//
//   - HTML fragments: [Sanitize] parses the input with the standard
//     golang.org/x/net/html tokenizer, walks the resulting node tree,
//     and produces new HTML containing only allowlisted tags,
//     attributes, and URL schemes. Disallowed elements are replaced by
//     their flattened text content, so human-readable content survives
//     while unsafe structure does not.
//   - A constrained markdown dialect: [MarkdownToHTML] escapes the
//     whole input first and then applies an ordered set of textual
//     substitutions, so raw HTML embedded in the markdown can never
//     become live markup.
//   - ANSI-colored terminal output: [ANSIToHTML] maps a fixed set of
//     SGR escape sequences to styled spans and strips everything else.
//
// The pipelines are independent; they share two leaves, [EscapeText]
// and the URL validator ([IsSafeURL], [SanitizeURL]).
//
// # Security
//
// contentsafe defends against common XSS vectors including:
//   - Script injection via <script> tags
//   - Event handler attributes (onclick, onerror, etc.)
//   - javascript: and data: URL schemes in href/src
//   - HTML comments and markup smuggled through markdown or terminal
//     output
//
// Surviving anchors are always hardened with rel="noopener noreferrer"
// and target="_blank", whether or not the input carried those
// attributes.
//
// # Error handling
//
// Every exported function is total: no errors, no panics. A sanitizer
// that can fail is a sanitizer that can be bypassed by triggering the
// failure path and rendering the original on recovery, so malformed
// input collapses to a safe output instead (empty string, ok=false,
// or the degraded flag of [SanitizeWithReport]).
//
// # Thread safety
//
// All functions are safe for concurrent use. The default allowlist
// tables are immutable after package initialization, and each call
// builds and discards its own node tree.
package contentsafe
