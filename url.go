package contentsafe

import (
	"net/url"
	"strings"
)

// relativeBase anchors relative inputs during scheme checks. Only the
// scheme of the resolution result is ever inspected, so the host is
// arbitrary.
var relativeBase = &url.URL{Scheme: "https", Host: "localhost"}

// IsSafeURL reports whether raw resolves to a URL whose scheme is in
// the safe set (http, https, mailto). Relative URLs resolve against an
// https base and are therefore safe. Any parse failure is unsafe.
func IsSafeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(relativeBase.ResolveReference(u).Scheme)
	return defaultAllowedSchemes[scheme]
}

// SanitizeURL normalizes raw into a URL safe to navigate to, trying
// three interpretations in order:
//
//  1. An absolute URL. The scheme must be http or https — narrower
//     than IsSafeURL, which also admits mailto for inline links. Any
//     other absolute scheme (javascript:, data:, ...) is rejected
//     outright, with no further interpretation.
//  2. A site-relative path ("/..." or "./..."), passed through
//     unchanged.
//  3. A bare host like "example.com/page", repaired by prefixing
//     "https://".
//
// The second return is false when every interpretation fails. It never
// panics.
func SanitizeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		if webSchemes[strings.ToLower(u.Scheme)] {
			return u.String(), true
		}
		return "", false
	}

	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "./") {
		return raw, true
	}

	if u, err := url.Parse("https://" + raw); err == nil && u.Host != "" {
		return u.String(), true
	}
	return "", false
}
