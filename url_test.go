package contentsafe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/contentsafe"
)

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		safe bool
	}{
		{"https absolute", "https://example.com", true},
		{"http absolute", "http://example.com/page?q=1", true},
		{"mailto", "mailto:ops@example.com", true},
		{"site relative", "/dashboard/overview", true},
		{"dot relative", "./docs", true},
		{"bare host resolves relative", "example.com", true},
		{"javascript scheme", "javascript:alert(1)", false},
		{"javascript mixed case", "JaVaScRiPt:alert(1)", false},
		{"data scheme", "data:text/html,<script>alert(1)</script>", false},
		{"vbscript scheme", "vbscript:msgbox(1)", false},
		{"ftp scheme", "ftp://example.com/file", false},
		{"control character", "java\nscript:alert(1)", false},
		{"surrounding whitespace", "  https://example.com  ", true},
		{"empty", "", true}, // resolves to the base itself
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.safe, contentsafe.IsSafeURL(tt.url))
		})
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{"https passes", "https://example.com", "https://example.com", true},
		{"http passes", "http://example.com/x", "http://example.com/x", true},
		{"javascript rejected", "javascript:alert(1)", "", false},
		{"data rejected", "data:text/html,x", "", false},
		{"mailto rejected by narrower set", "mailto:ops@example.com", "", false},
		{"site relative passes through", "/reports/sla", "/reports/sla", true},
		{"dot relative passes through", "./relative", "./relative", true},
		{"bare host repaired", "example.com/page", "https://example.com/page", true},
		{"empty rejected", "", "", false},
		{"whitespace only rejected", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := contentsafe.SanitizeURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeURL_UnsafeSchemeNotRepaired(t *testing.T) {
	// An absolute URL with a bad scheme is rejected outright; the
	// https-prefix repair must not resurrect it.
	got, ok := contentsafe.SanitizeURL("javascript:alert(1)")
	assert.False(t, ok)
	assert.Empty(t, got)
}
