package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/dom"
)

func docWithCanonical(href string) dom.Document {
	return dom.Parse(fmt.Sprintf(
		`<html><head><link rel="canonical" href=%q></head><body></body></html>`, href))
}

func TestAnalyzeCanonicalMissing(t *testing.T) {
	t.Parallel()

	res := AnalyzeCanonical(dom.Parse("<html><head></head><body></body></html>"), "https://example.com/page")
	require.Equal(t, StatusWarn, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeCanonicalEmptyHref(t *testing.T) {
	t.Parallel()

	res := AnalyzeCanonical(docWithCanonical("  "), "https://example.com/page")
	require.Equal(t, StatusFail, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeCanonicalSelfReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		href    string
		status  Status
		verdict bool
	}{
		{"exact match", "https://example.com/page", "https://example.com/page", StatusPass, true},
		{"trailing slash ignored", "https://example.com/page/", "https://example.com/page", StatusPass, true},
		{"scheme ignored", "http://example.com/page", "https://example.com/page", StatusPass, true},
		{"different path", "https://example.com/page", "https://example.com/other", StatusWarn, false},
		{"different host", "https://example.com/page", "https://other.com/page", StatusWarn, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := AnalyzeCanonical(docWithCanonical(tc.href), tc.current)
			require.Equal(t, tc.status, res.Status)
			require.Equal(t, tc.verdict, res.Verdict)
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "example.com/a/b", NormalizeURL("https://example.com/a/b/"))
	require.Equal(t, "example.com", NormalizeURL("https://example.com/"))
	require.Equal(t, "example.com/a", NormalizeURL(" https://example.com/a "))
}

func TestNormalizeURLIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com/page/",
		"http://example.com",
		"example.com/path//",
	}
	for _, in := range inputs {
		once := NormalizeURL(in)
		require.Equal(t, once, NormalizeURL(once))
	}
}
