package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockedSite(t *testing.T) {
	t.Parallel()

	blocked := []string{"bbc.com", "wikipedia.org", "google.com"}

	tests := []struct {
		url     string
		site    string
		matched bool
	}{
		{"https://www.bbc.com/news", "bbc.com", true},
		{"https://EN.WIKIPEDIA.ORG/wiki/Go", "wikipedia.org", true},
		{"https://example.com/page", "", false},
		{"https://google.com.evil.example", "google.com", true},
	}
	for _, tc := range tests {
		site, matched := blockedSite(tc.url, blocked)
		require.Equal(t, tc.matched, matched, tc.url)
		require.Equal(t, tc.site, site, tc.url)
	}
}

func TestConfirmContinue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes uppercase", "Y\n", true},
		{"yes padded", "  y  \n", true},
		{"no", "n\n", false},
		{"anything else", "maybe\n", false},
		{"empty input", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			got := confirmContinue(strings.NewReader(tc.input), &out, "bbc.com")
			require.Equal(t, tc.want, got)
			require.Contains(t, out.String(), "bbc.com")
		})
	}
}
