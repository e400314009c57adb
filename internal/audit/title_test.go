package audit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/dom"
)

func docWithTitle(title string) dom.Document {
	return dom.Parse(fmt.Sprintf("<html><head><title>%s</title></head><body></body></html>", title))
}

func TestAnalyzeTitleMissing(t *testing.T) {
	t.Parallel()

	res := AnalyzeTitle(dom.Parse("<html><body></body></html>"))
	require.Equal(t, StatusFail, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeTitleCJK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
		status Status
	}{
		{"too short", 10, StatusFail},
		{"slightly short", 20, StatusWarn},
		{"appropriate", 30, StatusPass},
		{"upper bound", 70, StatusPass},
		{"too long", 75, StatusWarn},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := AnalyzeTitle(docWithTitle(strings.Repeat("学", tc.length)))
			require.Equal(t, tc.status, res.Status)
			require.Equal(t, tc.length, res.Metrics["length"])
		})
	}
}

func TestAnalyzeTitleLatin(t *testing.T) {
	t.Parallel()

	res := AnalyzeTitle(docWithTitle("Short"))
	require.Equal(t, StatusFail, res.Status)
	require.False(t, res.Verdict)

	res = AnalyzeTitle(docWithTitle(strings.Repeat("word ", 11))) // 54 runes after trim
	require.Equal(t, StatusPass, res.Status)
	require.True(t, res.Verdict)

	res = AnalyzeTitle(docWithTitle(strings.Repeat("x", 80)))
	require.Equal(t, StatusWarn, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeTitleVerdictStricterThanStatus(t *testing.T) {
	t.Parallel()

	// 40 Latin runes: status WARN (under 50) but inside the legacy 30..70
	// verdict window.
	res := AnalyzeTitle(docWithTitle(strings.Repeat("a", 40)))
	require.Equal(t, StatusWarn, res.Status)
	require.True(t, res.Verdict)
}
