package audit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/dom"
)

func docWithDescription(content string) dom.Document {
	return dom.Parse(fmt.Sprintf(
		`<html><head><meta name="description" content=%q></head><body></body></html>`, content))
}

func TestAnalyzeDescriptionMissing(t *testing.T) {
	t.Parallel()

	res := AnalyzeDescription(dom.Parse("<html><head></head><body></body></html>"))
	require.Equal(t, StatusFail, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeDescriptionEmpty(t *testing.T) {
	t.Parallel()

	res := AnalyzeDescription(docWithDescription("   "))
	require.Equal(t, StatusWarn, res.Status)
	require.False(t, res.Verdict)
}

func TestAnalyzeDescriptionCJK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length  int
		status  Status
		verdict bool
	}{
		{40, StatusFail, false},
		{80, StatusWarn, false},
		{120, StatusPass, true},
		{200, StatusPass, true},
		{220, StatusWarn, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("len=%d", tc.length), func(t *testing.T) {
			t.Parallel()
			res := AnalyzeDescription(docWithDescription(strings.Repeat("文", tc.length)))
			require.Equal(t, tc.status, res.Status)
			require.Equal(t, tc.verdict, res.Verdict)
		})
	}
}

func TestAnalyzeDescriptionLatin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length  int
		status  Status
		verdict bool
	}{
		{100, StatusFail, false},
		{130, StatusWarn, false},
		{150, StatusPass, true},
		{190, StatusWarn, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("len=%d", tc.length), func(t *testing.T) {
			t.Parallel()
			res := AnalyzeDescription(docWithDescription(strings.Repeat("a", tc.length)))
			require.Equal(t, tc.status, res.Status)
			require.Equal(t, tc.verdict, res.Verdict)
		})
	}
}

func TestAnalyzeDescriptionExcerptTruncated(t *testing.T) {
	t.Parallel()

	res := AnalyzeDescription(docWithDescription(strings.Repeat("b", 150)))
	excerpt, ok := res.Metrics["excerpt"].(string)
	require.True(t, ok)
	require.Len(t, excerpt, 103) // 100 runes plus ellipsis
	require.True(t, strings.HasSuffix(excerpt, "..."))
}
