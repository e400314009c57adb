package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/dom"
)

func docWithBody(body string) dom.Document {
	return dom.Parse(fmt.Sprintf("<html><body>%s</body></html>", body))
}

func TestHeadingNoH1(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)
	res := h.Analyze(docWithBody("<p>no headings</p>"), "any title")
	require.Equal(t, StatusFail, res.Status)
	require.False(t, res.Verdict)
}

func TestHeadingVerdictRequiresExactlyOne(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)

	res := h.Analyze(docWithBody("<h1>中文标题测试页面内容</h1>"), "中文标题测试页面内容与副标题")
	require.True(t, res.Verdict)

	res = h.Analyze(docWithBody("<h1>中文标题测试页面内容</h1><h1>另外一个主标题出现</h1>"), "中文标题测试页面内容")
	require.False(t, res.Verdict)
	require.Equal(t, StatusWarn, res.Status)
}

func TestHeadingVerdictIndependentOfRelation(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)
	// Single H1 completely unrelated to the title: the relatedness finding
	// is advisory, so the verdict stays true.
	res := h.Analyze(docWithBody("<h1>完全不同内容条目</h1>"), "这是一个标题测试")
	require.True(t, res.Verdict)
	require.Equal(t, StatusWarn, res.Status)
	require.Equal(t, relationWeak, res.Metrics["title_relation"])
}

func TestHeadingRelations(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)

	tests := []struct {
		name     string
		h1       string
		title    string
		relation string
	}{
		{"identical", "中文标题测试页面内容", "中文标题测试页面内容", relationIdentical},
		{"containment", "中文标题测试", "中文标题测试页面内容", relationContainment},
		{"phrase overlap", "中文标题不同后缀延伸", "中文标题测试页面内容", relationOverlap},
		{"weak", "完全不同内容条目", "这是一个标题测试", relationWeak},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := h.Analyze(docWithBody("<h1>"+tc.h1+"</h1>"), tc.title)
			require.Equal(t, tc.relation, res.Metrics["title_relation"])
		})
	}
}

func TestHeadingStopWordsDroppedBeforeWindowing(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)
	// After dropping 的 both strings start with the same three characters.
	res := h.Analyze(docWithBody("<h1>的学习指南进阶篇章节选</h1>"), "学习指南入门基础教程")
	require.Equal(t, relationOverlap, res.Metrics["title_relation"])
}

func TestHeadingEmptyH1Fails(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)
	res := h.Analyze(docWithBody("<h1>  </h1>"), "标题")
	require.Equal(t, StatusFail, res.Status)
	// Exactly one H1 still satisfies the count rule.
	require.True(t, res.Verdict)
}

func TestHeadingLengthBands(t *testing.T) {
	t.Parallel()

	h := NewHeadingAnalyzer(nil)

	res := h.Analyze(docWithBody("<h1>短</h1>"), "")
	require.Equal(t, StatusWarn, res.Status)

	long := make([]byte, 0, 101)
	for range 101 {
		long = append(long, 'x')
	}
	res = h.Analyze(docWithBody("<h1>"+string(long)+"</h1>"), "")
	require.Equal(t, StatusWarn, res.Status)
}
