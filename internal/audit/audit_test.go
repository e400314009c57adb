package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/seolint/seolint/internal/charset"
)

const gbkPage = `<!DOCTYPE html>
<html>
<head>
<title>中文网站搜索优化检测工具首页介绍与使用说明及常见问题解答完整指南</title>
<meta name="description" content="这是一段用于检测的页面描述内容，长度经过调整以落在中文描述的推荐区间之内。它介绍了页面的主要功能，说明了检测工具覆盖的各项指标，并给出使用建议，帮助站长理解检测结果的含义，改进页面在搜索引擎中的表现和可见性。">
<link rel="canonical" href="https://demo.example.cn/tools/seo">
</head>
<body>
<h1>中文网站搜索优化检测工具首页</h1>
<article>
<p>这里是第一段正文内容，包含足够多的文字来证明页面在服务端渲染时已经携带了真实内容，而不是等待脚本加载之后才出现。</p>
<p>这里是第二段正文内容，同样包含足够多的文字，覆盖工具的使用方式、检测范围以及对检测结果的解释，方便读者理解。</p>
</article>
<img src="/img/logo.png" alt="工具标志">
</body>
</html>`

func encodeGBK(t *testing.T, text string) []byte {
	t.Helper()
	out, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	return out
}

func TestAuditGBKPage(t *testing.T) {
	t.Parallel()

	auditor := NewAuditor(nil, nil, nil)
	rep := auditor.Audit(encodeGBK(t, gbkPage), "gbk", "https://demo.example.cn/tools/seo")

	require.Equal(t, "https://demo.example.cn/tools/seo", rep.URL)
	require.Equal(t, "gbk", rep.Encoding)
	require.Equal(t, charset.StageDeclared, rep.DecodeStage)
	require.False(t, rep.DecodeDegraded)
	require.Empty(t, rep.Advisory)

	require.Len(t, rep.Results, 6)
	order := make([]string, 0, len(rep.Results))
	for _, r := range rep.Results {
		order = append(order, r.Check)
	}
	require.Equal(t, []string{
		"content_visibility", "title", "meta_description", "h1", "image_alt", "canonical",
	}, order)

	byCheck := map[string]FieldResult{}
	for _, r := range rep.Results {
		byCheck[r.Check] = r
	}

	require.True(t, byCheck["content_visibility"].Verdict)
	require.Equal(t, StatusPass, byCheck["title"].Status)
	require.Equal(t, LanguageCJK, byCheck["title"].Metrics["language"].(LanguageProfile).Dominant)
	require.Equal(t, StatusPass, byCheck["meta_description"].Status)
	require.True(t, byCheck["h1"].Verdict)
	require.Equal(t, relationContainment, byCheck["h1"].Metrics["title_relation"])
	require.True(t, byCheck["image_alt"].Verdict)
	require.True(t, byCheck["canonical"].Verdict)
}

func TestAuditThinPageCarriesAdvisory(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>App</title></head><body><div id="root"></div><script>boot()</script></body></html>`
	auditor := NewAuditor(nil, nil, nil)
	rep := auditor.Audit([]byte(page), "utf-8", "https://spa.example.com/")

	require.NotEmpty(t, rep.Advisory)
	require.Equal(t, StatusFail, rep.Results[0].Status)
}

func TestAuditUndeclaredMojibakeStillReports(t *testing.T) {
	t.Parallel()

	// No declared charset and GBK bytes on a western URL: the decode may
	// degrade, but the audit still produces the full result set.
	auditor := NewAuditor(nil, nil, nil)
	body := encodeGBK(t, "<html><head><title>"+strings.Repeat("中", 40)+"</title></head><body><p>内容</p></body></html>")
	rep := auditor.Audit(body, "", "https://example.com/page")

	require.Len(t, rep.Results, 6)
	require.NotEmpty(t, rep.Encoding)
}
