package audit

import (
	"net/url"
	"strings"

	"github.com/seolint/seolint/internal/dom"
)

// AnalyzeCanonical checks the canonical link against the page's own URL.
func AnalyzeCanonical(doc dom.Document, currentURL string) FieldResult {
	res := FieldResult{Check: "canonical", Metrics: map[string]any{}}

	nodes := doc.Select(`link[rel="canonical"]`)
	if len(nodes) == 0 {
		res.Status = StatusWarn
		res.Findings = append(res.Findings,
			"no canonical link; duplicate content may dilute page authority")
		return res
	}

	href, _ := nodes[0].Attr("href")
	href = strings.TrimSpace(href)
	if href == "" {
		res.Status = StatusFail
		res.Findings = append(res.Findings, "canonical link has an empty href")
		return res
	}

	current := NormalizeURL(currentURL)
	canonical := NormalizeURL(href)
	res.Metrics["canonical"] = href
	res.Metrics["canonical_normalized"] = canonical
	res.Metrics["current_normalized"] = current

	if current == canonical {
		res.Status = StatusPass
		res.Verdict = true
		res.Findings = append(res.Findings, "canonical link is self-referencing")
		return res
	}
	res.Status = StatusWarn
	res.Findings = append(res.Findings,
		"canonical link points elsewhere; this page may not be the canonical version")
	return res
}

// NormalizeURL reduces a URL to host + path with trailing slashes removed,
// dropping the scheme, for self-reference comparison. It is idempotent.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Host + strings.TrimRight(u.Path, "/")
}
