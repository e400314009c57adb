package audit

import (
	"strings"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/dom"
)

// Meta description bands in runes. The overall verdict range ([100,200] CJK,
// [140,180] Latin) is intentionally narrower than the WARN/FAIL banding so
// borderline lengths are flagged even when no finding fires.
const (
	descCJKFailBelow   = 50
	descCJKWarnBelow   = 100
	descCJKWarnAbove   = 200
	descLatinFailBelow = 120
	descLatinWarnBelow = 140
	descLatinWarnAbove = 180
)

// AnalyzeDescription validates the meta description element.
func AnalyzeDescription(doc dom.Document) FieldResult {
	res := FieldResult{Check: "meta_description", Metrics: map[string]any{}}

	nodes := doc.Select(`meta[name="description"]`)
	if len(nodes) == 0 {
		res.Status = StatusFail
		res.Findings = append(res.Findings,
			"no meta description; search engines will pick their own snippet")
		return res
	}

	content, _ := nodes[0].Attr("content")
	content = strings.TrimSpace(content)
	if content == "" {
		res.Status = StatusWarn
		res.Findings = append(res.Findings, "meta description is present but empty")
		return res
	}

	length := utf8.RuneCountInString(content)
	profile := ProfileText(content, 1.0/3.0)

	res.Metrics["excerpt"] = excerpt(content, 100)
	res.Metrics["length"] = length
	res.Metrics["language"] = profile

	if profile.Dominant == LanguageCJK {
		res.Metrics["recommended"] = "120-160"
		res.Verdict = length >= 100 && length <= 200
		switch {
		case length < descCJKFailBelow:
			res.Status = StatusFail
			res.Findings = append(res.Findings, "description too short; aim for at least 80 characters")
		case length < descCJKWarnBelow:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, "description slightly short; 120-160 characters recommended")
		case length > descCJKWarnAbove:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, "description too long; keep under 200 characters")
		default:
			res.Status = StatusPass
			res.Findings = append(res.Findings, "description length is appropriate for a CJK page")
		}
		return res
	}

	res.Metrics["recommended"] = "150-160"
	res.Verdict = length >= 140 && length <= 180
	switch {
	case length < descLatinFailBelow:
		res.Status = StatusFail
		res.Findings = append(res.Findings, "description too short; aim for at least 120 characters")
	case length < descLatinWarnBelow:
		res.Status = StatusWarn
		res.Findings = append(res.Findings, "description slightly short; 150-160 characters recommended")
	case length > descLatinWarnAbove:
		res.Status = StatusWarn
		res.Findings = append(res.Findings, "description too long; keep under 180 characters")
	default:
		res.Status = StatusPass
		res.Findings = append(res.Findings, "description length is appropriate")
	}
	return res
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
