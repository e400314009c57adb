package audit

import (
	"fmt"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/dom"
)

// Title length bands in runes. CJK pages tolerate shorter titles because a
// single ideograph carries more meaning than a Latin character.
const (
	titleCJKFailBelow   = 15
	titleCJKWarnBelow   = 30
	titleCJKWarnAbove   = 70
	titleLatinFailBelow = 30
	titleLatinWarnBelow = 50
	titleLatinWarnAbove = 65
)

// AnalyzeTitle validates the page title element. The overall verdict is the
// language-independent 30..70 range the legacy tooling used.
func AnalyzeTitle(doc dom.Document) FieldResult {
	res := FieldResult{Check: "title", Metrics: map[string]any{}}

	node, ok := doc.First("title")
	if !ok {
		res.Status = StatusFail
		res.Findings = append(res.Findings,
			"no <title> element; search engines cannot determine the page topic")
		return res
	}

	text := node.Text()
	length := utf8.RuneCountInString(text)
	profile := ProfileText(text, 0.5)

	res.Metrics["title"] = text
	res.Metrics["length"] = length
	res.Metrics["language"] = profile
	res.Verdict = length >= 30 && length <= 70

	if profile.Dominant == LanguageCJK {
		res.Metrics["recommended"] = "30-50"
		switch {
		case length < titleCJKFailBelow:
			res.Status = StatusFail
			res.Findings = append(res.Findings, "title too short; aim for at least 20 characters")
		case length < titleCJKWarnBelow:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, "title slightly short; 30-50 characters recommended")
		case length > titleCJKWarnAbove:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, fmt.Sprintf("title too long; keep under %d characters", titleCJKWarnAbove))
		default:
			res.Status = StatusPass
			res.Findings = append(res.Findings, "title length is appropriate for a CJK page")
		}
		return res
	}

	res.Metrics["recommended"] = "50-60"
	switch {
	case length < titleLatinFailBelow:
		res.Status = StatusFail
		res.Findings = append(res.Findings, "title too short; aim for at least 30 characters")
	case length < titleLatinWarnBelow:
		res.Status = StatusWarn
		res.Findings = append(res.Findings, "title slightly short; 50-60 characters recommended")
	case length > titleLatinWarnAbove:
		res.Status = StatusWarn
		res.Findings = append(res.Findings, fmt.Sprintf("title too long; keep under %d characters", titleLatinWarnAbove))
	default:
		res.Status = StatusPass
		res.Findings = append(res.Findings, "title length is appropriate")
	}
	return res
}
