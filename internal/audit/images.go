package audit

import (
	"fmt"

	"github.com/seolint/seolint/internal/dom"
)

// Missing-alt share bands, in percent. The minor band is exclusive: exactly
// 20% missing already counts as moderate.
const (
	imagesMinorBelow    = 20.0
	imagesModerateBelow = 50.0
	imagesExampleLimit  = 5
	imagesSrcTruncate   = 50
)

// AnalyzeImageAlt counts images lacking a non-empty alt attribute. A page
// without images is informational, not a defect.
func AnalyzeImageAlt(doc dom.Document) FieldResult {
	res := FieldResult{Check: "image_alt", Metrics: map[string]any{}}

	images := doc.All("img")
	total := len(images)
	res.Metrics["total"] = total
	if total == 0 {
		res.Status = StatusInfo
		res.Verdict = true
		res.Findings = append(res.Findings, "page has no images")
		return res
	}

	var missing []dom.Node
	for _, img := range images {
		if alt, ok := img.Attr("alt"); !ok || alt == "" {
			missing = append(missing, img)
		}
	}
	pct := float64(len(missing)) / float64(total) * 100

	res.Metrics["missing"] = len(missing)
	res.Metrics["missing_pct"] = pct
	res.Verdict = len(missing) == 0

	switch {
	case len(missing) == 0:
		res.Status = StatusPass
		res.Findings = append(res.Findings, "all images carry alt text")
	case pct < imagesMinorBelow:
		res.Status = StatusWarn
		res.Findings = append(res.Findings, "a few images lack alt text")
	case pct < imagesModerateBelow:
		res.Status = StatusWarn
		res.Findings = append(res.Findings,
			"a sizable share of images lack alt text; search engines cannot understand them")
	default:
		res.Status = StatusFail
		res.Findings = append(res.Findings,
			"over half the images lack alt text; image search traffic and accessibility both suffer")
	}

	for i, img := range missing {
		if i == imagesExampleLimit {
			break
		}
		src, _ := img.Attr("src")
		if src == "" {
			src = "(no src attribute)"
		}
		res.Findings = append(res.Findings,
			fmt.Sprintf("missing alt: src=%q", truncate(src, imagesSrcTruncate)))
	}
	return res
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
