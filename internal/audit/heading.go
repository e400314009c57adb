package audit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/dom"
)

// Per-H1 length bands in runes.
const (
	h1WarnBelow = 10
	h1WarnAbove = 100
)

// DefaultStopWords are the function characters dropped before phrase
// extraction when relating the primary H1 to the page title.
var DefaultStopWords = []string{
	"的", "和", "与", "及", "或", "在", "是", "有", "了", "吗", "呢", "吧", "啊",
}

// HeadingAnalyzer checks the H1 population and how the primary heading
// relates to the page title.
type HeadingAnalyzer struct {
	stop map[rune]struct{}
}

// NewHeadingAnalyzer builds an analyzer with the given stop-word set; nil
// means DefaultStopWords.
func NewHeadingAnalyzer(stopWords []string) *HeadingAnalyzer {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	stop := make(map[rune]struct{}, len(stopWords))
	for _, w := range stopWords {
		for _, r := range w {
			stop[r] = struct{}{}
			break
		}
	}
	return &HeadingAnalyzer{stop: stop}
}

// Analyze enumerates H1 elements and relates the first one to pageTitle
// (empty when the page has no title). The overall verdict is PASS iff
// exactly one H1 exists; the relatedness sub-finding is advisory only.
func (h *HeadingAnalyzer) Analyze(doc dom.Document, pageTitle string) FieldResult {
	res := FieldResult{Check: "h1", Metrics: map[string]any{}}

	headings := doc.All("h1")
	res.Metrics["count"] = len(headings)
	res.Verdict = len(headings) == 1

	if len(headings) == 0 {
		res.Status = StatusFail
		res.Findings = append(res.Findings,
			"no H1 element; each page should carry exactly one H1 summarizing its topic")
		return res
	}

	res.Status = StatusPass
	texts := make([]string, 0, len(headings))
	anyEmpty := false
	for i, node := range headings {
		text := node.Text()
		texts = append(texts, text)
		length := utf8.RuneCountInString(text)
		switch {
		case length == 0:
			anyEmpty = true
			res.Findings = append(res.Findings, fmt.Sprintf("H1 #%d is empty", i+1))
		case length < h1WarnBelow:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, fmt.Sprintf("H1 #%d is possibly too short (%d characters)", i+1, length))
		case length > h1WarnAbove:
			res.Status = StatusWarn
			res.Findings = append(res.Findings, fmt.Sprintf("H1 #%d is possibly too long (%d characters)", i+1, length))
		}
	}
	if anyEmpty {
		res.Status = StatusFail
	}

	if len(headings) > 1 {
		if res.Status == StatusPass {
			res.Status = StatusWarn
		}
		res.Findings = append(res.Findings,
			fmt.Sprintf("%d H1 elements found; expect exactly one", len(headings)))
	}

	if pageTitle != "" {
		primary := texts[0]
		res.Metrics["primary_h1"] = primary
		relation, related := h.relate(primary, pageTitle)
		res.Metrics["title_relation"] = relation
		if !related && res.Status == StatusPass {
			res.Status = StatusWarn
		}
		res.Findings = append(res.Findings, relationFinding(relation))
	}
	return res
}

// Title relation outcomes.
const (
	relationIdentical   = "identical"
	relationContainment = "containment"
	relationOverlap     = "phrase_overlap"
	relationWeak        = "weak"
)

func (h *HeadingAnalyzer) relate(primary, title string) (string, bool) {
	switch {
	case primary == title:
		// Advisory: identical is acceptable but wastes keyword coverage.
		return relationIdentical, false
	case strings.Contains(title, primary) || strings.Contains(primary, title):
		return relationContainment, true
	}
	for _, hp := range h.keyPhrases(primary) {
		for _, tp := range h.keyPhrases(title) {
			if utf8.RuneCountInString(hp) < 2 || utf8.RuneCountInString(tp) < 2 {
				continue
			}
			if strings.Contains(hp, tp) || strings.Contains(tp, hp) {
				return relationOverlap, true
			}
		}
	}
	return relationWeak, false
}

// keyPhrases extracts up to two candidate phrases by dropping stop-word
// characters and windowing the remaining character sequence. This is a
// deliberately naive character-level heuristic, not real tokenization.
func (h *HeadingAnalyzer) keyPhrases(text string) []string {
	kept := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if _, ok := h.stop[r]; !ok {
			kept = append(kept, r)
		}
	}
	var phrases []string
	if len(kept) > 2 {
		phrases = append(phrases, string(kept[:3]))
	}
	if len(kept) > 4 {
		phrases = append(phrases, string(kept[2:5]))
	}
	return phrases
}

func relationFinding(relation string) string {
	switch relation {
	case relationIdentical:
		return "H1 is identical to the title; acceptable, but slight variation covers more keywords"
	case relationContainment:
		return "H1 and title are in a containment relation"
	case relationOverlap:
		return "H1 and title share a key phrase"
	default:
		return "weak relation between H1 and title; the H1 should roughly match the title meaning"
	}
}
