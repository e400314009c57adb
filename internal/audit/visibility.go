package audit

import (
	"strings"
	"unicode/utf8"

	"github.com/seolint/seolint/internal/dom"
)

// Visibility classification thresholds, in runes of stripped body text.
const (
	visibilityFailBelow       = 100
	visibilityHybridBelow     = 300
	visibilityBorderline      = 200
	meaningfulParagraphChars  = 50
	meaningfulParagraphsCount = 2
)

// VisibilityOptions carries the structural-noise tables. Zero fields are
// filled with defaults.
type VisibilityOptions struct {
	// StripTags are removed wholesale from the working copy before
	// measuring visible text.
	StripTags []string
	// NavSelectors match navigation chrome by class or id.
	NavSelectors []string
	// ContentTokens mark a class attribute as a structural content signal.
	ContentTokens []string
}

// DefaultVisibilityOptions returns the stock noise tables.
func DefaultVisibilityOptions() VisibilityOptions {
	return VisibilityOptions{
		StripTags: []string{
			"script", "style", "noscript", "iframe",
			"nav", "header", "footer", "aside",
			"form", "button", "input",
		},
		NavSelectors: []string{
			"nav", ".navigation", ".navbar", ".menu",
			"#nav", "#navigation", "#menu",
			".header", ".footer", ".sidebar",
		},
		ContentTokens: []string{"content", "post", "article", "main", "entry"},
	}
}

// VisibilityAssessor estimates whether meaningful content exists before any
// client-side rendering, as a proxy for crawlability risk.
type VisibilityAssessor struct {
	opts VisibilityOptions
}

// NewVisibilityAssessor builds an assessor, filling zero options with
// defaults.
func NewVisibilityAssessor(opts VisibilityOptions) *VisibilityAssessor {
	def := DefaultVisibilityOptions()
	if opts.StripTags == nil {
		opts.StripTags = def.StripTags
	}
	if opts.NavSelectors == nil {
		opts.NavSelectors = def.NavSelectors
	}
	if opts.ContentTokens == nil {
		opts.ContentTokens = def.ContentTokens
	}
	return &VisibilityAssessor{opts: opts}
}

// Assess strips structural noise from an isolated copy of the body and
// classifies how much substantive text remains. The caller's document is
// never mutated; destructive work happens only on the private copy.
func (v *VisibilityAssessor) Assess(doc dom.Document) FieldResult {
	res := FieldResult{Check: "content_visibility", Metrics: map[string]any{}}

	if !doc.HasBody() {
		res.Status = StatusFail
		res.Findings = append(res.Findings, "no body element")
		return res
	}
	work, ok := doc.BodyCopy()
	if !ok {
		res.Status = StatusFail
		res.Findings = append(res.Findings, "no body element")
		return res
	}

	for _, tag := range v.opts.StripTags {
		for _, node := range work.All(tag) {
			node.Detach()
		}
	}
	for _, selector := range v.opts.NavSelectors {
		for _, node := range work.Select(selector) {
			node.Detach()
		}
	}

	text := work.Text()
	charLength := utf8.RuneCountInString(text)
	wordCount := len(strings.Fields(text))

	// Paragraph and structure signals are measured on the original,
	// unmodified document.
	meaningful := 0
	for _, p := range doc.All("p") {
		if utf8.RuneCountInString(p.Text()) > meaningfulParagraphChars {
			meaningful++
		}
	}
	structural := v.hasContentStructure(doc)

	res.Metrics["char_length"] = charLength
	res.Metrics["word_count"] = wordCount
	res.Metrics["meaningful_paragraphs"] = meaningful
	res.Metrics["content_structure"] = structural

	switch {
	case charLength < visibilityFailBelow:
		res.Status = StatusFail
		res.Findings = append(res.Findings,
			"initial HTML carries almost no text; high render-dependency risk",
			"crawlers that do not execute scripts will likely miss the page content")
	case charLength < visibilityHybridBelow && meaningful < meaningfulParagraphsCount:
		res.Status = StatusWarn
		res.Findings = append(res.Findings,
			"some initial text but no substantive paragraphs; possible hybrid rendering")
	case structural || meaningful >= meaningfulParagraphsCount:
		res.Status = StatusPass
		res.Verdict = true
		res.Findings = append(res.Findings, "content likely server-rendered")
	default:
		// Borderline: some text but no clear content signal either way.
		res.Status = StatusWarn
		if charLength >= visibilityBorderline {
			res.Status = StatusPass
			res.Verdict = true
		}
		res.Findings = append(res.Findings,
			"page has initial content but may load more via scripts; needs further check")
	}
	return res
}

func (v *VisibilityAssessor) hasContentStructure(doc dom.Document) bool {
	if len(doc.All("article")) > 0 || len(doc.All("main")) > 0 {
		return true
	}
	for _, node := range doc.Select("[class]") {
		class, _ := node.Attr("class")
		class = strings.ToLower(class)
		for _, token := range v.opts.ContentTokens {
			if strings.Contains(class, token) {
				return true
			}
		}
	}
	return false
}
