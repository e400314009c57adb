package audit

import (
	"github.com/seolint/seolint/internal/charset"
	"github.com/seolint/seolint/internal/dom"
)

// Report aggregates every check result for one document.
type Report struct {
	URL            string        `json:"url"`
	StatusCode     int           `json:"status_code,omitempty"`
	Encoding       string        `json:"encoding"`
	DecodeStage    charset.Stage `json:"decode_stage"`
	DecodeDegraded bool          `json:"decode_degraded"`
	Advisory       string        `json:"advisory,omitempty"`
	Results        []FieldResult `json:"results"`
}

// Auditor runs the full analysis pass over a fetched document.
type Auditor struct {
	resolver   *charset.Resolver
	visibility *VisibilityAssessor
	heading    *HeadingAnalyzer
}

// NewAuditor wires the analyzers together. Nil components get defaults.
func NewAuditor(resolver *charset.Resolver, visibility *VisibilityAssessor, heading *HeadingAnalyzer) *Auditor {
	if resolver == nil {
		resolver = charset.NewResolver(charset.Options{})
	}
	if visibility == nil {
		visibility = NewVisibilityAssessor(VisibilityOptions{})
	}
	if heading == nil {
		heading = NewHeadingAnalyzer(nil)
	}
	return &Auditor{resolver: resolver, visibility: visibility, heading: heading}
}

// Audit decodes body, parses it once and runs every analyzer over the shared
// read-only document. declaredCharset is the transport-announced encoding
// label, empty when absent.
func (a *Auditor) Audit(body []byte, declaredCharset, pageURL string) Report {
	dec := a.resolver.Resolve(body, declaredCharset, pageURL)
	doc := dom.Parse(dec.Text)

	rep := Report{
		URL:            pageURL,
		Encoding:       dec.Encoding,
		DecodeStage:    dec.Stage,
		DecodeDegraded: dec.Stage.Degraded(),
	}

	visibility := a.visibility.Assess(doc)
	if !visibility.Verdict {
		rep.Advisory = "initial content looks thin; the remaining checks may be inaccurate"
	}

	var pageTitle string
	if node, ok := doc.First("title"); ok {
		pageTitle = node.Text()
	}

	rep.Results = []FieldResult{
		visibility,
		AnalyzeTitle(doc),
		AnalyzeDescription(doc),
		a.heading.Analyze(doc, pageTitle),
		AnalyzeImageAlt(doc),
		AnalyzeCanonical(doc, pageURL),
	}
	return rep
}
