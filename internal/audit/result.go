// Package audit implements the heuristic on-page checks: content
// visibility, title, meta description, headings, image alt text and
// canonical link. Every analyzer is a pure function of the parsed document;
// none mutates it.
package audit

// Status classifies a single check outcome.
type Status string

// Check outcomes.
const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
	StatusInfo Status = "INFO"
)

// FieldResult is the outcome of one analyzer invocation. Verdict is the
// analyzer's overall boolean, which for some checks is deliberately
// stricter than the Status banding.
type FieldResult struct {
	Check    string         `json:"check"`
	Status   Status         `json:"status"`
	Verdict  bool           `json:"verdict"`
	Metrics  map[string]any `json:"metrics,omitempty"`
	Findings []string       `json:"findings,omitempty"`
}
