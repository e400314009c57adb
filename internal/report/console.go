// Package report renders audit reports as console text. Pure formatting;
// exit codes and argument handling stay in the cmd layer.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/seolint/seolint/internal/audit"
)

var checkTitles = map[string]string{
	"content_visibility": "Content visibility (CSR risk)",
	"title":              "Page title",
	"meta_description":   "Meta description",
	"h1":                 "H1 headings",
	"image_alt":          "Image alt text",
	"canonical":          "Canonical link",
}

// Renderer writes reports to a single destination.
type Renderer struct {
	w io.Writer
}

// New builds a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints the full report.
func (r *Renderer) Render(rep audit.Report) {
	fmt.Fprintf(r.w, "SEO audit: %s\n", rep.URL)
	if rep.StatusCode != 0 && rep.StatusCode != 200 {
		fmt.Fprintf(r.w, "note: non-200 status code (%d)\n", rep.StatusCode)
	}
	degraded := ""
	if rep.DecodeDegraded {
		degraded = ", degraded"
	}
	fmt.Fprintf(r.w, "decoded as %s (%s%s)\n", rep.Encoding, rep.DecodeStage, degraded)
	fmt.Fprintln(r.w, strings.Repeat("=", 50))

	if rep.Advisory != "" {
		fmt.Fprintf(r.w, "advisory: %s\n\n", rep.Advisory)
	}

	counts := map[audit.Status]int{}
	for _, res := range rep.Results {
		counts[res.Status]++
		title := checkTitles[res.Check]
		if title == "" {
			title = res.Check
		}
		fmt.Fprintf(r.w, "[%s] %s\n", res.Status, title)
		if line := metricsLine(res.Metrics); line != "" {
			fmt.Fprintf(r.w, "  %s\n", line)
		}
		for _, finding := range res.Findings {
			fmt.Fprintf(r.w, "  - %s\n", finding)
		}
		fmt.Fprintln(r.w)
	}

	fmt.Fprintln(r.w, strings.Repeat("=", 50))
	fmt.Fprintf(r.w, "summary: %d pass, %d warn, %d fail, %d info\n",
		counts[audit.StatusPass], counts[audit.StatusWarn],
		counts[audit.StatusFail], counts[audit.StatusInfo])
}

func metricsLine(metrics map[string]any) string {
	if len(metrics) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, metrics[k]))
	}
	return strings.Join(parts, " ")
}
