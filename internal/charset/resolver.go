// Package charset turns raw response bytes into decodable text. It never
// fails: every input degrades, at worst, to a lossy UTF-8 decode.
package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Stage records how far down the priority chain the resolver had to go.
type Stage string

// Resolution stages, from best to worst.
const (
	StageDeclared Stage = "declared"
	StageHinted   Stage = "hinted"
	StageDetected Stage = "detected"
	StageFallback Stage = "fallback"
	StageLossy    Stage = "lossy"
)

// Degraded reports whether the declared or detected encoding had to be
// abandoned for a fallback.
func (s Stage) Degraded() bool {
	return s == StageFallback || s == StageLossy
}

// Options holds the immutable tables driving resolution. Zero fields are
// filled from DefaultOptions by NewResolver.
type Options struct {
	// CJKSiteHints are URL fragments marking likely Chinese sites, checked
	// alongside the ".cn" TLD.
	CJKSiteHints []string
	// CJKFallbacks and DefaultFallbacks are candidate encoding labels tried
	// in order when everything upstream failed.
	CJKFallbacks     []string
	DefaultFallbacks []string
	// DetectionWindow bounds how many leading bytes statistical detection
	// may examine.
	DetectionWindow int
	// MinConfidence is the detector confidence (0-100) required to trust a
	// detected encoding.
	MinConfidence int
}

// DefaultOptions returns the stock resolution tables.
func DefaultOptions() Options {
	return Options{
		CJKSiteHints:     []string{"sina", "baidu", "sohu", "163", "qq", "zhihu"},
		CJKFallbacks:     []string{"gbk", "gb2312", "gb18030", "utf-8", "iso-8859-1"},
		DefaultFallbacks: []string{"utf-8", "gbk", "gb2312", "iso-8859-1"},
		DetectionWindow:  1024,
		MinConfidence:    80,
	}
}

// Detector is the statistical charset detector. *chardet.Detector satisfies
// it; tests substitute a stub.
type Detector interface {
	DetectBest(b []byte) (*chardet.Result, error)
}

// Result is the outcome of a resolution.
type Result struct {
	Text     string
	Encoding string
	Stage    Stage
}

// Resolver decodes response bytes via a deterministic priority chain.
type Resolver struct {
	opts     Options
	detector Detector
}

// NewResolver builds a Resolver, filling zero options from DefaultOptions.
func NewResolver(opts Options) *Resolver {
	def := DefaultOptions()
	if opts.CJKSiteHints == nil {
		opts.CJKSiteHints = def.CJKSiteHints
	}
	if opts.CJKFallbacks == nil {
		opts.CJKFallbacks = def.CJKFallbacks
	}
	if opts.DefaultFallbacks == nil {
		opts.DefaultFallbacks = def.DefaultFallbacks
	}
	if opts.DetectionWindow == 0 {
		opts.DetectionWindow = def.DetectionWindow
	}
	if opts.MinConfidence == 0 {
		opts.MinConfidence = def.MinConfidence
	}
	return &Resolver{opts: opts, detector: chardet.NewTextDetector()}
}

// WithDetector overrides the statistical detector.
func (r *Resolver) WithDetector(d Detector) *Resolver {
	r.detector = d
	return r
}

// Resolve decodes body. declared is the encoding label announced by the
// transport (empty when absent); sourceURL steers the CJK-site heuristics.
func (r *Resolver) Resolve(body []byte, declared, sourceURL string) Result {
	if declared != "" {
		if text, ok := decodeStrict(declared, body); ok {
			return Result{Text: text, Encoding: declared, Stage: StageDeclared}
		}
		// The announced encoding lied. Try the single best guess for the
		// site before walking the whole candidate list.
		guess := "utf-8"
		if r.cjkSite(sourceURL) {
			guess = "gbk"
		}
		if text, ok := decodeStrict(guess, body); ok {
			return Result{Text: text, Encoding: guess, Stage: StageHinted}
		}
		return r.fallback(body, sourceURL)
	}

	window := body
	if len(window) > r.opts.DetectionWindow {
		window = window[:r.opts.DetectionWindow]
	}
	if det, err := r.detector.DetectBest(window); err == nil && det != nil && det.Confidence > r.opts.MinConfidence {
		if text, ok := decodeLenient(det.Charset, body); ok {
			return Result{Text: text, Encoding: det.Charset, Stage: StageDetected}
		}
	}
	return r.fallback(body, sourceURL)
}

func (r *Resolver) fallback(body []byte, sourceURL string) Result {
	candidates := r.opts.DefaultFallbacks
	if r.cjkSite(sourceURL) {
		candidates = r.opts.CJKFallbacks
	}
	for _, label := range candidates {
		if text, ok := decodeStrict(label, body); ok {
			return Result{Text: text, Encoding: label, Stage: StageFallback}
		}
	}
	// Terminal: drop invalid sequences outright. Cannot fail.
	return Result{
		Text:     strings.ToValidUTF8(string(body), ""),
		Encoding: "utf-8",
		Stage:    StageLossy,
	}
}

func (r *Resolver) cjkSite(sourceURL string) bool {
	u := strings.ToLower(sourceURL)
	if strings.Contains(u, ".cn") {
		return true
	}
	for _, hint := range r.opts.CJKSiteHints {
		if strings.Contains(u, hint) {
			return true
		}
	}
	return false
}

// lookupEncoding resolves an encoding label, retrying with dashes stripped
// for detector spellings like "GB-18030" that the WHATWG label table only
// knows as "gb18030".
func lookupEncoding(label string) (encoding.Encoding, string) {
	enc, name := xcharset.Lookup(label)
	if enc == nil {
		enc, name = xcharset.Lookup(strings.ReplaceAll(label, "-", ""))
	}
	return enc, name
}

// decodeStrict decodes body with the named encoding and rejects any input
// the encoding cannot represent. x/text decoders substitute U+FFFD instead
// of returning an error, so substitution counts as failure here.
func decodeStrict(label string, body []byte) (string, bool) {
	enc, name := lookupEncoding(label)
	if enc == nil {
		return "", false
	}
	if name == "utf-8" {
		if !utf8.Valid(body) {
			return "", false
		}
		return string(body), true
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// decodeLenient decodes with substitution for unmappable bytes.
func decodeLenient(label string, body []byte) (string, bool) {
	enc, _ := lookupEncoding(label)
	if enc == nil {
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", false
	}
	return string(out), true
}
