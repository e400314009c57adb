package audit

import (
	"fmt"
	"unicode/utf8"
)

// Language is the dominant script classification of a text span.
type Language string

// Dominant language classes.
const (
	LanguageCJK   Language = "cjk"
	LanguageLatin Language = "latin"
)

// LanguageProfile is the per-span classification result. Ratio is the share
// of runes falling in the CJK Unified Ideographs block.
type LanguageProfile struct {
	Dominant Language `json:"dominant"`
	Ratio    float64  `json:"ratio"`
}

func (p LanguageProfile) String() string {
	return fmt.Sprintf("%s(%.2f)", p.Dominant, p.Ratio)
}

// ProfileText classifies text as CJK- or Latin-dominant. threshold is the
// minimum CJK rune ratio for CJK dominance: callers use 1/2 for short
// title-like fields and 1/3 for longer description fields, which mix in
// more punctuation and Latin tokens. Empty text is Latin with ratio 0.
func ProfileText(text string, threshold float64) LanguageProfile {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return LanguageProfile{Dominant: LanguageLatin, Ratio: 0}
	}
	cjk := 0
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			cjk++
		}
	}
	ratio := float64(cjk) / float64(total)
	dominant := LanguageLatin
	if ratio > threshold {
		dominant = LanguageCJK
	}
	return LanguageProfile{Dominant: dominant, Ratio: ratio}
}
