package langid

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"

	"bitext/internal/language"
)

// Sampling bounds. Detection quality plateaus well below these limits,
// and they keep huge documents from being fed to the detector whole.
const (
	maxSampleLines = 100
	maxSampleBytes = 16 * 1024
)

// languageByCode maps the ISO 639-1 codes of the language table to
// detector languages. Norwegian is detected as Bokmal.
var languageByCode = map[string]lingua.Language{
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"de": lingua.German,
	"it": lingua.Italian,
	"pt": lingua.Portuguese,
	"ja": lingua.Japanese,
	"ko": lingua.Korean,
	"zh": lingua.Chinese,
	"ru": lingua.Russian,
	"ar": lingua.Arabic,
	"hi": lingua.Hindi,
	"nl": lingua.Dutch,
	"pl": lingua.Polish,
	"sv": lingua.Swedish,
	"da": lingua.Danish,
	"no": lingua.Bokmal,
	"fi": lingua.Finnish,
}

// Detector identifies the language of document samples.
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a detector choosing among the given ISO 639-1 codes, or
// among every language the language table knows when none are given.
// Codes outside the table are ignored.
func New(codes ...string) (*Detector, error) {
	if len(codes) == 0 {
		codes = language.Codes()
	}
	var candidates []lingua.Language
	seen := make(map[lingua.Language]struct{}, len(codes))
	for _, code := range language.NormalizeList(codes) {
		lang, ok := languageByCode[code]
		if !ok {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		candidates = append(candidates, lang)
	}
	if len(candidates) < 2 {
		return nil, fmt.Errorf("language detection needs at least two known candidate languages, got %d", len(candidates))
	}
	inner := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()
	return &Detector{inner: inner}, nil
}

// Detect samples the lines and returns the ISO 639-1 code of the
// detected language. ok is false when the sample is empty or no
// candidate language fits.
func (d *Detector) Detect(lines []string) (string, bool) {
	text := sample(lines)
	if text == "" {
		return "", false
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return isoCode(lang), true
}

// isoCode maps a detector language back to the table's ISO 639-1 code.
func isoCode(lang lingua.Language) string {
	code := strings.ToLower(lang.IsoCode639_1().String())
	if code == "nb" || code == "nn" {
		return "no"
	}
	return code
}

// sample joins the first non-blank lines into one detection sample,
// capped by maxSampleLines and maxSampleBytes.
func sample(lines []string) string {
	var b strings.Builder
	n := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if b.Len()+len(trimmed)+1 > maxSampleBytes {
			break
		}
		if n > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(trimmed)
		n++
		if n >= maxSampleLines {
			break
		}
	}
	return b.String()
}
