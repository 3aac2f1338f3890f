// Package detector identifies the language of a text with lingua-go. It resolves an
// "auto" source language and checks that a translation came back in the target language.
package detector

import (
	"fmt"
	"strings"
	"sync"

	lingua "github.com/pemistahl/lingua-go"
)

// minCheckRunes is the shortest text Check will judge. Shorter texts detect unreliably
// and pass unchecked.
const minCheckRunes = 20

// Detector builds its language models on first use; building them is slow, so share one
// instance.
type Detector struct {
	once      sync.Once
	detector  lingua.LanguageDetector
	languages []lingua.Language
}

// New returns a Detector over all languages lingua knows.
func New() *Detector {
	return &Detector{}
}

// NewFor restricts detection to the given ISO 639-1 codes. Unknown codes are ignored;
// if none are known the detector falls back to all languages.
func NewFor(codes ...string) *Detector {
	d := &Detector{}
	for _, code := range codes {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToUpper(code))
		if iso == lingua.UnknownIsoCode639_1 {
			continue
		}
		d.languages = append(d.languages, lingua.GetLanguageFromIsoCode639_1(iso))
	}
	return d
}

func (d *Detector) build() {
	d.once.Do(func() {
		builder := lingua.NewLanguageDetectorBuilder()
		if len(d.languages) >= 2 {
			d.detector = builder.FromLanguages(d.languages...).Build()
			return
		}
		d.detector = builder.FromAllLanguages().Build()
	})
}

// DetectISO returns the lower-case ISO 639-1 code of text's language.
func (d *Detector) DetectISO(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	d.build()
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Check returns an error when text is empty or is confidently detected as a language
// other than targetLang. Short or ambiguous texts pass.
func (d *Detector) Check(text, targetLang string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("translation is empty")
	}
	if targetLang == "" || len([]rune(text)) < minCheckRunes {
		return nil
	}

	detected, ok := d.DetectISO(text)
	if !ok {
		return nil
	}

	// Compare the base language only, so "pt-BR" matches "pt".
	base, _, _ := strings.Cut(targetLang, "-")
	if !strings.EqualFold(detected, base) {
		return fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}
	return nil
}
