// Package presenter renders the three user-facing outcomes of a horoscope run.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/valpere/horoscope/internal/horoscope"
)

type Presenter struct {
	w        io.Writer
	target   language.Tag
	langName string
}

// New returns a Presenter writing to w. target names the translation language shown in
// the translated heading.
func New(w io.Writer, target language.Tag) *Presenter {
	return &Presenter{
		w:        w,
		target:   target,
		langName: languageName(target),
	}
}

// Translated prints the heading with the target language name followed by the
// translated text.
func (p *Presenter) Translated(res *horoscope.Result) error {
	_, err := fmt.Fprintf(p.w, "%s (em %s):\n%s\n", heading(res), p.langName, res.TranslatedText)
	return err
}

// Fallback prints a notice carrying translateErr, then the untranslated horoscope.
func (p *Presenter) Fallback(res *horoscope.Result, translateErr error) error {
	_, err := fmt.Fprintf(p.w, "(Aviso) Não foi possível traduzir automaticamente: %s\n%s:\n%s\n",
		oneLine(translateErr), heading(res), res.Text)
	return err
}

// HTTPFailure prints the single line reported for a non-200 response.
func (p *Presenter) HTTPFailure(status int) error {
	_, err := fmt.Fprintf(p.w, "Erro ao buscar horóscopo: %d\n", status)
	return err
}

func heading(res *horoscope.Result) string {
	when := "de hoje"
	switch res.Period {
	case horoscope.Weekly:
		when = "da semana"
	case horoscope.Monthly:
		when = "do mês"
	}
	sign := cases.Title(language.Und).String(res.Sign.String())
	return fmt.Sprintf("Horóscopo %s para %s", when, sign)
}

// languageName returns the tag's name in its own language, title-cased ("pt" -> "Português").
func languageName(tag language.Tag) string {
	name := display.Self.Name(tag)
	if name == "" {
		return tag.String()
	}
	return cases.Title(tag).String(name)
}

func oneLine(err error) string {
	if err == nil {
		return "erro desconhecido"
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(err.Error(), "\n", "; ")), " ")
}
