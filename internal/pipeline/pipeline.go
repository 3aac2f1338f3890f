// Package pipeline runs one horoscope lookup end to end: fetch, parse, translate, present.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/horoscope/internal/horoscope"
	"github.com/valpere/horoscope/internal/orchestrator"
	"github.com/valpere/horoscope/internal/presenter"
)

type Fetcher interface {
	Fetch(ctx context.Context, req horoscope.Request) (*horoscope.Response, error)
}

// Translator never fails the run; a failed translation comes back as an Outcome with Err set.
type Translator interface {
	Translate(ctx context.Context, text string) orchestrator.Outcome
}

type Pipeline struct {
	fetcher    Fetcher
	translator Translator
	presenter  *presenter.Presenter
	logger     *zap.Logger
}

func New(fetcher Fetcher, translator Translator, presenter *presenter.Presenter, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		fetcher:    fetcher,
		translator: translator,
		presenter:  presenter,
		logger:     logger,
	}
}

// Run presents exactly one outcome for req. It returns an error only when nothing could be
// presented: the fetch failed in transport or a 200 payload was malformed.
func (p *Pipeline) Run(ctx context.Context, req horoscope.Request) error {
	resp, err := p.fetcher.Fetch(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to fetch horoscope: %w", err)
	}

	if !resp.OK() {
		return p.presenter.HTTPFailure(resp.StatusCode)
	}

	res, err := horoscope.Parse(resp, req)
	if err != nil {
		return fmt.Errorf("failed to parse horoscope: %w", err)
	}
	p.logger.Debug("horoscope parsed",
		zap.String("sign", res.Sign.String()),
		zap.String("date", res.Date),
		zap.Int("length", len(res.Text)))

	outcome := p.translator.Translate(ctx, res.Text)
	if !outcome.OK() {
		return p.presenter.Fallback(res, outcome.Err)
	}

	res.TranslatedText = outcome.Text
	p.logger.Info("horoscope translated",
		zap.String("service", outcome.Service),
		zap.Bool("cached", outcome.Cached))
	return p.presenter.Translated(res)
}
