// Package orchestrator turns the configured translation capabilities into one
// best-effort call: it never fails the caller, it reports an Outcome that carries either
// the translation or the original text plus the reason translation was abandoned.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/horoscope/internal/store"
	"github.com/valpere/horoscope/internal/translator"
)

var (
	ErrEmptyText  = errors.New("nothing to translate")
	ErrNoServices = errors.New("no translation services configured")
)

type OrchestratorConfig struct {
	// SourceLang may be "auto" when a LanguageDetector is configured.
	SourceLang string
	TargetLang string
	// Timeout bounds each capability call, including awaiting a pending result.
	// Zero waits indefinitely.
	Timeout time.Duration
	Service translator.ServiceConfig
}

// Memory is a translation cache consulted before any capability is called.
type Memory interface {
	Lookup(ctx context.Context, sourceText, sourceLang, targetLang string) (*store.Entry, bool, error)
	Save(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, serviceUsed string) error
}

// Validator rejects translations that did not come back in the target language.
type Validator interface {
	Check(text, targetLang string) error
}

// LanguageDetector resolves an "auto" source language.
type LanguageDetector interface {
	DetectISO(text string) (string, bool)
}

// Outcome is the result of Translate. Err is nil exactly when Text is a translation;
// otherwise Text is the original input.
type Outcome struct {
	Text    string
	Service string
	Cached  bool
	Err     error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

type Orchestrator struct {
	capabilities []translator.Capability
	config       OrchestratorConfig
	memory       Memory
	validator    Validator
	detector     LanguageDetector
	logger       *zap.Logger
}

type Option func(*Orchestrator)

func WithMemory(m Memory) Option {
	return func(o *Orchestrator) { o.memory = m }
}

func WithValidator(v Validator) Option {
	return func(o *Orchestrator) { o.validator = v }
}

func WithDetector(d LanguageDetector) Option {
	return func(o *Orchestrator) { o.detector = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds an Orchestrator trying capabilities in order.
func New(capabilities []translator.Capability, config OrchestratorConfig, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		capabilities: capabilities,
		config:       config,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Translate returns the first successful translation of text. Any failure, including a
// panic inside a capability, is logged as a warning and reported in Outcome.Err.
func (o *Orchestrator) Translate(ctx context.Context, text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return o.fallback(text, ErrEmptyText)
	}
	if len(o.capabilities) == 0 {
		return o.fallback(text, ErrNoServices)
	}

	req := translator.TranslateRequest{
		Text:       text,
		SourceLang: o.sourceLang(text),
		TargetLang: o.config.TargetLang,
	}

	if o.memory != nil {
		entry, found, err := o.memory.Lookup(ctx, text, req.SourceLang, req.TargetLang)
		if err != nil {
			o.logger.Warn("translation memory lookup failed", zap.Error(err))
		} else if found {
			o.logger.Debug("translation memory hit", zap.String("service", entry.ServiceUsed))
			return Outcome{Text: entry.TranslatedText, Service: entry.ServiceUsed, Cached: true}
		}
	}

	var errs []error
	for _, c := range o.capabilities {
		start := time.Now()
		translated, err := o.attempt(ctx, c, req)
		if err != nil {
			o.logger.Debug("translation service failed",
				zap.String("service", c.Name()),
				zap.Duration("latency", time.Since(start)),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
			continue
		}

		o.logger.Debug("translation succeeded",
			zap.String("service", c.Name()),
			zap.Duration("latency", time.Since(start)))

		if o.memory != nil {
			if err := o.memory.Save(ctx, text, req.SourceLang, req.TargetLang, translated, c.Name()); err != nil {
				o.logger.Warn("translation memory save failed", zap.Error(err))
			}
		}
		return Outcome{Text: translated, Service: c.Name()}
	}

	return o.fallback(text, errors.Join(errs...))
}

func (o *Orchestrator) attempt(ctx context.Context, c translator.Capability, req translator.TranslateRequest) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("translation panicked: %v", r)
		}
	}()

	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	v, err := c.Translate(ctx, o.config.Service, req)
	if err != nil {
		return "", err
	}

	v, err = translator.Resolve(ctx, v)
	if err != nil {
		return "", err
	}

	text = translator.TextOf(v)
	if strings.TrimSpace(text) == "" {
		return "", translator.ErrNoText
	}

	if o.validator != nil {
		if err := o.validator.Check(text, req.TargetLang); err != nil {
			return "", fmt.Errorf("translation rejected: %w", err)
		}
	}
	return text, nil
}

func (o *Orchestrator) sourceLang(text string) string {
	src := o.config.SourceLang
	if src != "" && src != "auto" {
		return src
	}
	if o.detector != nil {
		if detected, ok := o.detector.DetectISO(text); ok {
			o.logger.Debug("detected source language", zap.String("lang", detected))
			return detected
		}
	}
	return "auto"
}

func (o *Orchestrator) fallback(text string, err error) Outcome {
	o.logger.Warn("translation failed, showing original text", zap.Error(err))
	return Outcome{Text: text, Err: err}
}
