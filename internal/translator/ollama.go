package translator

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/valpere/horoscope/internal/postprocess"
)

const (
	defaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama3.2"
)

// OllamaTranslator prompts a local Ollama model to translate.
type OllamaTranslator struct {
	baseURL string
	model   string
	client  *resty.Client
}

func NewOllamaTranslator(baseURL, model string) *OllamaTranslator {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaTranslator{
		baseURL: baseURL,
		model:   model,
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (s *OllamaTranslator) Name() string {
	return "ollama"
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func (s *OllamaTranslator) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	model := s.model
	if cfg.Model != "" {
		model = cfg.Model
	}

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "the detected language"
	}

	prompt := fmt.Sprintf(`Translate this horoscope from %s to %s.
Keep the tone and meaning. Only respond with the translation, nothing else.

Text: "%s"

Translation:`, sourceLang, req.TargetLang, req.Text)

	var out ollamaGenerateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(ollamaGenerateRequest{Model: model, Prompt: prompt}).
		SetResult(&out).
		Post("/api/generate")
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("ollama request failed: %w", err)
	}
	if !resp.IsSuccess() {
		result.Error = fmt.Sprintf("API returned status %d", resp.StatusCode())
		return result, fmt.Errorf("ollama returned status %d", resp.StatusCode())
	}

	result.TranslatedText = postprocess.Clean(out.Response)
	if result.TranslatedText == "" {
		result.Error = "empty response"
		return result, ErrNoText
	}
	result.Metadata = map[string]string{"model": model}
	return result, nil
}

func (s *OllamaTranslator) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "es", "fr", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar", "uk"}, nil
}
