package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/iter"
	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"github.com/valpere/horoscope/internal/chunker"
)

const (
	defaultMyMemoryURL = "https://api.mymemory.translated.net/get"

	// myMemoryMaxBytes is the largest q the free MyMemory endpoint accepts.
	myMemoryMaxBytes = 500
)

// MyMemoryService translates through the free MyMemory API. Texts above the query size
// limit are split on sentence boundaries and the pieces translated concurrently.
type MyMemoryService struct {
	email   string
	baseURL string
	client  *resty.Client
}

func NewMyMemoryService(email string) *MyMemoryService {
	return &MyMemoryService{
		email:   email,
		baseURL: defaultMyMemoryURL,
		client: resty.New().
			SetHeader("Accept", "application/json"),
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	v, err := s.TranslateAsync(ctx, cfg, req).Await(ctx)
	if err != nil {
		if res, ok := v.(*ServiceResult); ok {
			return res, err
		}
		return &ServiceResult{ServiceName: s.Name(), Error: err.Error()}, err
	}
	return v.(*ServiceResult), nil
}

// TranslateAsync starts the translation and returns immediately.
func (s *MyMemoryService) TranslateAsync(ctx context.Context, cfg ServiceConfig, req TranslateRequest) *Pending {
	return Defer(func() (any, error) {
		result := &ServiceResult{ServiceName: s.Name()}
		start := time.Now()
		defer func() { result.Latency = time.Since(start) }()

		sourceLang := req.SourceLang
		if sourceLang == "" || sourceLang == "auto" {
			sourceLang = "en"
		}
		langPair := fmt.Sprintf("%s|%s", sourceLang, req.TargetLang)

		chunks, seps := chunker.SplitKeep(req.Text, myMemoryMaxBytes)
		translated, err := iter.MapErr(chunks, func(chunk *string) (string, error) {
			return s.translateChunk(ctx, *chunk, langPair)
		})
		if err != nil {
			result.Error = err.Error()
			return result, err
		}

		result.TranslatedText = chunker.Join(translated, seps)
		result.Metadata = map[string]string{"chunks": fmt.Sprint(len(chunks))}
		return result, nil
	})
}

func (s *MyMemoryService) translateChunk(ctx context.Context, text, langPair string) (string, error) {
	params := map[string]string{
		"q":        text,
		"langpair": langPair,
	}
	if s.email != "" {
		params["de"] = s.email
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("mymemory request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("mymemory returned status %d", resp.StatusCode())
	}

	body := resp.String()
	if !gjson.Valid(body) {
		return "", fmt.Errorf("mymemory returned invalid JSON")
	}

	// responseStatus is sometimes sent as a string.
	if status := gjson.Get(body, "responseStatus").Int(); status != 200 {
		return "", fmt.Errorf("mymemory API error: %s (%d)", gjson.Get(body, "responseDetails").String(), status)
	}

	text = gjson.Get(body, "responseData.translatedText").String()
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
		"ar", "nl", "pl", "tr", "sv", "da", "no", "fi", "el", "he",
		"th", "vi", "id", "ms", "cs", "hu", "ro", "uk", "bg", "ca",
	}, nil
}
