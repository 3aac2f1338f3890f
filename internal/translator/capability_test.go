package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

type horoscopeText struct {
	Sign string
	Body string
}

type fieldResult struct {
	Text string
	Src  string
}

type embeddedResult struct {
	fieldResult
	Latency time.Duration
}

type unexportedText struct {
	text string
}

type stringerResult struct{ s string }

func (r stringerResult) String() string { return r.s }

func TestTextOf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"service result", &ServiceResult{TranslatedText: "Hoje é um bom dia."}, "Hoje é um bom dia."},
		{"plain string", "Hoje é um bom dia.", "Hoje é um bom dia."},
		{"map any with text", map[string]any{"text": "X", "src": "en"}, "X"},
		{"map string with text", map[string]string{"text": "X"}, "X"},
		{"map without text", map[string]any{"src": "en"}, "map[src:en]"},
		{"map with non-string text", map[string]any{"text": 7}, "map[text:7]"},
		{"struct without text", horoscopeText{Sign: "libra", Body: "ok"}, "{libra ok}"},
		{"struct with text field", fieldResult{Text: "Hoje é um bom dia.", Src: "en"}, "Hoje é um bom dia."},
		{"pointer to struct with text field", &fieldResult{Text: "Hoje é um bom dia."}, "Hoje é um bom dia."},
		{"anonymous struct with text field", struct{ Text string }{"Hoje é um bom dia."}, "Hoje é um bom dia."},
		{"embedded text field", embeddedResult{fieldResult: fieldResult{Text: "Hoje é um bom dia."}}, "Hoje é um bom dia."},
		{"google translation", translate.Translation{Text: "Hoje é um bom dia.", Source: language.English}, "Hoje é um bom dia."},
		{"pointer to google translation", &translate.Translation{Text: "Hoje é um bom dia."}, "Hoje é um bom dia."},
		{"unexported text field", unexportedText{text: "hidden"}, "{hidden}"},
		{"non-string text field", struct{ Text int }{7}, "{7}"},
		{"nil struct pointer", (*fieldResult)(nil), "<nil>"},
		{"stringer", stringerResult{s: "rendered"}, "rendered"},
		{"number", 42, "42"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOf(tt.value); got != tt.want {
				t.Errorf("TextOf(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("immediate value", func(t *testing.T) {
		v, err := Resolve(ctx, map[string]any{"text": "X"})
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		if TextOf(v) != "X" {
			t.Errorf("TextOf(Resolve()) = %q, want X", TextOf(v))
		}
	})

	t.Run("deferred value", func(t *testing.T) {
		p := Defer(func() (any, error) {
			time.Sleep(10 * time.Millisecond)
			return map[string]any{"text": "X"}, nil
		})
		v, err := Resolve(ctx, p)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		if TextOf(v) != "X" {
			t.Errorf("TextOf(Resolve()) = %q, want X", TextOf(v))
		}
	})

	t.Run("pending resolving to pending", func(t *testing.T) {
		inner := Settled(&ServiceResult{TranslatedText: "X"}, nil)
		outer := Defer(func() (any, error) { return inner, nil })
		v, err := Resolve(ctx, outer)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		if TextOf(v) != "X" {
			t.Errorf("TextOf(Resolve()) = %q, want X", TextOf(v))
		}
	})

	t.Run("pending settling to itself", func(t *testing.T) {
		p := &Pending{done: make(chan struct{})}
		p.value = p
		close(p.done)

		if _, err := Resolve(ctx, p); !errors.Is(err, ErrPendingCycle) {
			t.Errorf("Resolve() error = %v, want ErrPendingCycle", err)
		}
	})

	t.Run("pending cycle of two", func(t *testing.T) {
		a := &Pending{done: make(chan struct{})}
		b := Settled(a, nil)
		a.value = b
		close(a.done)

		if _, err := Resolve(ctx, a); !errors.Is(err, ErrPendingCycle) {
			t.Errorf("Resolve() error = %v, want ErrPendingCycle", err)
		}
	})

	t.Run("deferred error", func(t *testing.T) {
		want := errors.New("service unavailable")
		_, err := Resolve(ctx, Defer(func() (any, error) { return nil, want }))
		if !errors.Is(err, want) {
			t.Errorf("Resolve() error = %v, want %v", err, want)
		}
	})
}

func TestPending_Panic(t *testing.T) {
	p := Defer(func() (any, error) { panic("boom") })

	_, err := p.Await(context.Background())
	if err == nil {
		t.Fatal("Await() expected error after panic, got nil")
	}
}

func TestPending_AwaitTwice(t *testing.T) {
	p := Settled("X", nil)
	for i := 0; i < 2; i++ {
		v, err := p.Await(context.Background())
		if err != nil || v != "X" {
			t.Errorf("Await() #%d = %v, %v; want X, nil", i+1, v, err)
		}
	}
}

func TestPending_AwaitCancelled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	p := Defer(func() (any, error) {
		<-block
		return "late", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Await(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Await() error = %v, want context.Canceled", err)
	}
}

type syncService struct {
	text string
	err  error
}

func (s *syncService) Name() string { return "sync" }

func (s *syncService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	if s.err != nil {
		return &ServiceResult{ServiceName: "sync", Error: s.err.Error()}, s.err
	}
	return &ServiceResult{ServiceName: "sync", TranslatedText: s.text}, nil
}

func (s *syncService) SupportedLanguages(ctx context.Context) ([]string, error) { return nil, nil }

type asyncService struct {
	syncService
}

func (s *asyncService) TranslateAsync(ctx context.Context, cfg ServiceConfig, req TranslateRequest) *Pending {
	return Defer(func() (any, error) { return &ServiceResult{ServiceName: "async", TranslatedText: s.text}, nil })
}

func TestFromService(t *testing.T) {
	ctx := context.Background()
	req := TranslateRequest{Text: "Today is a good day.", SourceLang: "en", TargetLang: "pt"}

	t.Run("sync service returns value", func(t *testing.T) {
		capability := FromService(&syncService{text: "Hoje é um bom dia."})
		if capability.Name() != "sync" {
			t.Errorf("Name() = %q, want sync", capability.Name())
		}
		v, err := capability.Translate(ctx, ServiceConfig{}, req)
		if err != nil {
			t.Fatalf("Translate() returned unexpected error: %v", err)
		}
		if _, ok := v.(*Pending); ok {
			t.Error("sync service should not return a Pending")
		}
		if TextOf(v) != "Hoje é um bom dia." {
			t.Errorf("TextOf() = %q", TextOf(v))
		}
	})

	t.Run("sync service error", func(t *testing.T) {
		want := errors.New("quota exceeded")
		_, err := FromService(&syncService{err: want}).Translate(ctx, ServiceConfig{}, req)
		if !errors.Is(err, want) {
			t.Errorf("Translate() error = %v, want %v", err, want)
		}
	})

	t.Run("async service returns pending", func(t *testing.T) {
		capability := FromService(&asyncService{syncService{text: "X"}})
		v, err := capability.Translate(ctx, ServiceConfig{}, req)
		if err != nil {
			t.Fatalf("Translate() returned unexpected error: %v", err)
		}
		if _, ok := v.(*Pending); !ok {
			t.Fatalf("Translate() returned %T, want *Pending", v)
		}
		resolved, err := Resolve(ctx, v)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		if TextOf(resolved) != "X" {
			t.Errorf("TextOf() = %q, want X", TextOf(resolved))
		}
	})
}
