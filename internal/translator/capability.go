package translator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrPendingCycle is returned by Resolve when a Pending settles to itself or to a Pending
// already seen in the same chain.
var ErrPendingCycle = errors.New("pending translation resolves to itself")

// ErrNoText is returned by TextOf callers when a resolved value carries no usable text.
var ErrNoText = errors.New("translation returned no text")

// Texter is implemented by translation results that expose their text directly.
type Texter interface {
	Text() string
}

// Capability is the narrow contract the orchestrator drives. Translate may return a
// *Pending, a Texter, a map with a "text" key, or any other value; see Resolve and TextOf.
type Capability interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (any, error)
}

// CapabilityFunc turns a function into a Capability.
type CapabilityFunc struct {
	ServiceName string
	Fn          func(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (any, error)
}

func (c CapabilityFunc) Name() string {
	return c.ServiceName
}

func (c CapabilityFunc) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (any, error) {
	return c.Fn(ctx, cfg, req)
}

type serviceCapability struct {
	svc TranslationService
}

// FromService exposes a typed backend as a Capability. Backends implementing
// AsyncTranslationService hand back their Pending unresolved.
func FromService(svc TranslationService) Capability {
	return serviceCapability{svc: svc}
}

func (c serviceCapability) Name() string {
	return c.svc.Name()
}

func (c serviceCapability) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (any, error) {
	if async, ok := c.svc.(AsyncTranslationService); ok {
		return async.TranslateAsync(ctx, cfg, req), nil
	}
	res, err := c.svc.Translate(ctx, cfg, req)
	if err != nil || res == nil {
		return nil, err
	}
	return res, nil
}

// Resolve blocks until v is no longer a *Pending. Values that are not pending are
// returned unchanged.
func Resolve(ctx context.Context, v any) (any, error) {
	seen := make(map[*Pending]struct{})
	for {
		p, ok := v.(*Pending)
		if !ok {
			return v, nil
		}
		if _, dup := seen[p]; dup {
			return nil, ErrPendingCycle
		}
		seen[p] = struct{}{}
		next, err := p.Await(ctx)
		if err != nil {
			return nil, err
		}
		v = next
	}
}

// TextOf extracts the translated text from a resolved value. A Texter, a map with a
// string "text" entry, or a struct (or pointer to one) with an exported string Text field
// yields that text; anything else is rendered whole with fmt.Sprint.
func TextOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case Texter:
		return t.Text()
	case string:
		return t
	case map[string]string:
		if text, ok := t["text"]; ok {
			return text
		}
	case map[string]any:
		if text, ok := t["text"].(string); ok {
			return text
		}
	}
	if text, ok := textField(v); ok {
		return text
	}
	return fmt.Sprint(v)
}

// textField reads an exported string field named Text, following pointers.
func textField(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}

	sf, ok := rv.Type().FieldByName("Text")
	if !ok || !sf.IsExported() || sf.Type.Kind() != reflect.String {
		return "", false
	}
	field, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return "", false
	}
	return field.String(), true
}
