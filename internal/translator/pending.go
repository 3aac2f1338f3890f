package translator

import (
	"context"
	"fmt"
)

// Pending is a translation still in flight. It settles exactly once; Await may be
// called any number of times.
type Pending struct {
	done  chan struct{}
	value any
	err   error
}

// Defer runs fn on its own goroutine and returns a Pending for its result. A panic in
// fn settles the Pending with an error.
func Defer(fn func() (any, error)) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.value, p.err = nil, fmt.Errorf("translation panicked: %v", r)
			}
		}()
		p.value, p.err = fn()
	}()
	return p
}

// Settled returns a Pending that is already resolved.
func Settled(value any, err error) *Pending {
	p := &Pending{done: make(chan struct{}), value: value, err: err}
	close(p.done)
	return p
}

// Await blocks until the translation settles or ctx is done.
func (p *Pending) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
