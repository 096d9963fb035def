// Package dispatch routes actions to the store that handles them. Each
// action kind has exactly one processor. Registration happens at startup;
// after Seal the routing table is read-only.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

var (
	// ErrDuplicateHandler is returned when a kind already has a processor.
	ErrDuplicateHandler = errors.New("duplicate action handler")

	// ErrSealed is returned by Register after Seal.
	ErrSealed = errors.New("dispatcher sealed")

	// ErrNoHandler is returned by Dispatch for a kind nobody registered.
	ErrNoHandler = errors.New("no action handler")
)

// Kind tags a family of actions.
type Kind string

// Action is a request for a store to do something. Concrete actions carry
// their parameters and an optional completion callback.
type Action interface {
	Kind() Kind
}

// Processor handles the actions of the kinds it supports.
type Processor interface {
	SupportedActions() []Kind
	OnAction(ctx context.Context, action Action)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStrict makes dispatching an unhandled kind panic instead of
// returning ErrNoHandler.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// Dispatcher maps action kinds to processors.
type Dispatcher struct {
	logger *slog.Logger
	strict bool

	mu       sync.RWMutex
	handlers map[Kind]Processor
	sealed   bool
}

// New returns an empty dispatcher.
func New(logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger:   logger,
		handlers: make(map[Kind]Processor),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register makes p the handler for kind.
func (d *Dispatcher) Register(kind Kind, p Processor) error {
	return d.RegisterAll([]Kind{kind}, p)
}

// RegisterProcessor registers p for every kind it supports.
func (d *Dispatcher) RegisterProcessor(p Processor) error {
	return d.RegisterAll(p.SupportedActions(), p)
}

// RegisterAll registers p for every kind in kinds, or for none of them if
// any is already taken.
func (d *Dispatcher) RegisterAll(kinds []Kind, p Processor) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sealed {
		return ErrSealed
	}
	for i, k := range kinds {
		if _, ok := d.handlers[k]; ok || slices.Contains(kinds[:i], k) {
			return fmt.Errorf("%w: %s", ErrDuplicateHandler, k)
		}
	}
	for _, k := range kinds {
		d.handlers[k] = p
	}
	return nil
}

// Seal freezes the routing table.
func (d *Dispatcher) Seal() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sealed = true
}

// Kinds returns the registered kinds, sorted.
func (d *Dispatcher) Kinds() []Kind {
	d.mu.RLock()
	defer d.mu.RUnlock()
	kinds := make([]Kind, 0, len(d.handlers))
	for k := range d.handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Dispatch hands action to its processor on the calling goroutine.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action) error {
	d.mu.RLock()
	p, ok := d.handlers[action.Kind()]
	d.mu.RUnlock()

	if !ok {
		if d.strict {
			panic(fmt.Sprintf("dispatch: no handler registered for %q", action.Kind()))
		}
		d.logger.ErrorContext(ctx, "action dropped",
			slog.String("operation", "Dispatcher.Dispatch"),
			slog.String("kind", string(action.Kind())),
		)
		return fmt.Errorf("%w: %s", ErrNoHandler, action.Kind())
	}

	p.OnAction(ctx, action)
	return nil
}
