// Package health runs the readiness checks for the backend transport, the
// local store and the settings backend.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/storesync/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each check so one stuck dependency cannot hold
// the probe past the orchestrator's deadline.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. d <= 0 leaves checks
// bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// Registry is safe for concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A later checker with the same name replaces the
// earlier one in CheckAll results.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently, each under its own timeout. A
// check that panics is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { errs[i] = r.check(ctx, c) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: check panicked: %v", c.Name(), p)
		}
	}()
	return c.HealthCheck(ctx)
}
