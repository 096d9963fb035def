// Package storage is the local store: an in-memory, indexed set of tables
// holding the entities synchronized from the store backend.
//
// Every write runs on one writer goroutine against a private copy of the
// current state. When the write function succeeds, the changed tables are
// persisted (if a Persister is configured) and the new state is published
// atomically. Readers take a View, which is never affected by later or
// failed writes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Manager)(nil)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("storage closed")

// Persister saves table snapshots outside the process.
type Persister interface {
	// Load returns the last saved snapshot of every table, keyed by name.
	Load(ctx context.Context) (map[string][]byte, error)

	// Save atomically replaces the snapshots of the given tables.
	Save(ctx context.Context, tables map[string][]byte) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Option configures a Manager.
type Option func(*Manager)

// WithPersister makes every commit durable through p.
func WithPersister(p Persister) Option {
	return func(m *Manager) {
		m.persister = p
	}
}

type writeRequest struct {
	ctx  context.Context
	fn   func(*Tx) error
	done chan error
}

// Manager owns the published state and the writer goroutine.
type Manager struct {
	logger    *slog.Logger
	persister Persister

	current atomic.Pointer[state]
	writes  chan writeRequest
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once

	commits  atomic.Uint64
	failures atomic.Uint64
	lastErr  atomic.Pointer[error]
}

// New creates a Manager, restores the persisted snapshot if a Persister is
// configured, and starts the writer goroutine.
func New(ctx context.Context, logger *slog.Logger, opts ...Option) (*Manager, error) {
	m := &Manager{
		logger:  logger,
		writes:  make(chan writeRequest),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	s := newState()
	if m.persister != nil {
		if err := restore(ctx, m.persister, s); err != nil {
			return nil, err
		}
	}
	m.current.Store(s)

	go m.run()
	return m, nil
}

func restore(ctx context.Context, p Persister, s *state) error {
	snapshot, err := p.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: loading snapshot: %w", domain.ErrStorage, err)
	}
	for name, data := range snapshot {
		t := s.table(name)
		if t == nil {
			continue
		}
		if err := t.unmarshal(data); err != nil {
			return fmt.Errorf("%w: restoring %s: %w", domain.ErrStorage, name, err)
		}
	}
	return nil
}

// View returns the latest published state.
func (m *Manager) View() View {
	return View{s: m.current.Load()}
}

// Write runs fn in a transaction on the writer goroutine and publishes the
// result if fn returns nil and persistence succeeds. Write returns after
// the outcome is known; once accepted, a write is not abandoned when ctx
// ends.
func (m *Manager) Write(ctx context.Context, fn func(*Tx) error) error {
	req := writeRequest{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case m.writes <- req:
	case <-m.quit:
		return fmt.Errorf("%w: %w", domain.ErrStorage, ErrClosed)
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-req.done
}

func (m *Manager) run() {
	defer close(m.stopped)
	for {
		select {
		case req := <-m.writes:
			req.done <- m.commit(req.ctx, req.fn)
		case <-m.quit:
			return
		}
	}
}

func (m *Manager) commit(ctx context.Context, fn func(*Tx) error) error {
	start := time.Now()
	tx := newTx(m.current.Load())
	if err := fn(tx); err != nil {
		return err
	}

	changed := tx.changed()
	if len(changed) == 0 {
		return nil
	}

	if m.persister != nil {
		if err := m.persist(ctx, tx, changed); err != nil {
			m.failures.Add(1)
			m.lastErr.Store(&err)
			m.logger.ErrorContext(ctx, "local commit failed",
				slog.String("operation", "storage.Write"),
				slog.Any("tables", changed),
				slog.Any("error", err),
			)
			return err
		}
		m.lastErr.Store(nil)
	}

	m.current.Store(tx.next)
	m.commits.Add(1)
	m.logger.DebugContext(ctx, "local commit published",
		slog.String("operation", "storage.Write"),
		slog.Any("tables", changed),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func (m *Manager) persist(ctx context.Context, tx *Tx, changed []string) error {
	snapshot := make(map[string][]byte, len(changed))
	for _, name := range changed {
		data, err := tx.next.table(name).marshal()
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %w", domain.ErrStorage, name, err)
		}
		snapshot[name] = data
	}
	if err := m.persister.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

// Close stops the writer goroutine and closes the persister. Writes
// already accepted complete first.
func (m *Manager) Close() error {
	var err error
	m.once.Do(func() {
		close(m.quit)
		<-m.stopped
		if m.persister != nil {
			err = m.persister.Close()
		}
	})
	return err
}

// Name implements ports.HealthChecker.
func (m *Manager) Name() string {
	return "storage"
}

// HealthCheck reports the last persistence failure, if the most recent
// commit failed, and pings the persister.
func (m *Manager) HealthCheck(ctx context.Context) error {
	select {
	case <-m.quit:
		return ErrClosed
	default:
	}
	if errp := m.lastErr.Load(); errp != nil {
		return *errp
	}
	if m.persister != nil {
		return m.persister.Ping(ctx)
	}
	return nil
}
