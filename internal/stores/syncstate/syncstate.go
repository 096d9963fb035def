// Package syncstate tracks sync operations through their lifecycle:
//
//	idle --fetch--> fetching --fetched--> committing --committed--> idle
//	                   |                      |
//	                   +-------failed---------+-------> idle
//
// Every operation gets its own state machine, an ID for log correlation,
// and an outcome recorded in Prometheus.
package syncstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// States.
const (
	StateIdle       = "idle"
	StateFetching   = "fetching"
	StateCommitting = "committing"
)

// Events.
const (
	EventFetch     = "fetch"
	EventFetched   = "fetched"
	EventFailed    = "failed"
	EventCommitted = "committed"
)

var transitions = fsm.Events{
	{Name: EventFetch, Src: []string{StateIdle}, Dst: StateFetching},
	{Name: EventFetched, Src: []string{StateFetching}, Dst: StateCommitting},
	{Name: EventCommitted, Src: []string{StateCommitting}, Dst: StateIdle},
	{Name: EventFailed, Src: []string{StateFetching, StateCommitting}, Dst: StateIdle},
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSerializedScopes makes operations on the same scope run one at a
// time, from Begin until they finish. Without it, overlapping operations
// race and the last commit wins.
func WithSerializedScopes(on bool) Option {
	return func(t *Tracker) {
		t.serialize = on
	}
}

// Tracker starts operations and keeps per-scope bookkeeping.
type Tracker struct {
	logger    *slog.Logger
	metrics   *Metrics
	serialize bool

	mu       sync.Mutex
	inFlight map[string]int
	locks    map[string]*scopeLock
}

type scopeLock struct {
	mu   sync.Mutex
	refs int
}

// NewTracker returns a Tracker. metrics may be nil.
func NewTracker(logger *slog.Logger, metrics *Metrics, opts ...Option) *Tracker {
	t := &Tracker{
		logger:   logger,
		metrics:  metrics,
		inFlight: make(map[string]int),
		locks:    make(map[string]*scopeLock),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// InFlight returns the number of unfinished operations on scope.
func (t *Tracker) InFlight(scope string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight[scope]
}

// Operation is one sync run.
type Operation struct {
	ID        uuid.UUID
	Store     string
	Name      string
	Scope     string
	tracker   *Tracker
	machine   *fsm.FSM
	logger    *slog.Logger
	started   time.Time
	lock      *scopeLock
	finishOne sync.Once
}

// Begin starts an operation on scope and moves it to fetching. With
// serialized scopes it first waits for earlier operations on the scope.
func (t *Tracker) Begin(ctx context.Context, store, name, scope string) *Operation {
	op := &Operation{
		ID:      uuid.New(),
		Store:   store,
		Name:    name,
		Scope:   scope,
		tracker: t,
	}
	op.logger = t.logger.With(
		slog.String("operation_id", op.ID.String()),
		slog.String("store", store),
		slog.String("operation", name),
		slog.String("scope", scope),
	)
	op.machine = fsm.NewFSM(StateIdle, transitions, fsm.Callbacks{
		"enter_state": func(ctx context.Context, e *fsm.Event) {
			op.logger.DebugContext(ctx, "sync state changed",
				slog.String("event", e.Event),
				slog.String("from", e.Src),
				slog.String("to", e.Dst),
			)
		},
	})

	if t.serialize {
		op.lock = t.acquire(scope)
	}
	t.mu.Lock()
	t.inFlight[scope]++
	t.mu.Unlock()

	op.started = time.Now()
	op.logger.InfoContext(ctx, "sync started")
	op.fire(ctx, EventFetch)
	return op
}

// State returns the operation's current state.
func (op *Operation) State() string {
	return op.machine.Current()
}

// Fetched records that the remote call succeeded and the commit begins.
func (op *Operation) Fetched(ctx context.Context) {
	op.fire(ctx, EventFetched)
}

// Committed records a successful commit and finishes the operation.
func (op *Operation) Committed(ctx context.Context) {
	op.fire(ctx, EventCommitted)
	op.finish(func() {
		op.logger.InfoContext(ctx, "sync finished",
			slog.Duration("duration", time.Since(op.started)),
		)
		op.tracker.metrics.observe(op.Store, op.Name, ResultSuccess, time.Since(op.started))
	})
}

// Failed records err and finishes the operation. Local storage was not
// changed by this operation.
func (op *Operation) Failed(ctx context.Context, err error) {
	op.fire(ctx, EventFailed)
	op.finish(func() {
		op.logger.ErrorContext(ctx, "sync failed",
			slog.Duration("duration", time.Since(op.started)),
			slog.Any("error", err),
		)
		op.tracker.metrics.observe(op.Store, op.Name, ResultError, time.Since(op.started))
	})
}

// End finishes op according to err: Committed when nil, Failed otherwise.
func (op *Operation) End(ctx context.Context, err error) {
	if err != nil {
		op.Failed(ctx, err)
		return
	}
	if op.State() == StateFetching {
		op.Fetched(ctx)
	}
	op.Committed(ctx)
}

func (op *Operation) fire(ctx context.Context, event string) {
	if err := op.machine.Event(ctx, event); err != nil {
		// An invalid transition is a bug in the calling store.
		panic(fmt.Sprintf("syncstate: %s/%s: %v", op.Store, op.Name, err))
	}
}

func (op *Operation) finish(report func()) {
	op.finishOne.Do(func() {
		t := op.tracker
		t.mu.Lock()
		if t.inFlight[op.Scope]--; t.inFlight[op.Scope] <= 0 {
			delete(t.inFlight, op.Scope)
		}
		t.mu.Unlock()
		if op.lock != nil {
			t.release(op.Scope, op.lock)
		}
		report()
	})
}

func (t *Tracker) acquire(scope string) *scopeLock {
	t.mu.Lock()
	l := t.locks[scope]
	if l == nil {
		l = &scopeLock{}
		t.locks[scope] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return l
}

func (t *Tracker) release(scope string, l *scopeLock) {
	l.mu.Unlock()
	t.mu.Lock()
	defer t.mu.Unlock()
	if l.refs--; l.refs == 0 {
		delete(t.locks, scope)
	}
}
