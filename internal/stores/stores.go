// Package stores holds the sync orchestrators. Each store handles the
// actions of one domain: it fetches through a remote, commits the result to
// the local store, and then fires the action's completion exactly once.
//
// Work runs on its own goroutine, detached from the dispatching context's
// cancellation: a caller that stops waiting does not stop the commit. A
// failed fetch never touches local storage.
package stores

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// base is the machinery shared by the remote-backed stores.
type base struct {
	name    string
	storage *storage.Manager
	tracker *syncstate.Tracker
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func newBase(name string, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger) base {
	return base{
		name:    name,
		storage: st,
		tracker: tracker,
		logger:  logger.With(slog.String("store", name)),
	}
}

// Wait blocks until every operation the store started has completed.
func (b *base) Wait() {
	b.wg.Wait()
}

// run performs fetch, then commit (if non-nil) in one local write, then
// calls done. done may be nil.
func run[T any](
	b *base,
	ctx context.Context,
	operation, scope string,
	fetch func(context.Context) (T, error),
	commit func(*storage.Tx, T) error,
	done func(T, error),
) {
	ctx = context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		op := b.tracker.Begin(ctx, b.name, operation, scope)
		v, err := fetch(ctx)
		if err != nil {
			op.Failed(ctx, err)
			complete(done, v, err)
			return
		}

		op.Fetched(ctx)
		if commit != nil {
			err = b.storage.Write(ctx, func(tx *storage.Tx) error {
				return commit(tx, v)
			})
			if err != nil {
				op.Failed(ctx, err)
				var zero T
				complete(done, zero, err)
				return
			}
		}
		op.Committed(ctx)
		complete(done, v, nil)
	}()
}

func complete[T any](done func(T, error), v T, err error) {
	if done != nil {
		done(v, err)
	}
}

// errOnly adapts a plain error completion to run's signature.
func errOnly[T any](done func(error)) func(T, error) {
	if done == nil {
		return nil
	}
	return func(_ T, err error) { done(err) }
}

func (b *base) logStats(ctx context.Context, table string, stats storage.SyncStats) {
	b.logger.DebugContext(ctx, "records reconciled",
		slog.String("table", table),
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("deleted", stats.Deleted),
	)
}

func orderScope(siteID, orderID int64) string {
	return fmt.Sprintf("%d/%d", siteID, orderID)
}

func siteScope(siteID int64) string {
	return fmt.Sprintf("%d", siteID)
}
