// Package app provides application services that orchestrate use cases by
// dispatching actions to the stores and reading the local snapshot. Services
// contain no sync logic of their own; inbound adapters call them through the
// service ports.
package app

import (
	"context"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Snapshots exposes the latest committed local snapshot. Implemented by
// *storage.Manager.
type Snapshots interface {
	View() storage.View
}

// send dispatches the action built around done and waits for its
// completion. A dispatch failure completes immediately.
func send(ctx context.Context, d ports.ActionDispatcher, build func(done func(error)) dispatch.Action) error {
	return dispatch.Await(ctx, func(done func(error)) {
		if err := d.Dispatch(ctx, build(done)); err != nil {
			done(err)
		}
	})
}

// sendResult is send for completions that carry a value.
func sendResult[T any](ctx context.Context, d ports.ActionDispatcher, build func(done func(T, error)) dispatch.Action) (T, error) {
	return dispatch.AwaitResult(ctx, func(done func(T, error)) {
		if err := d.Dispatch(ctx, build(done)); err != nil {
			var zero T
			done(zero, err)
		}
	})
}
