package ports

import (
	"context"

	"github.com/jsamuelsen11/storesync/internal/dispatch"
)

// ActionDispatcher routes actions to the stores that registered for them.
// Implemented by *dispatch.Dispatcher.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, action dispatch.Action) error
}
