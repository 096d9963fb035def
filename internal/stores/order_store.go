package stores

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// Order action kinds.
const (
	KindRetrieveOrder dispatch.Kind = "order.retrieve"
	KindUpdateOrder   dispatch.Kind = "order.update"
)

// RetrieveOrder fetches one order and stores it. If the backend no longer
// has the order, the stored copy and everything attached to it is removed
// and the completion receives the not-found error.
type RetrieveOrder struct {
	SiteID       int64
	OrderID      int64
	OnCompletion func(order.Order, error)
}

func (RetrieveOrder) Kind() dispatch.Kind { return KindRetrieveOrder }

// UpdateOrder sends the named fields of Order and stores the server's copy.
type UpdateOrder struct {
	SiteID       int64
	Order        order.Order
	Fields       []order.Field
	OnCompletion func(order.Order, error)
}

func (UpdateOrder) Kind() dispatch.Kind { return KindUpdateOrder }

// OrderStore handles the order actions.
type OrderStore struct {
	base
	remote ports.OrdersRemote
}

// NewOrderStore wires an OrderStore.
func NewOrderStore(remote ports.OrdersRemote, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger) *OrderStore {
	return &OrderStore{base: newBase("order", st, tracker, logger), remote: remote}
}

// SupportedActions implements dispatch.Processor.
func (s *OrderStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{KindRetrieveOrder, KindUpdateOrder}
}

// OnAction implements dispatch.Processor.
func (s *OrderStore) OnAction(ctx context.Context, action dispatch.Action) {
	switch a := action.(type) {
	case RetrieveOrder:
		s.retrieveOrder(ctx, a)
	case UpdateOrder:
		s.updateOrder(ctx, a)
	default:
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
	}
}

func (s *OrderStore) retrieveOrder(ctx context.Context, a RetrieveOrder) {
	run(&s.base, ctx, "retrieve_order", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) (order.Order, error) {
			o, err := s.remote.LoadOrder(ctx, a.SiteID, a.OrderID)
			if errors.Is(err, domain.ErrNotFound) {
				s.forget(ctx, a.SiteID, a.OrderID)
			}
			return o, err
		},
		upsertOrder,
		a.OnCompletion,
	)
}

// forget removes an order the backend reports as gone.
func (s *OrderStore) forget(ctx context.Context, siteID, orderID int64) {
	var deleted int
	err := s.storage.Write(ctx, func(tx *storage.Tx) error {
		deleted = tx.DeleteOrderScope(siteID, orderID)
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "removing deleted order failed",
			slog.Int64("site_id", siteID),
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.InfoContext(ctx, "removed order deleted remotely",
		slog.Int64("site_id", siteID),
		slog.Int64("order_id", orderID),
		slog.Int("records", deleted),
	)
}

func (s *OrderStore) updateOrder(ctx context.Context, a UpdateOrder) {
	run(&s.base, ctx, "update_order", orderScope(a.SiteID, a.Order.OrderID),
		func(ctx context.Context) (order.Order, error) {
			return s.remote.UpdateOrder(ctx, a.SiteID, &a.Order, a.Fields)
		},
		upsertOrder,
		a.OnCompletion,
	)
}

func upsertOrder(tx *storage.Tx, o order.Order) error {
	storage.Upsert(tx.Orders(), []order.Order{o}, storage.OrderKey)
	return nil
}
