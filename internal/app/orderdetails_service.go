package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/storesync/internal/app/fanout"
	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores"
)

// Compile-time check that OrderDetailsService implements ports.OrderDetailsService.
var _ ports.OrderDetailsService = (*OrderDetailsService)(nil)

const (
	// productBatchSize is how many product IDs one lookup asks for.
	productBatchSize = 20

	// productWorkers bounds concurrent product lookups.
	productWorkers = 4
)

// OrderDetailsService implements ports.OrderDetailsService.
type OrderDetailsService struct {
	dispatcher ports.ActionDispatcher
	snapshots  Snapshots
	logger     *slog.Logger
}

// NewOrderDetailsService creates an OrderDetailsService.
func NewOrderDetailsService(d ports.ActionDispatcher, s Snapshots, logger *slog.Logger) *OrderDetailsService {
	return &OrderDetailsService{dispatcher: d, snapshots: s, logger: logger}
}

// SyncOrder retrieves the order first, so a deleted order is forgotten
// before anything attached to it is fetched. The order's refund list is
// authoritative: the stored refunds become exactly the ones it names. Refunds, labels, trackings and
// products are then synced concurrently. Labels and trackings come from
// optional extensions; a store without them answers not found, which is
// logged and ignored.
func (s *OrderDetailsService) SyncOrder(ctx context.Context, siteID, orderID int64) error {
	log := s.logger.With(slog.Int64("site_id", siteID), slog.Int64("order_id", orderID))
	log.InfoContext(ctx, "syncing order details")

	o, err := sendResult(ctx, s.dispatcher, func(done func(order.Order, error)) dispatch.Action {
		return stores.RetrieveOrder{SiteID: siteID, OrderID: orderID, OnCompletion: done}
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to retrieve order",
			slog.String("operation", "SyncOrder"),
			slog.Any("error", err),
		)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return send(gctx, s.dispatcher, func(done func(error)) dispatch.Action {
			return stores.RetrieveRefunds{
				SiteID:       siteID,
				OrderID:      orderID,
				RefundIDs:    o.RefundIDs,
				DeleteStale:  true,
				OnCompletion: done,
			}
		})
	})
	g.Go(func() error {
		return optional(gctx, log, "shipping labels", send(gctx, s.dispatcher, func(done func(error)) dispatch.Action {
			return stores.SynchronizeShippingLabels{SiteID: siteID, OrderID: orderID, OnCompletion: done}
		}))
	})
	g.Go(func() error {
		return optional(gctx, log, "shipment trackings", send(gctx, s.dispatcher, func(done func(error)) dispatch.Action {
			return stores.SynchronizeShipmentTrackingData{SiteID: siteID, OrderID: orderID, OnCompletion: done}
		}))
	})
	g.Go(func() error {
		return s.syncProducts(gctx, siteID, orderdetails.ProductIDs(o.Items))
	})

	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "failed to sync order details",
			slog.String("operation", "SyncOrder"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// syncProducts looks up ids in batches, in parallel.
func (s *OrderDetailsService) syncProducts(ctx context.Context, siteID int64, ids []int64) error {
	_, err := fanout.Batches(ctx, ids, productBatchSize, productWorkers, func(ctx context.Context, batch []int64) ([]product.Product, error) {
		return sendResult(ctx, s.dispatcher, func(done func([]product.Product, error)) dispatch.Action {
			return stores.RetrieveProducts{SiteID: siteID, ProductIDs: batch, OnCompletion: done}
		})
	})
	return err
}

// Details aggregates the stored order, refunds, labels and products.
func (s *OrderDetailsService) Details(_ context.Context, siteID, orderID int64) (orderdetails.Details, error) {
	view := s.snapshots.View()
	o, ok := view.Order(siteID, orderID)
	if !ok {
		return orderdetails.Details{}, fmt.Errorf("order %d of site %d: %w", orderID, siteID, domain.ErrNotFound)
	}

	products := make(map[int64]product.Product)
	for _, p := range view.Products(siteID, orderdetails.ProductIDs(o.Items)) {
		products[p.ProductID] = p
	}

	return orderdetails.Aggregate(orderdetails.Input{
		Items:    o.Items,
		Refunds:  view.Refunds(siteID, orderID),
		Labels:   view.ShippingLabels(siteID, orderID),
		Products: products,
	}), nil
}

// optional swallows a not-found error from an extension endpoint.
func optional(ctx context.Context, log *slog.Logger, what string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		log.WarnContext(ctx, "extension unavailable, skipping", slog.String("data", what), slog.Any("error", err))
		return nil
	}
	return err
}
