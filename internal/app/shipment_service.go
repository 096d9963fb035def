package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores"
)

// Compile-time check that ShipmentService implements ports.ShipmentService.
var _ ports.ShipmentService = (*ShipmentService)(nil)

// ShipmentService implements ports.ShipmentService on top of the shipment
// and app settings stores.
type ShipmentService struct {
	dispatcher ports.ActionDispatcher
	snapshots  Snapshots
	logger     *slog.Logger
}

// NewShipmentService creates a ShipmentService.
func NewShipmentService(d ports.ActionDispatcher, s Snapshots, logger *slog.Logger) *ShipmentService {
	return &ShipmentService{dispatcher: d, snapshots: s, logger: logger}
}

// SyncTrackings makes the stored trackings of an order match the backend.
func (s *ShipmentService) SyncTrackings(ctx context.Context, siteID, orderID int64) error {
	s.logger.InfoContext(ctx, "syncing shipment trackings",
		slog.Int64("site_id", siteID), slog.Int64("order_id", orderID))

	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.SynchronizeShipmentTrackingData{SiteID: siteID, OrderID: orderID, OnCompletion: done}
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sync shipment trackings",
			slog.String("operation", "SyncTrackings"),
			slog.Int64("site_id", siteID),
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// SyncProviderGroups refreshes the site's provider catalog.
func (s *ShipmentService) SyncProviderGroups(ctx context.Context, siteID, orderID int64) error {
	s.logger.InfoContext(ctx, "syncing shipment providers", slog.Int64("site_id", siteID))

	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.SynchronizeShipmentTrackingProviderGroups{SiteID: siteID, OrderID: orderID, OnCompletion: done}
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sync shipment providers",
			slog.String("operation", "SyncProviderGroups"),
			slog.Int64("site_id", siteID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListTrackings returns the stored trackings of an order.
func (s *ShipmentService) ListTrackings(_ context.Context, siteID, orderID int64) ([]shipment.Tracking, error) {
	return s.snapshots.View().ShipmentTrackings(siteID, orderID), nil
}

// ListProviderGroups returns the stored provider catalog of a site.
func (s *ShipmentService) ListProviderGroups(_ context.Context, siteID int64) ([]shipment.ProviderGroup, error) {
	return s.snapshots.View().ProviderGroups(siteID), nil
}

// AddTracking validates t, attaches it, and remembers its provider. A
// failure to remember the provider is logged; the tracking stays added.
func (s *ShipmentService) AddTracking(
	ctx context.Context, siteID, orderID int64, t *shipment.NewTracking,
) (shipment.Tracking, error) {
	if err := t.Validate(); err != nil {
		return shipment.Tracking{}, err
	}

	added, err := sendResult(ctx, s.dispatcher, func(done func(shipment.Tracking, error)) dispatch.Action {
		if t.IsCustom() {
			return stores.AddCustomTracking{
				SiteID: siteID, OrderID: orderID,
				ProviderName: t.ProviderName, TrackingLink: t.CustomURL,
				TrackingNumber: t.TrackingNumber, DateShipped: t.DateShipped,
				OnCompletion: done,
			}
		}
		return stores.AddTracking{
			SiteID: siteID, OrderID: orderID,
			ProviderName: t.ProviderName, TrackingNumber: t.TrackingNumber, DateShipped: t.DateShipped,
			OnCompletion: done,
		}
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add shipment tracking",
			slog.String("operation", "AddTracking"),
			slog.Int64("site_id", siteID),
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
		return shipment.Tracking{}, err
	}

	err = send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		if t.IsCustom() {
			return stores.AddCustomTrackingProvider{
				SiteID: siteID, ProviderName: t.ProviderName, ProviderURL: t.CustomURL, OnCompletion: done,
			}
		}
		return stores.AddTrackingProvider{SiteID: siteID, ProviderName: t.ProviderName, OnCompletion: done}
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to remember tracking provider",
			slog.String("operation", "AddTracking"),
			slog.Int64("site_id", siteID),
			slog.Any("error", err),
		)
	}
	return added, nil
}

// DeleteTracking removes a tracking remotely and locally.
func (s *ShipmentService) DeleteTracking(ctx context.Context, siteID, orderID int64, trackingID string) error {
	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.DeleteTracking{SiteID: siteID, OrderID: orderID, TrackingID: trackingID, OnCompletion: done}
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete shipment tracking",
			slog.String("operation", "DeleteTracking"),
			slog.Int64("site_id", siteID),
			slog.Int64("order_id", orderID),
			slog.String("tracking_id", trackingID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
