package stores

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// Shipment action kinds.
const (
	KindSynchronizeShipmentTrackingData           dispatch.Kind = "shipment.synchronize_tracking_data"
	KindSynchronizeShipmentTrackingProviderGroups dispatch.Kind = "shipment.synchronize_provider_groups"
	KindAddTracking                               dispatch.Kind = "shipment.add_tracking"
	KindAddCustomTracking                         dispatch.Kind = "shipment.add_custom_tracking"
	KindDeleteTracking                            dispatch.Kind = "shipment.delete_tracking"
)

// SynchronizeShipmentTrackingData makes the stored trackings of an order
// match the backend's.
type SynchronizeShipmentTrackingData struct {
	SiteID       int64
	OrderID      int64
	OnCompletion func(error)
}

func (SynchronizeShipmentTrackingData) Kind() dispatch.Kind {
	return KindSynchronizeShipmentTrackingData
}

// SynchronizeShipmentTrackingProviderGroups makes the stored provider
// catalog of a site match the backend's.
type SynchronizeShipmentTrackingProviderGroups struct {
	SiteID       int64
	OrderID      int64
	OnCompletion func(error)
}

func (SynchronizeShipmentTrackingProviderGroups) Kind() dispatch.Kind {
	return KindSynchronizeShipmentTrackingProviderGroups
}

// AddTracking attaches a tracking number using a catalog provider.
type AddTracking struct {
	SiteID         int64
	OrderID        int64
	ProviderName   string
	TrackingNumber string
	DateShipped    time.Time
	OnCompletion   func(shipment.Tracking, error)
}

func (AddTracking) Kind() dispatch.Kind { return KindAddTracking }

// AddCustomTracking attaches a tracking number using a provider outside
// the catalog.
type AddCustomTracking struct {
	SiteID         int64
	OrderID        int64
	ProviderName   string
	TrackingLink   string
	TrackingNumber string
	DateShipped    time.Time
	OnCompletion   func(shipment.Tracking, error)
}

func (AddCustomTracking) Kind() dispatch.Kind { return KindAddCustomTracking }

// DeleteTracking removes a tracking remotely and then locally.
type DeleteTracking struct {
	SiteID       int64
	OrderID      int64
	TrackingID   string
	OnCompletion func(error)
}

func (DeleteTracking) Kind() dispatch.Kind { return KindDeleteTracking }

// ShipmentStore handles the shipment tracking actions.
type ShipmentStore struct {
	base
	remote ports.ShipmentRemote
}

// NewShipmentStore wires a ShipmentStore.
func NewShipmentStore(
	remote ports.ShipmentRemote, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger,
) *ShipmentStore {
	return &ShipmentStore{base: newBase("shipment", st, tracker, logger), remote: remote}
}

// SupportedActions implements dispatch.Processor.
func (s *ShipmentStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{
		KindSynchronizeShipmentTrackingData,
		KindSynchronizeShipmentTrackingProviderGroups,
		KindAddTracking,
		KindAddCustomTracking,
		KindDeleteTracking,
	}
}

// OnAction implements dispatch.Processor.
func (s *ShipmentStore) OnAction(ctx context.Context, action dispatch.Action) {
	switch a := action.(type) {
	case SynchronizeShipmentTrackingData:
		s.synchronizeTrackings(ctx, a)
	case SynchronizeShipmentTrackingProviderGroups:
		s.synchronizeProviderGroups(ctx, a)
	case AddTracking:
		s.addTracking(ctx, a.SiteID, a.OrderID, "add_tracking", func(ctx context.Context) (shipment.Tracking, error) {
			return s.remote.AddShipmentTracking(ctx, a.SiteID, a.OrderID, a.ProviderName, a.TrackingNumber, a.DateShipped)
		}, a.OnCompletion)
	case AddCustomTracking:
		s.addTracking(ctx, a.SiteID, a.OrderID, "add_custom_tracking", func(ctx context.Context) (shipment.Tracking, error) {
			return s.remote.AddCustomShipmentTracking(ctx, a.SiteID, a.OrderID,
				a.ProviderName, a.TrackingLink, a.TrackingNumber, a.DateShipped)
		}, a.OnCompletion)
	case DeleteTracking:
		s.deleteTracking(ctx, a)
	default:
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
	}
}

func (s *ShipmentStore) synchronizeTrackings(ctx context.Context, a SynchronizeShipmentTrackingData) {
	run(&s.base, ctx, "synchronize_tracking_data", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) ([]shipment.Tracking, error) {
			return s.remote.LoadShipmentTrackings(ctx, a.SiteID, a.OrderID)
		},
		func(tx *storage.Tx, trackings []shipment.Tracking) error {
			stats, err := storage.UpsertAndPrune(tx.ShipmentTrackings(),
				storage.OrderScope(a.SiteID, a.OrderID), trackings, storage.TrackingKey)
			s.logStats(ctx, storage.TableShipmentTrackings, stats)
			return err
		},
		errOnly[[]shipment.Tracking](a.OnCompletion),
	)
}

func (s *ShipmentStore) synchronizeProviderGroups(ctx context.Context, a SynchronizeShipmentTrackingProviderGroups) {
	run(&s.base, ctx, "synchronize_provider_groups", siteScope(a.SiteID),
		func(ctx context.Context) ([]shipment.ProviderGroup, error) {
			return s.remote.LoadShipmentTrackingProviderGroups(ctx, a.SiteID, a.OrderID)
		},
		func(tx *storage.Tx, groups []shipment.ProviderGroup) error {
			stats, err := storage.UpsertAndPrune(tx.ProviderGroups(),
				storage.SiteScope(a.SiteID), groups, storage.ProviderGroupKey)
			s.logStats(ctx, storage.TableProviderGroups, stats)
			return err
		},
		errOnly[[]shipment.ProviderGroup](a.OnCompletion),
	)
}

func (s *ShipmentStore) addTracking(
	ctx context.Context, siteID, orderID int64, operation string,
	add func(context.Context) (shipment.Tracking, error),
	done func(shipment.Tracking, error),
) {
	run(&s.base, ctx, operation, orderScope(siteID, orderID), add,
		func(tx *storage.Tx, t shipment.Tracking) error {
			storage.Upsert(tx.ShipmentTrackings(), []shipment.Tracking{t}, storage.TrackingKey)
			return nil
		},
		done,
	)
}

func (s *ShipmentStore) deleteTracking(ctx context.Context, a DeleteTracking) {
	run(&s.base, ctx, "delete_tracking", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) (shipment.Tracking, error) {
			return s.remote.DeleteShipmentTracking(ctx, a.SiteID, a.OrderID, a.TrackingID)
		},
		func(tx *storage.Tx, _ shipment.Tracking) error {
			tx.ShipmentTrackings().Delete(storage.Key{SiteID: a.SiteID, ParentID: a.OrderID, ID: a.TrackingID})
			return nil
		},
		errOnly[shipment.Tracking](a.OnCompletion),
	)
}
