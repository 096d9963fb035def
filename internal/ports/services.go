package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
	"github.com/jsamuelsen11/storesync/internal/domain/settings"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

// ShipmentService defines the service port for shipment tracking.
// Implemented by the application layer; called by inbound adapters.
// Sync and write operations go through the stores; reads come from the
// local snapshot and never reach the backend.
type ShipmentService interface {
	// SyncTrackings makes the stored trackings of an order match the backend.
	SyncTrackings(ctx context.Context, siteID, orderID int64) error

	// SyncProviderGroups refreshes the site's provider catalog. The backend
	// only serves the catalog under an order, so one is required.
	SyncProviderGroups(ctx context.Context, siteID, orderID int64) error

	// ListTrackings returns the stored trackings of an order.
	ListTrackings(ctx context.Context, siteID, orderID int64) ([]shipment.Tracking, error)

	// ListProviderGroups returns the stored provider catalog of a site.
	ListProviderGroups(ctx context.Context, siteID int64) ([]shipment.ProviderGroup, error)

	// AddTracking attaches a tracking number and remembers the provider as
	// the site's preselected one.
	// Returns domain.ErrValidation if t is incomplete.
	AddTracking(ctx context.Context, siteID, orderID int64, t *shipment.NewTracking) (shipment.Tracking, error)

	// DeleteTracking removes a tracking remotely and locally.
	DeleteTracking(ctx context.Context, siteID, orderID int64, trackingID string) error
}

// OrderDetailsService defines the service port behind the order-details view.
type OrderDetailsService interface {
	// SyncOrder refreshes an order and everything the details view shows
	// for it: refunds, shipping labels, trackings and products.
	// Returns domain.ErrNotFound if the backend no longer has the order.
	SyncOrder(ctx context.Context, siteID, orderID int64) error

	// Details aggregates the stored order for display.
	// Returns domain.ErrNotFound if the order has not been synced.
	Details(ctx context.Context, siteID, orderID int64) (orderdetails.Details, error)
}

// SettingsService defines the service port for app settings kept in files.
type SettingsService interface {
	// SelectedProviders returns the catalog and the custom provider last
	// used on a site. Nil means none was chosen.
	SelectedProviders(ctx context.Context, siteID int64) (catalog, custom *settings.PreselectedProvider, err error)

	// SelectProvider preselects a provider for a site. A non-empty url marks
	// it as custom.
	SelectProvider(ctx context.Context, siteID int64, name, url string) error

	// MarkInstalled records the installation date unless an earlier one is
	// stored, reporting whether it changed.
	MarkInstalled(ctx context.Context, at time.Time) (bool, error)

	// FeedbackVisible reports whether a feedback prompt should be shown.
	FeedbackVisible(ctx context.Context, t settings.FeedbackType) (bool, error)

	// UpdateFeedback records what the user did with a prompt.
	UpdateFeedback(ctx context.Context, t settings.FeedbackType, status settings.FeedbackStatus) error

	// CardReaders returns the known card readers.
	CardReaders(ctx context.Context) ([]string, error)

	// RememberCardReader adds a card reader to the known list.
	RememberCardReader(ctx context.Context, readerID string) error

	// ForgetCardReader removes a card reader from the known list.
	ForgetCardReader(ctx context.Context, readerID string) error
}
