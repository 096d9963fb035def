package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// The remote ports below are implemented by the remote adapter and called
// by the stores. Each method performs exactly one backend request, never
// retries, and never touches local storage. Errors match domain.ErrTransport,
// domain.ErrDecode or domain.ErrSerialization.

// ShipmentRemote covers the shipment tracking extension.
type ShipmentRemote interface {
	// LoadShipmentTrackings returns every tracking attached to an order.
	LoadShipmentTrackings(ctx context.Context, siteID, orderID int64) ([]shipment.Tracking, error)

	// LoadShipmentTrackingProviderGroups returns the provider catalog. The
	// endpoint is order-scoped but the catalog is per site.
	LoadShipmentTrackingProviderGroups(ctx context.Context, siteID, orderID int64) ([]shipment.ProviderGroup, error)

	// AddShipmentTracking attaches a tracking number with a catalog provider
	// and returns the stored record.
	AddShipmentTracking(ctx context.Context, siteID, orderID int64, provider, number string, shipped time.Time) (shipment.Tracking, error)

	// AddCustomShipmentTracking attaches a tracking number with a provider
	// outside the catalog.
	AddCustomShipmentTracking(ctx context.Context, siteID, orderID int64, provider, link, number string, shipped time.Time) (shipment.Tracking, error)

	// DeleteShipmentTracking removes a tracking and returns the deleted record.
	DeleteShipmentTracking(ctx context.Context, siteID, orderID int64, trackingID string) (shipment.Tracking, error)
}

// OrdersRemote covers single-order reads and updates.
type OrdersRemote interface {
	// LoadOrder returns one order. A missing order matches domain.ErrNotFound.
	LoadOrder(ctx context.Context, siteID, orderID int64) (order.Order, error)

	// UpdateOrder sends the named fields of o and returns the server's copy.
	// Invalid fields fail with domain.ErrSerialization before any request.
	UpdateOrder(ctx context.Context, siteID int64, o *order.Order, fields []order.Field) (order.Order, error)
}

// RefundsRemote covers order refunds.
type RefundsRemote interface {
	// LoadAllRefunds returns one page of an order's refunds. Pages start at 1.
	LoadAllRefunds(ctx context.Context, siteID, orderID int64, page, perPage int) ([]refund.Refund, error)

	// LoadRefunds returns the named refunds of an order.
	LoadRefunds(ctx context.Context, siteID, orderID int64, refundIDs []int64) ([]refund.Refund, error)
}

// ShippingLabelRemote covers purchased shipping labels.
type ShippingLabelRemote interface {
	// LoadShippingLabels returns every label purchased for an order.
	LoadShippingLabels(ctx context.Context, siteID, orderID int64) ([]shippinglabel.Label, error)

	// RefundShippingLabel requests a refund for a label.
	RefundShippingLabel(ctx context.Context, siteID, orderID, labelID int64) (shippinglabel.Refund, error)
}

// ProductsRemote covers catalog lookups.
type ProductsRemote interface {
	// LoadProducts returns the named products, in server order.
	LoadProducts(ctx context.Context, siteID int64, productIDs []int64) ([]product.Product, error)
}
