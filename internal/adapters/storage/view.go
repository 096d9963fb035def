package storage

import (
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// View is a consistent read-only snapshot of the local store. It reflects
// every commit published before it was taken and none after. Values it
// returns are copies.
type View struct {
	s *state
}

// ShipmentTrackings returns the trackings stored for an order.
func (v View) ShipmentTrackings(siteID, orderID int64) []shipment.Tracking {
	return v.s.trackings.Values(OrderScope(siteID, orderID))
}

// ShipmentTracking returns one tracking.
func (v View) ShipmentTracking(siteID, orderID int64, trackingID string) (shipment.Tracking, bool) {
	return v.s.trackings.Get(Key{SiteID: siteID, ParentID: orderID, ID: trackingID})
}

// ProviderGroups returns a site's provider groups in server order.
func (v View) ProviderGroups(siteID int64) []shipment.ProviderGroup {
	return v.s.providerGroups.Values(SiteScope(siteID))
}

// Order returns a stored order.
func (v View) Order(siteID, orderID int64) (order.Order, bool) {
	return v.s.orders.Get(IntKey(siteID, 0, orderID))
}

// Refunds returns the refunds stored for an order.
func (v View) Refunds(siteID, orderID int64) []refund.Refund {
	return v.s.refunds.Values(OrderScope(siteID, orderID))
}

// ShippingLabels returns the shipping labels stored for an order.
func (v View) ShippingLabels(siteID, orderID int64) []shippinglabel.Label {
	return v.s.labels.Values(OrderScope(siteID, orderID))
}

// Products returns the stored products among ids, in the order of ids.
// Unknown ids are skipped.
func (v View) Products(siteID int64, ids []int64) []product.Product {
	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := v.s.products.Get(IntKey(siteID, 0, id)); ok {
			out = append(out, p)
		}
	}
	return out
}

// Counts returns the number of rows per table.
func (v View) Counts() map[string]int {
	tables := v.s.tables()
	out := make(map[string]int, len(tables))
	for _, t := range tables {
		out[t.Name()] = t.Len()
	}
	return out
}
