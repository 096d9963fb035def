package storage

import (
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// Key is the natural key of a stored record: the site, the parent entity
// (zero for site-level records) and the record's own identifier.
type Key struct {
	SiteID   int64  `json:"site_id"`
	ParentID int64  `json:"parent_id"`
	ID       string `json:"id"`
}

// Scope returns the (site, parent) pair the key belongs to.
func (k Key) Scope() Scope {
	return Scope{SiteID: k.SiteID, ParentID: k.ParentID}
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%s", k.SiteID, k.ParentID, k.ID)
}

// Scope is the key space a sync is authoritative over, such as one order's
// trackings or one site's provider groups.
type Scope struct {
	SiteID   int64
	ParentID int64
}

// IntKey builds a key for an entity with a numeric identifier.
func IntKey(siteID, parentID, id int64) Key {
	return Key{SiteID: siteID, ParentID: parentID, ID: strconv.FormatInt(id, 10)}
}

// OrderScope is the scope of everything attached to one order.
func OrderScope(siteID, orderID int64) Scope {
	return Scope{SiteID: siteID, ParentID: orderID}
}

// SiteScope is the scope of site-level records.
func SiteScope(siteID int64) Scope {
	return Scope{SiteID: siteID}
}

// TrackingKey is keyed by (site, order, tracking id).
func TrackingKey(t shipment.Tracking) Key {
	return Key{SiteID: t.SiteID, ParentID: t.OrderID, ID: t.TrackingID}
}

// ProviderGroupKey is keyed by (site, 0, group name).
func ProviderGroupKey(g shipment.ProviderGroup) Key {
	return Key{SiteID: g.SiteID, ID: g.Name}
}

// OrderKey is keyed by (site, 0, order id).
func OrderKey(o order.Order) Key {
	return IntKey(o.SiteID, 0, o.OrderID)
}

// RefundKey is keyed by (site, order, refund id).
func RefundKey(r refund.Refund) Key {
	return IntKey(r.SiteID, r.OrderID, r.RefundID)
}

// LabelKey is keyed by (site, order, label id).
func LabelKey(l shippinglabel.Label) Key {
	return IntKey(l.SiteID, l.OrderID, l.ShippingLabelID)
}

// ProductKey is keyed by (site, 0, product id).
func ProductKey(p product.Product) Key {
	return IntKey(p.SiteID, 0, p.ProductID)
}
