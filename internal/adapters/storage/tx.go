package storage

import (
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// Tx is a write transaction. Tables are copied on first access, so a Tx
// that fails or touches nothing leaves the published state as it was.
type Tx struct {
	next  *state
	dirty map[string]bool
}

func newTx(base *state) *Tx {
	next := *base
	return &Tx{next: &next, dirty: make(map[string]bool)}
}

// touch clones t into the transaction the first time it is reached.
func touch[V any](tx *Tx, t **Table[V]) *Table[V] {
	name := (*t).Name()
	if !tx.dirty[name] {
		*t = (*t).clone()
		tx.dirty[name] = true
	}
	return *t
}

// ShipmentTrackings returns the writable tracking table.
func (tx *Tx) ShipmentTrackings() *Table[shipment.Tracking] {
	return touch(tx, &tx.next.trackings)
}

// ProviderGroups returns the writable provider group table.
func (tx *Tx) ProviderGroups() *Table[shipment.ProviderGroup] {
	return touch(tx, &tx.next.providerGroups)
}

// Orders returns the writable order table.
func (tx *Tx) Orders() *Table[order.Order] {
	return touch(tx, &tx.next.orders)
}

// Refunds returns the writable refund table.
func (tx *Tx) Refunds() *Table[refund.Refund] {
	return touch(tx, &tx.next.refunds)
}

// ShippingLabels returns the writable shipping label table.
func (tx *Tx) ShippingLabels() *Table[shippinglabel.Label] {
	return touch(tx, &tx.next.labels)
}

// Products returns the writable product table.
func (tx *Tx) Products() *Table[product.Product] {
	return touch(tx, &tx.next.products)
}

// DeleteOrderScope removes an order together with every record attached to
// it and returns how many records went.
func (tx *Tx) DeleteOrderScope(siteID, orderID int64) int {
	scope := OrderScope(siteID, orderID)
	n := tx.ShipmentTrackings().DeleteScope(scope)
	n += tx.Refunds().DeleteScope(scope)
	n += tx.ShippingLabels().DeleteScope(scope)
	if tx.Orders().Delete(IntKey(siteID, 0, orderID)) {
		n++
	}
	return n
}

func (tx *Tx) changed() []string {
	names := make([]string, 0, len(tx.dirty))
	for _, t := range tx.next.tables() {
		if tx.dirty[t.Name()] {
			names = append(names, t.Name())
		}
	}
	return names
}
