package storage

import (
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// Table names, as used in snapshots and metric labels.
const (
	TableShipmentTrackings = "shipment_trackings"
	TableProviderGroups    = "shipment_provider_groups"
	TableOrders            = "orders"
	TableRefunds           = "refunds"
	TableShippingLabels    = "shipping_labels"
	TableProducts          = "products"
)

// table is the type-erased view of a Table used for snapshots and metrics.
type table interface {
	Name() string
	Len() int
	marshal() ([]byte, error)
	unmarshal(data []byte) error
}

// state is one published version of the local store. A published state is
// never mutated; writes build a successor.
type state struct {
	trackings      *Table[shipment.Tracking]
	providerGroups *Table[shipment.ProviderGroup]
	orders         *Table[order.Order]
	refunds        *Table[refund.Refund]
	labels         *Table[shippinglabel.Label]
	products       *Table[product.Product]
}

func newState() *state {
	return &state{
		trackings:      newTable[shipment.Tracking](TableShipmentTrackings),
		providerGroups: newTable[shipment.ProviderGroup](TableProviderGroups),
		orders:         newTable[order.Order](TableOrders),
		refunds:        newTable[refund.Refund](TableRefunds),
		labels:         newTable[shippinglabel.Label](TableShippingLabels),
		products:       newTable[product.Product](TableProducts),
	}
}

func (s *state) tables() []table {
	return []table{s.trackings, s.providerGroups, s.orders, s.refunds, s.labels, s.products}
}

func (s *state) table(name string) table {
	for _, t := range s.tables() {
		if t.Name() == name {
			return t
		}
	}
	return nil
}
