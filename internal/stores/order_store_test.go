package stores_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/stores"
)

const orderRoute = "orders/963"

func retrieveOrder(done func(error)) dispatch.Action {
	return stores.RetrieveOrder{
		SiteID: siteID, OrderID: orderID,
		OnCompletion: func(_ order.Order, err error) { done(err) },
	}
}

func TestOrderStore_RetrieveOrder(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(orderRoute, "order.json")

	require.NoError(t, h.do(t, retrieveOrder))

	got, ok := h.view().Order(siteID, orderID)
	require.True(t, ok)
	assert.Equal(t, order.StatusProcessing, got.Status)
	assert.True(t, decimal.RequireFromString("193.00").Equal(got.Total))
	assert.Len(t, got.Items, 4)
}

func TestOrderStore_RetrieveDeletedOrderRemovesScope(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(orderRoute, "order.json")
	h.net.SimulateResponse(trackingsRoute, "shipment-trackings.json")
	h.net.SimulateResponse("orders/963/refunds", "refunds.json")
	h.net.SimulateResponse("label/963", "shipping-labels.json")

	require.NoError(t, h.do(t, retrieveOrder))
	require.NoError(t, h.do(t, syncTrackings))
	require.NoError(t, h.do(t, func(done func(error)) dispatch.Action {
		return stores.SynchronizeRefunds{SiteID: siteID, OrderID: orderID, PageNumber: 1, PageSize: 25, OnCompletion: done}
	}))
	require.NoError(t, h.do(t, func(done func(error)) dispatch.Action {
		return stores.SynchronizeShippingLabels{SiteID: siteID, OrderID: orderID, OnCompletion: done}
	}))

	h.net.SimulateResponse(orderRoute, "order-wc-not-found.json")
	err := h.do(t, retrieveOrder)

	require.ErrorIs(t, err, domain.ErrNotFound)
	_, ok := h.view().Order(siteID, orderID)
	assert.False(t, ok)
	assert.Empty(t, h.view().ShipmentTrackings(siteID, orderID))
	assert.Empty(t, h.view().Refunds(siteID, orderID))
	assert.Empty(t, h.view().ShippingLabels(siteID, orderID))
}

func TestOrderStore_RetrieveTransportErrorKeepsOrder(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(orderRoute, "order.json")
	require.NoError(t, h.do(t, retrieveOrder))

	h.net.SimulateError(orderRoute, domain.ErrTransport)
	err := h.do(t, retrieveOrder)

	require.ErrorIs(t, err, domain.ErrTransport)
	_, ok := h.view().Order(siteID, orderID)
	assert.True(t, ok)
}

func TestOrderStore_UpdateOrderStoresServerCopy(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(orderRoute, "order.json")

	var updated order.Order
	err := h.do(t, func(done func(error)) dispatch.Action {
		return stores.UpdateOrder{
			SiteID: siteID,
			Order:  order.Order{OrderID: orderID, CustomerNote: "Please leave at the front desk."},
			Fields: []order.Field{order.FieldCustomerNote},
			OnCompletion: func(o order.Order, err error) {
				updated = o
				done(err)
			},
		}
	})

	require.NoError(t, err)
	assert.Equal(t, "Please leave at the front desk.", updated.CustomerNote)
	stored, ok := h.view().Order(siteID, orderID)
	require.True(t, ok)
	assert.Equal(t, updated.Number, stored.Number)

	reqs := h.net.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "PUT", reqs[0].Method)
	assert.Equal(t, "Please leave at the front desk.", reqs[0].Parameters["customer_note"])
}

func TestOrderStore_UpdateOrderSerializationErrorSendsNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.do(t, func(done func(error)) dispatch.Action {
		return stores.UpdateOrder{
			SiteID:       siteID,
			Order:        order.Order{OrderID: orderID},
			Fields:       []order.Field{order.FieldBillingAddress},
			OnCompletion: func(_ order.Order, err error) { done(err) },
		}
	})

	require.ErrorIs(t, err, domain.ErrSerialization)
	assert.Empty(t, h.net.Requests())
	_, ok := h.view().Order(siteID, orderID)
	assert.False(t, ok)
}
