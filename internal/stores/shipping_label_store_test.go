package stores_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
	"github.com/jsamuelsen11/storesync/internal/stores"
)

const labelsRoute = "label/963"

func syncLabels(done func(error)) dispatch.Action {
	return stores.SynchronizeShippingLabels{SiteID: siteID, OrderID: orderID, OnCompletion: done}
}

func refundLabel(labelID int64, out *shippinglabel.Refund) func(done func(error)) dispatch.Action {
	return func(done func(error)) dispatch.Action {
		return stores.RefundShippingLabel{
			SiteID: siteID, OrderID: orderID, ShippingLabelID: labelID,
			OnCompletion: func(r shippinglabel.Refund, err error) {
				*out = r
				done(err)
			},
		}
	}
}

func TestShippingLabelStore_SynchronizeLabels(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(labelsRoute, "shipping-labels.json")
	h.net.SimulateResponse(labelsRoute, "shipping-labels-empty.json")

	require.NoError(t, h.do(t, syncLabels))
	labels := h.view().ShippingLabels(siteID, orderID)
	require.Len(t, labels, 2)
	assert.False(t, labels[0].IsRefunded())
	assert.True(t, labels[1].IsRefunded())

	require.NoError(t, h.do(t, syncLabels))
	assert.Empty(t, h.view().ShippingLabels(siteID, orderID))
}

func TestShippingLabelStore_RefundAttachesToStoredLabel(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse(labelsRoute, "shipping-labels.json")
	h.net.SimulateResponse("label/963/1/refund", "shipping-label-refund.json")
	require.NoError(t, h.do(t, syncLabels))

	var got shippinglabel.Refund
	require.NoError(t, h.do(t, refundLabel(1, &got)))

	assert.Equal(t, shippinglabel.RefundPending, got.Status)
	labels := h.view().ShippingLabels(siteID, orderID)
	require.Len(t, labels, 2)
	require.NotNil(t, labels[0].Refund)
	assert.Equal(t, got, *labels[0].Refund)
}

func TestShippingLabelStore_RefundOfUnsyncedLabel(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.net.SimulateResponse("label/963/1/refund", "shipping-label-refund.json")

	var got shippinglabel.Refund
	require.NoError(t, h.do(t, refundLabel(1, &got)))

	assert.Equal(t, shippinglabel.RefundPending, got.Status)
	assert.Empty(t, h.view().ShippingLabels(siteID, orderID))
}
