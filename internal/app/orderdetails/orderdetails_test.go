package orderdetails_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func orderItems() []order.Item {
	return []order.Item{
		{ItemID: 11, ProductID: 101, Name: "Beanie", SKU: "BEANIE-01", Quantity: dec("1"), Price: dec("18"), Subtotal: dec("18.00"), Total: dec("18.00")},
		{ItemID: 12, ProductID: 102, Name: "Belt", SKU: "BELT-01", Quantity: dec("1"), Price: dec("55"), Subtotal: dec("55.00"), Total: dec("55.00")},
		{ItemID: 13, ProductID: 103, Name: "Cap", SKU: "CAP-01", Quantity: dec("1"), Price: dec("30"), Subtotal: dec("30.00"), Total: dec("30.00")},
		{
			ItemID: 14, ProductID: 104, VariationID: 1041, Name: "Hoodie - Blue", SKU: "HOODIE-BLUE",
			Quantity: dec("2"), Price: dec("45"), Subtotal: dec("90.00"), Total: dec("90.00"),
			Attributes: []order.ItemAttribute{{MetaID: 301, Name: "Color", Value: "Blue"}},
		},
	}
}

func capRefund() refund.Refund {
	return refund.Refund{
		SiteID: 123, OrderID: 963, RefundID: 501, Amount: dec("30.00"), Reason: "Wrong size",
		Items: []refund.Item{{
			ItemID: 601, RefundedItemID: 13, ProductID: 103, Name: "Cap",
			Quantity: dec("-1"), Price: dec("-30"), Subtotal: dec("-30.00"), Total: dec("-30.00"),
		}},
	}
}

func priorityLabel() shippinglabel.Label {
	return shippinglabel.Label{
		SiteID: 123, OrderID: 963, ShippingLabelID: 1,
		TrackingNumber: "9405500205309069374220", CarrierID: "usps", ServiceName: "USPS - Priority Mail",
		Status: shippinglabel.StatusPurchased, ProductIDs: []int64{101, 102},
		DateCreated: time.Date(2019, 2, 15, 16, 0, 0, 0, time.UTC),
	}
}

func hoodieLabel(refunded bool) shippinglabel.Label {
	l := shippinglabel.Label{
		SiteID: 123, OrderID: 963, ShippingLabelID: 2,
		TrackingNumber: "9405500205309069374237", CarrierID: "usps", ServiceName: "USPS - First Class Mail",
		Status: shippinglabel.StatusPurchased, ProductIDs: []int64{1041},
		DateCreated: time.Date(2019, 2, 16, 16, 0, 0, 0, time.UTC),
	}
	if refunded {
		l.Refund = &shippinglabel.Refund{
			DateRequested: time.Date(2019, 2, 17, 16, 0, 0, 0, time.UTC),
			Status:        shippinglabel.RefundPending,
		}
	}
	return l
}

func catalog() map[int64]product.Product {
	return map[int64]product.Product{
		101: {SiteID: 123, ProductID: 101, Name: "Beanie", ImageURL: "https://store.example.com/wp-content/uploads/beanie.jpg"},
		102: {SiteID: 123, ProductID: 102, Name: "Belt"},
		104: {SiteID: 123, ProductID: 104, Name: "Hoodie", ImageURL: "https://store.example.com/wp-content/uploads/hoodie.jpg"},
	}
}

func TestAggregate_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input orderdetails.Input
	}{
		{
			name: "refunded_label_releases_items",
			input: orderdetails.Input{
				Items:    orderItems(),
				Refunds:  []refund.Refund{capRefund()},
				Labels:   []shippinglabel.Label{hoodieLabel(true), priorityLabel()},
				Products: catalog(),
			},
		},
		{
			name: "partial_refund_and_live_labels",
			input: orderdetails.Input{
				Items: orderItems(),
				Refunds: []refund.Refund{
					capRefund(),
					{
						SiteID: 123, OrderID: 963, RefundID: 502, Amount: dec("45.00"),
						Items: []refund.Item{{
							ItemID: 602, ProductID: 104, VariationID: 1041, Name: "Hoodie - Blue",
							Quantity: dec("-1"), Price: dec("-45"), Subtotal: dec("-45.00"), Total: dec("-45.00"),
						}},
					},
				},
				Labels:   []shippinglabel.Label{hoodieLabel(false), priorityLabel()},
				Products: catalog(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.MarshalIndent(orderdetails.Aggregate(tt.input), "", "  ")
			require.NoError(t, err)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tt.name, append(got, '\n'))
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()
	in := orderdetails.Input{
		Items:    orderItems(),
		Refunds:  []refund.Refund{capRefund()},
		Labels:   []shippinglabel.Label{priorityLabel(), hoodieLabel(false)},
		Products: catalog(),
	}

	first := orderdetails.Aggregate(in)
	second := orderdetails.Aggregate(in)

	assert.Equal(t, first, second)
	assert.Equal(t, orderItems(), in.Items)
}

func TestAggregate_FullyRefundedItemIsRemoved(t *testing.T) {
	t.Parallel()

	got := orderdetails.Aggregate(orderdetails.Input{
		Items:   orderItems(),
		Refunds: []refund.Refund{capRefund()},
	})

	ids := make([]int64, 0, len(got.Items))
	for _, it := range got.Items {
		ids = append(ids, it.ItemID)
	}
	assert.Equal(t, []int64{11, 12, 14}, ids)
	assert.Empty(t, got.LabelGroups)
}

func TestAggregate_RefundMatchedByProduct(t *testing.T) {
	t.Parallel()

	got := orderdetails.Aggregate(orderdetails.Input{
		Items: orderItems()[3:],
		Refunds: []refund.Refund{{
			RefundID: 900,
			Items: []refund.Item{{
				ProductID: 104, VariationID: 1041, Quantity: dec("-1"), Total: dec("-45.00"),
			}},
		}},
	})

	require.Len(t, got.Items, 1)
	assert.True(t, dec("1").Equal(got.Items[0].Quantity))
	assert.True(t, dec("45").Equal(got.Items[0].Total))
}

func TestAggregate_LabelWithoutMatchingItems(t *testing.T) {
	t.Parallel()
	label := priorityLabel()
	label.ProductIDs = []int64{555}

	got := orderdetails.Aggregate(orderdetails.Input{
		Items:  orderItems(),
		Labels: []shippinglabel.Label{label},
	})

	assert.Len(t, got.Items, 4)
	require.Len(t, got.LabelGroups, 1)
	assert.Empty(t, got.LabelGroups[0].Items)
}

func TestAggregate_LabelClaimsOneUnitPerOccurrence(t *testing.T) {
	t.Parallel()
	label := hoodieLabel(false)
	label.ProductIDs = []int64{1041, 104}

	got := orderdetails.Aggregate(orderdetails.Input{
		Items:  orderItems()[3:],
		Labels: []shippinglabel.Label{label},
	})

	assert.Empty(t, got.Items)
	require.Len(t, got.LabelGroups, 1)
	require.Len(t, got.LabelGroups[0].Items, 1)
	assert.True(t, dec("2").Equal(got.LabelGroups[0].Items[0].Quantity))
	assert.True(t, dec("90").Equal(got.LabelGroups[0].Items[0].Total))
}

func TestProductIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int64{101, 102, 103, 104, 1041}, orderdetails.ProductIDs(orderItems()))
	assert.Nil(t, orderdetails.ProductIDs(nil))
}
