// Package orderdetails builds the read model behind the order-details view
// from the stored order, its refunds, its shipping labels and the products
// it references.
//
// Refunded quantities are taken off their original items, and fully refunded
// items disappear. Units shipped under a shipping label move from the generic
// item list to that label's group, unless the label itself was refunded.
package orderdetails

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

// Input is everything the aggregate is computed from.
type Input struct {
	Items    []order.Item
	Refunds  []refund.Refund
	Labels   []shippinglabel.Label
	Products map[int64]product.Product
}

// Attribute is a displayable item attribute, such as a variation option.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Item is one visible order line.
type Item struct {
	ItemID      int64           `json:"item_id"`
	ProductID   int64           `json:"product_id"`
	VariationID int64           `json:"variation_id,omitempty"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	Attributes  []Attribute     `json:"attributes,omitempty"`
}

// LabelGroup is a shipping label and the units shipped under it.
type LabelGroup struct {
	ShippingLabelID int64     `json:"shipping_label_id"`
	TrackingNumber  string    `json:"tracking_number"`
	CarrierID       string    `json:"carrier_id"`
	ServiceName     string    `json:"service_name"`
	DateCreated     time.Time `json:"date_created"`
	Items           []Item    `json:"items"`
}

// Details is the aggregated order-details read model.
type Details struct {
	Items       []Item       `json:"items"`
	LabelGroups []LabelGroup `json:"label_groups"`
}

// line tracks what is left of an order item while refunds and labels are
// applied.
type line struct {
	item     *order.Item
	quantity decimal.Decimal
	total    decimal.Decimal
}

// Aggregate computes the read model. It does not modify in, and equal
// inputs always give equal output.
func Aggregate(in Input) Details {
	lines := make([]*line, len(in.Items))
	for i := range in.Items {
		lines[i] = &line{item: &in.Items[i], quantity: in.Items[i].Quantity, total: in.Items[i].Total}
	}

	applyRefunds(lines, in.Refunds)
	groups := claimForLabels(lines, in.Labels, in.Products)

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.quantity.IsPositive() {
			items = append(items, toItem(l.item, l.quantity, l.total, in.Products))
		}
	}
	return Details{Items: items, LabelGroups: groups}
}

func applyRefunds(lines []*line, refunds []refund.Refund) {
	sorted := slices.Clone(refunds)
	slices.SortFunc(sorted, func(a, b refund.Refund) int { return cmp.Compare(a.RefundID, b.RefundID) })

	for _, r := range sorted {
		for i := range r.Items {
			ri := &r.Items[i]
			target := refundTarget(lines, ri)
			if target == nil {
				continue
			}
			target.quantity = atLeastZero(target.quantity.Sub(ri.Quantity.Abs()))
			target.total = atLeastZero(target.total.Sub(ri.Total.Abs()))
		}
	}
}

// refundTarget finds the item a refund line reverses: the item it names,
// or else the first item with remaining quantity for the same product and
// variation.
func refundTarget(lines []*line, ri *refund.Item) *line {
	if ri.RefundedItemID != 0 {
		for _, l := range lines {
			if l.item.ItemID == ri.RefundedItemID {
				return l
			}
		}
	}
	for _, l := range lines {
		if l.item.ProductID == ri.ProductID && l.item.VariationID == ri.VariationID && l.quantity.IsPositive() {
			return l
		}
	}
	return nil
}

// claimForLabels moves one unit per product ID of every live label from the
// generic lines into the label's group. Labels are visited oldest first.
func claimForLabels(lines []*line, labels []shippinglabel.Label, products map[int64]product.Product) []LabelGroup {
	sorted := slices.Clone(labels)
	slices.SortFunc(sorted, func(a, b shippinglabel.Label) int {
		if c := a.DateCreated.Compare(b.DateCreated); c != 0 {
			return c
		}
		return cmp.Compare(a.ShippingLabelID, b.ShippingLabelID)
	})

	one := decimal.NewFromInt(1)
	groups := make([]LabelGroup, 0, len(sorted))
	for i := range sorted {
		label := &sorted[i]
		if label.IsRefunded() {
			continue
		}

		group := LabelGroup{
			ShippingLabelID: label.ShippingLabelID,
			TrackingNumber:  label.TrackingNumber,
			CarrierID:       label.CarrierID,
			ServiceName:     label.ServiceName,
			DateCreated:     label.DateCreated,
			Items:           []Item{},
		}
		for _, id := range label.ProductIDs {
			l := unitFor(lines, id)
			if l == nil {
				continue
			}
			unit := l.total.Div(l.quantity)
			l.quantity = l.quantity.Sub(one)
			l.total = atLeastZero(l.total.Sub(unit))
			group.Items = addUnit(group.Items, l.item, unit, products)
		}
		groups = append(groups, group)
	}
	return groups
}

// unitFor returns the first line with a whole unit left whose product or
// variation is id.
func unitFor(lines []*line, id int64) *line {
	for _, l := range lines {
		if l.quantity.LessThan(decimal.NewFromInt(1)) {
			continue
		}
		if l.item.ProductID == id || (l.item.VariationID != 0 && l.item.VariationID == id) {
			return l
		}
	}
	return nil
}

func addUnit(items []Item, it *order.Item, unit decimal.Decimal, products map[int64]product.Product) []Item {
	for i := range items {
		if items[i].ItemID == it.ItemID {
			items[i].Quantity = items[i].Quantity.Add(decimal.NewFromInt(1))
			items[i].Total = items[i].Total.Add(unit)
			return items
		}
	}
	return append(items, toItem(it, decimal.NewFromInt(1), unit, products))
}

func toItem(it *order.Item, quantity, total decimal.Decimal, products map[int64]product.Product) Item {
	out := Item{
		ItemID:      it.ItemID,
		ProductID:   it.ProductID,
		VariationID: it.VariationID,
		Name:        it.Name,
		SKU:         it.SKU,
		ImageURL:    imageURL(it, products),
		Quantity:    quantity,
		Price:       it.Price,
		Total:       total,
	}
	for _, a := range it.Attributes {
		out.Attributes = append(out.Attributes, Attribute{Name: a.Name, Value: a.Value})
	}
	return out
}

// imageURL prefers the variation's image and falls back to the parent
// product's.
func imageURL(it *order.Item, products map[int64]product.Product) string {
	if it.VariationID != 0 {
		if p, ok := products[it.VariationID]; ok && p.ImageURL != "" {
			return p.ImageURL
		}
	}
	return products[it.ProductID].ImageURL
}

// ProductIDs returns the distinct product and variation IDs the items
// reference, in first-seen order.
func ProductIDs(items []order.Item) []int64 {
	seen := make(map[int64]bool, len(items))
	var ids []int64
	for _, it := range items {
		for _, id := range []int64{it.ProductID, it.VariationID} {
			if id != 0 && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func atLeastZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
