// Package order holds the order aggregate as returned by the store API.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle status reported by the store.
type Status string

// Known order statuses.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusOnHold     Status = "on-hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
	StatusFailed     Status = "failed"
)

// Order is an order and its line items. RefundIDs lists every refund the
// store holds against it, oldest first.
type Order struct {
	SiteID          int64
	OrderID         int64
	Number          string
	Status          Status
	Currency        string
	CustomerNote    string
	DateCreated     time.Time
	DateModified    time.Time
	Total           decimal.Decimal
	Items           []Item
	RefundIDs       []int64
	BillingAddress  *Address
	ShippingAddress *Address
}

// Item is a single order line.
type Item struct {
	ItemID      int64
	ProductID   int64
	VariationID int64
	Name        string
	SKU         string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
	Attributes  []ItemAttribute
}

// ItemAttribute is a variation attribute shown next to an item.
type ItemAttribute struct {
	MetaID int64
	Name   string
	Value  string
}

// Field names an order field that can be updated remotely.
type Field string

// Updatable order fields.
const (
	FieldCustomerNote    Field = "customer_note"
	FieldStatus          Field = "status"
	FieldBillingAddress  Field = "billing"
	FieldShippingAddress Field = "shipping"
)
