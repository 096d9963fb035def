// Package refund holds order refunds.
package refund

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund is a refund issued against an order.
type Refund struct {
	SiteID           int64
	OrderID          int64
	RefundID         int64
	DateCreated      time.Time
	Amount           decimal.Decimal
	Reason           string
	RefundedByUserID int64
	IsAutomated      bool
	Items            []Item
}

// Item is a refunded line. Quantity and Total are negative, as the store
// reports them.
type Item struct {
	ItemID         int64
	RefundedItemID int64
	ProductID      int64
	VariationID    int64
	Name           string
	SKU            string
	Quantity       decimal.Decimal
	Price          decimal.Decimal
	Subtotal       decimal.Decimal
	Total          decimal.Decimal
}
