// Package refund maps order refund payloads to domain values.
package refund

import (
	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
)

// RefundDTO matches the wc/v3 order refund schema.
type RefundDTO struct {
	ID              int64         `json:"id"`
	DateCreatedGMT  wire.GMTTime  `json:"date_created_gmt"`
	Amount          wire.Decimal  `json:"amount"`
	Reason          string        `json:"reason"`
	RefundedBy      int64         `json:"refunded_by"`
	RefundedPayment bool          `json:"refunded_payment"`
	LineItems       []LineItemDTO `json:"line_items"`
}

// LineItemDTO matches a refunded line. The original item is referenced by
// the _refunded_item_id meta entry.
type LineItemDTO struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	ProductID   int64         `json:"product_id"`
	VariationID int64         `json:"variation_id"`
	Quantity    wire.Decimal  `json:"quantity"`
	SKU         string        `json:"sku"`
	Price       wire.Decimal  `json:"price"`
	Subtotal    wire.Decimal  `json:"subtotal"`
	Total       wire.Decimal  `json:"total"`
	MetaData    []MetaDataDTO `json:"meta_data"`
}

// MetaDataDTO is a line item meta entry.
type MetaDataDTO struct {
	ID    int64           `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
