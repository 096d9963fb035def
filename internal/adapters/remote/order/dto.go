// Package order maps WooCommerce order payloads to domain values and encodes
// order updates.
package order

import (
	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
)

// OrderDTO matches the wc/v3 order schema, restricted to the fields the
// order screens use.
type OrderDTO struct {
	ID              int64          `json:"id"`
	Number          string         `json:"number"`
	Status          string         `json:"status"`
	Currency        string         `json:"currency"`
	CustomerNote    string         `json:"customer_note"`
	DateCreatedGMT  wire.GMTTime   `json:"date_created_gmt"`
	DateModifiedGMT wire.GMTTime   `json:"date_modified_gmt"`
	Total           wire.Decimal   `json:"total"`
	Billing         *AddressDTO    `json:"billing"`
	Shipping        *AddressDTO    `json:"shipping"`
	LineItems       []LineItemDTO  `json:"line_items"`
	Refunds         []RefundRefDTO `json:"refunds"`
}

// RefundRefDTO is the refund summary embedded in an order.
type RefundRefDTO struct {
	ID     int64        `json:"id"`
	Reason string       `json:"reason"`
	Total  wire.Decimal `json:"total"`
}

// LineItemDTO matches an order line item.
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

// MetaDataDTO is a line item meta entry. Values are arbitrary JSON; only
// string values are shown as attributes.
type MetaDataDTO struct {
	ID           int64           `json:"id"`
	Key          string          `json:"key"`
	Value        json.RawMessage `json:"value"`
	DisplayKey   string          `json:"display_key"`
	DisplayValue json.RawMessage `json:"display_value"`
}

// AddressDTO matches the billing and shipping address objects. Shipping
// addresses carry no email; phone is optional on both.
type AddressDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
