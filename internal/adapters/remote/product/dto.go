// Package product maps catalog payloads to domain values.
package product

import "github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"

// ProductDTO matches the wc/v3 product schema, restricted to what order
// screens show.
type ProductDTO struct {
	ID       int64        `json:"id"`
	ParentID int64        `json:"parent_id"`
	Name     string       `json:"name"`
	SKU      string       `json:"sku"`
	Price    wire.Decimal `json:"price"`
	Images   []ImageDTO   `json:"images"`
}

// ImageDTO is a product image.
type ImageDTO struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}
