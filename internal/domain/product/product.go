// Package product holds the catalog data the order screens look up.
package product

import "github.com/shopspring/decimal"

// Product is a product or a product variation.
type Product struct {
	SiteID    int64
	ProductID int64
	ParentID  int64
	Name      string
	SKU       string
	ImageURL  string
	Price     decimal.Decimal
}
