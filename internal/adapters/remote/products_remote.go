package remote

import (
	"context"
	"net/http"

	productmap "github.com/jsamuelsen11/storesync/internal/adapters/remote/product"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.ProductsRemote = (*ProductsRemote)(nil)

// ProductsRemote looks up catalog entries.
type ProductsRemote struct {
	remote *Remote
}

// NewProductsRemote creates a ProductsRemote on r.
func NewProductsRemote(r *Remote) *ProductsRemote {
	return &ProductsRemote{remote: r}
}

// LoadProducts fetches GET products?include=... An empty ID list returns
// nothing without a request.
func (p *ProductsRemote) LoadProducts(ctx context.Context, siteID int64, productIDs []int64) ([]product.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	req := network.Request{
		SiteID:    siteID,
		Method:    http.MethodGet,
		Namespace: network.NamespaceWC,
		Path:      "products",
		Parameters: map[string]any{
			"include":  productIDs,
			"per_page": len(productIDs),
		},
	}
	return Enqueue(ctx, p.remote, req, func(body []byte) ([]product.Product, error) {
		return productmap.MapProducts(siteID, body)
	})
}
