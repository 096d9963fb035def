package stores

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// KindRetrieveProducts is the product lookup action kind.
const KindRetrieveProducts dispatch.Kind = "product.retrieve"

// RetrieveProducts fetches the named products and upserts them.
type RetrieveProducts struct {
	SiteID       int64
	ProductIDs   []int64
	OnCompletion func([]product.Product, error)
}

func (RetrieveProducts) Kind() dispatch.Kind { return KindRetrieveProducts }

// ProductStore handles product lookups.
type ProductStore struct {
	base
	remote ports.ProductsRemote
}

// NewProductStore wires a ProductStore.
func NewProductStore(remote ports.ProductsRemote, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger) *ProductStore {
	return &ProductStore{base: newBase("product", st, tracker, logger), remote: remote}
}

// SupportedActions implements dispatch.Processor.
func (s *ProductStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{KindRetrieveProducts}
}

// OnAction implements dispatch.Processor.
func (s *ProductStore) OnAction(ctx context.Context, action dispatch.Action) {
	a, ok := action.(RetrieveProducts)
	if !ok {
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
		return
	}
	run(&s.base, ctx, "retrieve_products", siteScope(a.SiteID),
		func(ctx context.Context) ([]product.Product, error) {
			return s.remote.LoadProducts(ctx, a.SiteID, a.ProductIDs)
		},
		func(tx *storage.Tx, products []product.Product) error {
			s.logStats(ctx, storage.TableProducts, storage.Upsert(tx.Products(), products, storage.ProductKey))
			return nil
		},
		a.OnCompletion,
	)
}
