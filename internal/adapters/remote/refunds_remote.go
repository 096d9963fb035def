package remote

import (
	"context"
	"fmt"
	"net/http"

	refundmap "github.com/jsamuelsen11/storesync/internal/adapters/remote/refund"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.RefundsRemote = (*RefundsRemote)(nil)

// DefaultRefundsPerPage is the page size used when callers pass zero.
const DefaultRefundsPerPage = 25

// RefundsRemote reads order refunds.
type RefundsRemote struct {
	remote *Remote
}

// NewRefundsRemote creates a RefundsRemote on r.
func NewRefundsRemote(r *Remote) *RefundsRemote {
	return &RefundsRemote{remote: r}
}

// LoadAllRefunds fetches one page of GET orders/{id}/refunds.
func (f *RefundsRemote) LoadAllRefunds(ctx context.Context, siteID, orderID int64, page, perPage int) ([]refund.Refund, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultRefundsPerPage
	}
	return f.load(ctx, siteID, orderID, map[string]any{
		"page":     page,
		"per_page": perPage,
	})
}

// LoadRefunds fetches GET orders/{id}/refunds restricted to refundIDs.
func (f *RefundsRemote) LoadRefunds(ctx context.Context, siteID, orderID int64, refundIDs []int64) ([]refund.Refund, error) {
	return f.load(ctx, siteID, orderID, map[string]any{
		"include":  refundIDs,
		"per_page": max(len(refundIDs), 1),
	})
}

func (f *RefundsRemote) load(ctx context.Context, siteID, orderID int64, params map[string]any) ([]refund.Refund, error) {
	req := network.Request{
		SiteID:     siteID,
		Method:     http.MethodGet,
		Namespace:  network.NamespaceWC,
		Path:       fmt.Sprintf("orders/%d/refunds", orderID),
		Parameters: params,
	}
	return Enqueue(ctx, f.remote, req, func(body []byte) ([]refund.Refund, error) {
		return refundmap.MapRefunds(siteID, orderID, body)
	})
}
