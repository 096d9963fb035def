package remote

import (
	"context"
	"fmt"
	"net/http"

	labelmap "github.com/jsamuelsen11/storesync/internal/adapters/remote/shippinglabel"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.ShippingLabelRemote = (*ShippingLabelRemote)(nil)

// ShippingLabelRemote talks to the shipping label extension.
type ShippingLabelRemote struct {
	remote *Remote
}

// NewShippingLabelRemote creates a ShippingLabelRemote on r.
func NewShippingLabelRemote(r *Remote) *ShippingLabelRemote {
	return &ShippingLabelRemote{remote: r}
}

// LoadShippingLabels fetches GET label/{orderID}.
func (l *ShippingLabelRemote) LoadShippingLabels(ctx context.Context, siteID, orderID int64) ([]shippinglabel.Label, error) {
	req := network.Request{
		SiteID:    siteID,
		Method:    http.MethodGet,
		Namespace: network.NamespaceConnect,
		Path:      fmt.Sprintf("label/%d", orderID),
	}
	return Enqueue(ctx, l.remote, req, func(body []byte) ([]shippinglabel.Label, error) {
		return labelmap.MapLabels(siteID, orderID, body)
	})
}

// RefundShippingLabel sends POST label/{orderID}/{labelID}/refund.
func (l *ShippingLabelRemote) RefundShippingLabel(ctx context.Context, siteID, orderID, labelID int64) (shippinglabel.Refund, error) {
	req := network.Request{
		SiteID:    siteID,
		Method:    http.MethodPost,
		Namespace: network.NamespaceConnect,
		Path:      fmt.Sprintf("label/%d/%d/refund", orderID, labelID),
	}
	return Enqueue(ctx, l.remote, req, labelmap.MapRefund)
}
