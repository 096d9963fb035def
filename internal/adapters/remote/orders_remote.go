package remote

import (
	"context"
	"fmt"
	"net/http"

	ordermap "github.com/jsamuelsen11/storesync/internal/adapters/remote/order"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.OrdersRemote = (*OrdersRemote)(nil)

// OrdersRemote reads and updates single orders.
type OrdersRemote struct {
	remote *Remote
}

// NewOrdersRemote creates an OrdersRemote on r.
func NewOrdersRemote(r *Remote) *OrdersRemote {
	return &OrdersRemote{remote: r}
}

// LoadOrder fetches GET orders/{id}.
func (o *OrdersRemote) LoadOrder(ctx context.Context, siteID, orderID int64) (order.Order, error) {
	req := network.Request{
		SiteID:    siteID,
		Method:    http.MethodGet,
		Namespace: network.NamespaceWC,
		Path:      fmt.Sprintf("orders/%d", orderID),
	}
	return Enqueue(ctx, o.remote, req, func(body []byte) (order.Order, error) {
		return ordermap.MapOrder(siteID, body)
	})
}

// UpdateOrder sends PUT orders/{id} with the named fields. Parameters are
// encoded before anything is sent, so a serialization error means no request
// was made.
func (o *OrdersRemote) UpdateOrder(ctx context.Context, siteID int64, ord *order.Order, fields []order.Field) (order.Order, error) {
	params, err := ordermap.UpdateParams(ord, fields)
	if err != nil {
		return order.Order{}, fmt.Errorf("encoding order %d update: %w", ord.OrderID, err)
	}

	req := network.Request{
		SiteID:     siteID,
		Method:     http.MethodPut,
		Namespace:  network.NamespaceWC,
		Path:       fmt.Sprintf("orders/%d", ord.OrderID),
		Parameters: params,
	}
	return Enqueue(ctx, o.remote, req, func(body []byte) (order.Order, error) {
		return ordermap.MapOrder(siteID, body)
	})
}
