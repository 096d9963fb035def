package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	shipmentmap "github.com/jsamuelsen11/storesync/internal/adapters/remote/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.ShipmentRemote = (*ShipmentRemote)(nil)

// ShipmentRemote talks to the shipment tracking extension.
type ShipmentRemote struct {
	remote *Remote
}

// NewShipmentRemote creates a ShipmentRemote on r.
func NewShipmentRemote(r *Remote) *ShipmentRemote {
	return &ShipmentRemote{remote: r}
}

// LoadShipmentTrackings fetches GET orders/{id}/trackings.
func (s *ShipmentRemote) LoadShipmentTrackings(ctx context.Context, siteID, orderID int64) ([]shipment.Tracking, error) {
	req := trackingRequest(siteID, http.MethodGet, fmt.Sprintf("orders/%d/trackings", orderID), nil)
	return Enqueue(ctx, s.remote, req, func(body []byte) ([]shipment.Tracking, error) {
		return shipmentmap.MapTrackings(siteID, orderID, body)
	})
}

// LoadShipmentTrackingProviderGroups fetches GET orders/{id}/trackings/providers.
func (s *ShipmentRemote) LoadShipmentTrackingProviderGroups(ctx context.Context, siteID, orderID int64) ([]shipment.ProviderGroup, error) {
	req := trackingRequest(siteID, http.MethodGet, fmt.Sprintf("orders/%d/trackings/providers", orderID), nil)
	return Enqueue(ctx, s.remote, req, func(body []byte) ([]shipment.ProviderGroup, error) {
		return shipmentmap.MapProviderGroups(siteID, body)
	})
}

// AddShipmentTracking sends POST orders/{id}/trackings with a catalog provider.
func (s *ShipmentRemote) AddShipmentTracking(
	ctx context.Context, siteID, orderID int64, provider, number string, shipped time.Time,
) (shipment.Tracking, error) {
	params := shipmentmap.TrackingParams(provider, number, shipped)
	return s.add(ctx, siteID, orderID, params)
}

// AddCustomShipmentTracking sends POST orders/{id}/trackings with a custom
// provider name and link.
func (s *ShipmentRemote) AddCustomShipmentTracking(
	ctx context.Context, siteID, orderID int64, provider, link, number string, shipped time.Time,
) (shipment.Tracking, error) {
	params := shipmentmap.CustomTrackingParams(provider, link, number, shipped)
	return s.add(ctx, siteID, orderID, params)
}

// DeleteShipmentTracking sends DELETE orders/{id}/trackings/{trackingID}.
func (s *ShipmentRemote) DeleteShipmentTracking(ctx context.Context, siteID, orderID int64, trackingID string) (shipment.Tracking, error) {
	path := fmt.Sprintf("orders/%d/trackings/%s", orderID, trackingID)
	req := trackingRequest(siteID, http.MethodDelete, path, nil)
	return Enqueue(ctx, s.remote, req, func(body []byte) (shipment.Tracking, error) {
		return shipmentmap.MapTracking(siteID, orderID, body)
	})
}

func (s *ShipmentRemote) add(ctx context.Context, siteID, orderID int64, params map[string]any) (shipment.Tracking, error) {
	req := trackingRequest(siteID, http.MethodPost, fmt.Sprintf("orders/%d/trackings", orderID), params)
	return Enqueue(ctx, s.remote, req, func(body []byte) (shipment.Tracking, error) {
		return shipmentmap.MapTracking(siteID, orderID, body)
	})
}

func trackingRequest(siteID int64, method, path string, params map[string]any) network.Request {
	return network.Request{
		SiteID:     siteID,
		Method:     method,
		Namespace:  network.NamespaceShipmentTracking,
		Path:       path,
		Parameters: params,
	}
}
