// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
	"github.com/jsamuelsen11/storesync/internal/domain/settings"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

// TrackingResponse represents a single shipment tracking in HTTP responses.
type TrackingResponse struct {
	TrackingID     string `json:"tracking_id"`
	TrackingNumber string `json:"tracking_number"`
	Provider       string `json:"provider"`
	TrackingURL    string `json:"tracking_url,omitempty"`
	DateShipped    string `json:"date_shipped"`
}

// TrackingListResponse represents the trackings of an order.
type TrackingListResponse struct {
	OrderID   int64              `json:"order_id"`
	Trackings []TrackingResponse `json:"trackings"`
	Count     int                `json:"count"`
}

// ToTrackingResponse converts a domain Tracking to an HTTP response DTO.
func ToTrackingResponse(t *shipment.Tracking) TrackingResponse {
	return TrackingResponse{
		TrackingID:     t.TrackingID,
		TrackingNumber: t.TrackingNumber,
		Provider:       t.TrackingProvider,
		TrackingURL:    t.TrackingURL,
		DateShipped:    t.DateShipped.Format(dateLayout),
	}
}

// ToTrackingListResponse converts the trackings of an order to an HTTP list
// response DTO.
func ToTrackingListResponse(orderID int64, trackings []shipment.Tracking) TrackingListResponse {
	items := make([]TrackingResponse, len(trackings))
	for i := range trackings {
		items[i] = ToTrackingResponse(&trackings[i])
	}
	return TrackingListResponse{OrderID: orderID, Trackings: items, Count: len(items)}
}

// ProviderResponse represents a tracking provider.
type ProviderResponse struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ProviderGroupResponse represents a named group of providers.
type ProviderGroupResponse struct {
	Name      string             `json:"name"`
	Providers []ProviderResponse `json:"providers"`
}

// ProviderGroupListResponse represents a site's provider catalog.
type ProviderGroupListResponse struct {
	Groups []ProviderGroupResponse `json:"groups"`
	Count  int                     `json:"count"`
}

// ToProviderGroupListResponse converts a provider catalog to an HTTP response
// DTO.
func ToProviderGroupListResponse(groups []shipment.ProviderGroup) ProviderGroupListResponse {
	out := make([]ProviderGroupResponse, len(groups))
	for i, g := range groups {
		providers := make([]ProviderResponse, len(g.Providers))
		for j, p := range g.Providers {
			providers[j] = ProviderResponse{Name: p.Name, URL: p.URL}
		}
		out[i] = ProviderGroupResponse{Name: g.Name, Providers: providers}
	}
	return ProviderGroupListResponse{Groups: out, Count: len(out)}
}

// SelectedProvidersResponse represents the providers last used on a site.
// Nil fields mean none was chosen.
type SelectedProvidersResponse struct {
	Catalog *ProviderResponse `json:"catalog"`
	Custom  *ProviderResponse `json:"custom"`
}

// ToSelectedProvidersResponse converts the preselected providers of a site to
// an HTTP response DTO.
func ToSelectedProvidersResponse(catalog, custom *settings.PreselectedProvider) SelectedProvidersResponse {
	return SelectedProvidersResponse{
		Catalog: toProviderResponse(catalog),
		Custom:  toProviderResponse(custom),
	}
}

func toProviderResponse(p *settings.PreselectedProvider) *ProviderResponse {
	if p == nil {
		return nil
	}
	return &ProviderResponse{Name: p.ProviderName, URL: p.ProviderURL}
}

// OrderDetailsResponse represents the aggregated order-details view.
type OrderDetailsResponse struct {
	OrderID     int64                     `json:"order_id"`
	Items       []orderdetails.Item       `json:"items"`
	LabelGroups []orderdetails.LabelGroup `json:"label_groups"`
}

// ToOrderDetailsResponse converts aggregated details to an HTTP response DTO.
func ToOrderDetailsResponse(orderID int64, d *orderdetails.Details) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		OrderID:     orderID,
		Items:       d.Items,
		LabelGroups: d.LabelGroups,
	}
	if resp.Items == nil {
		resp.Items = []orderdetails.Item{}
	}
	if resp.LabelGroups == nil {
		resp.LabelGroups = []orderdetails.LabelGroup{}
	}
	return resp
}

// SyncResponse acknowledges a completed sync.
type SyncResponse struct {
	SiteID   int64  `json:"site_id"`
	OrderID  int64  `json:"order_id"`
	SyncedAt string `json:"synced_at"`
}

// NewSyncResponse builds a SyncResponse stamped at t.
func NewSyncResponse(siteID, orderID int64, t time.Time) SyncResponse {
	return SyncResponse{SiteID: siteID, OrderID: orderID, SyncedAt: t.UTC().Format(time.RFC3339)}
}
