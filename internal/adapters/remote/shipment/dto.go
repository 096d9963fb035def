// Package shipment maps the shipment tracking extension's payloads to
// domain values.
package shipment

import "github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"

// TrackingDTO matches a tracking record of the shipment tracking extension.
// Custom providers leave tracking_provider empty and fill the custom_* pair.
type TrackingDTO struct {
	TrackingID             string   `json:"tracking_id"`
	TrackingProvider       string   `json:"tracking_provider"`
	CustomTrackingProvider string   `json:"custom_tracking_provider"`
	CustomTrackingLink     string   `json:"custom_tracking_link"`
	TrackingNumber         string   `json:"tracking_number"`
	TrackingLink           string   `json:"tracking_link"`
	DateShipped            wire.Day `json:"date_shipped"`
}
