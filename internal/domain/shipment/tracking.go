// Package shipment holds the shipment tracking entities synchronized from the
// store's shipment tracking extension.
package shipment

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Tracking is one tracking number attached to an order.
type Tracking struct {
	SiteID           int64
	OrderID          int64
	TrackingID       string
	TrackingNumber   string
	TrackingProvider string
	TrackingURL      string
	DateShipped      time.Time
}

// Provider is a carrier that can be selected when adding a tracking number.
type Provider struct {
	SiteID int64
	Name   string
	URL    string
}

// ProviderGroup is a named set of providers, usually a country.
type ProviderGroup struct {
	SiteID    int64
	Name      string
	Providers []Provider
}

// Provider returns the provider with the given name, if present.
func (g *ProviderGroup) Provider(name string) (Provider, bool) {
	for _, p := range g.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}

// NewTracking is a tracking number to attach to an order. A non-empty
// CustomURL marks a provider outside the catalog.
type NewTracking struct {
	ProviderName   string
	CustomURL      string
	TrackingNumber string
	DateShipped    time.Time
}

// IsCustom reports whether the provider is outside the catalog.
func (n *NewTracking) IsCustom() bool {
	return n.CustomURL != ""
}

// Validate checks that the provider, number and ship date are present.
func (n *NewTracking) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(n.ProviderName) == "" {
		fields["provider_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(n.TrackingNumber) == "" {
		fields["tracking_number"] = domain.MsgRequired
	}
	if n.DateShipped.IsZero() {
		fields["date_shipped"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
