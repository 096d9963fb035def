package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

const (
	msgInvalidDate = "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"
	dateLayout     = "2006-01-02"
)

// AddTrackingRequest represents the JSON body for attaching a tracking number
// to an order. A non-empty custom_url marks a provider outside the catalog.
type AddTrackingRequest struct {
	ProviderName   string `json:"provider_name"`
	CustomURL      string `json:"custom_url,omitempty"`
	TrackingNumber string `json:"tracking_number"`
	DateShipped    string `json:"date_shipped"`
}

// Validate checks that required fields are present and the ship date parses.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddTrackingRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ProviderName) == "" {
		fields["provider_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.TrackingNumber) == "" {
		fields["tracking_number"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.DateShipped) == "" {
		fields["date_shipped"] = domain.MsgRequired
	} else if _, err := parseDate(r.DateShipped); err != nil {
		fields["date_shipped"] = msgInvalidDate
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToNewTracking converts a validated request to the domain value.
func (r *AddTrackingRequest) ToNewTracking() *shipment.NewTracking {
	shipped, _ := parseDate(r.DateShipped)
	return &shipment.NewTracking{
		ProviderName:   strings.TrimSpace(r.ProviderName),
		CustomURL:      strings.TrimSpace(r.CustomURL),
		TrackingNumber: strings.TrimSpace(r.TrackingNumber),
		DateShipped:    shipped,
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// SelectProviderRequest represents the JSON body for preselecting a tracking
// provider on a site. A non-empty url marks it as custom.
type SelectProviderRequest struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Validate checks that a provider name is present.
func (r *SelectProviderRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}
