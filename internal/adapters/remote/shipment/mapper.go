package shipment

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote/wire"
	entity "github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

const (
	entityTracking      = "shipment_tracking"
	entityProviderGroup = "shipment_provider_group"
)

// MapTracking decodes a single tracking record, as echoed by add and delete.
func MapTracking(siteID, orderID int64, body []byte) (entity.Tracking, error) {
	var dto TrackingDTO
	if err := wire.Decode(entityTracking, body, &dto); err != nil {
		return entity.Tracking{}, err
	}
	return toTracking(siteID, orderID, &dto, "")
}

// MapTrackings decodes an order's tracking list, keeping server order.
func MapTrackings(siteID, orderID int64, body []byte) ([]entity.Tracking, error) {
	var dtos []TrackingDTO
	if err := wire.Decode(entityTracking, body, &dtos); err != nil {
		return nil, err
	}

	out := make([]entity.Tracking, 0, len(dtos))
	for i := range dtos {
		t, err := toTracking(siteID, orderID, &dtos[i], fmt.Sprintf("[%d].", i))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func toTracking(siteID, orderID int64, dto *TrackingDTO, prefix string) (entity.Tracking, error) {
	if dto.TrackingID == "" {
		return entity.Tracking{}, wire.Missing(entityTracking, prefix+"tracking_id")
	}
	if dto.TrackingNumber == "" {
		return entity.Tracking{}, wire.Missing(entityTracking, prefix+"tracking_number")
	}

	provider := dto.TrackingProvider
	if provider == "" {
		provider = dto.CustomTrackingProvider
	}
	link := dto.TrackingLink
	if link == "" {
		link = dto.CustomTrackingLink
	}

	return entity.Tracking{
		SiteID:           siteID,
		OrderID:          orderID,
		TrackingID:       dto.TrackingID,
		TrackingNumber:   dto.TrackingNumber,
		TrackingProvider: provider,
		TrackingURL:      link,
		DateShipped:      dto.DateShipped.Time,
	}, nil
}

// MapProviderGroups decodes the provider catalog: an object of group name to
// an object of provider name to tracking URL template. Groups and providers
// keep the order the server sent them in.
func MapProviderGroups(siteID int64, body []byte) ([]entity.ProviderGroup, error) {
	payload, err := wire.Unwrap(entityProviderGroup, body)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := expectDelim(dec, '{', ""); err != nil {
		return nil, err
	}

	var groups []entity.ProviderGroup
	for dec.More() {
		name, err := objectKey(dec, "")
		if err != nil {
			return nil, err
		}
		providers, err := decodeProviders(dec, siteID, name)
		if err != nil {
			return nil, err
		}
		groups = append(groups, entity.ProviderGroup{SiteID: siteID, Name: name, Providers: providers})
	}
	if err := expectDelim(dec, '}', ""); err != nil {
		return nil, err
	}
	return groups, nil
}

func decodeProviders(dec *json.Decoder, siteID int64, group string) ([]entity.Provider, error) {
	if err := expectDelim(dec, '{', group); err != nil {
		return nil, err
	}

	var providers []entity.Provider
	for dec.More() {
		name, err := objectKey(dec, group)
		if err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, wire.Invalid(entityProviderGroup, group+"."+name, err)
		}
		url, ok := tok.(string)
		if !ok {
			return nil, wire.Invalid(entityProviderGroup, group+"."+name, fmt.Errorf("expected a URL string, got %v", tok))
		}
		providers = append(providers, entity.Provider{SiteID: siteID, Name: name, URL: url})
	}
	if err := expectDelim(dec, '}', group); err != nil {
		return nil, err
	}
	return providers, nil
}

func objectKey(dec *json.Decoder, field string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", wire.Invalid(entityProviderGroup, field, err)
	}
	key, ok := tok.(string)
	if !ok || strings.TrimSpace(key) == "" {
		return "", wire.Invalid(entityProviderGroup, field, fmt.Errorf("unexpected key %v", tok))
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, field string) error {
	tok, err := dec.Token()
	if err != nil {
		return wire.Invalid(entityProviderGroup, field, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return wire.Invalid(entityProviderGroup, field, fmt.Errorf("expected %q, got %v", want, tok))
	}
	return nil
}

// TrackingParams builds the body for adding a tracking number with a known
// provider.
func TrackingParams(provider, number string, shipped time.Time) map[string]any {
	return map[string]any{
		"tracking_provider": provider,
		"tracking_number":   number,
		"date_shipped":      shipped.UTC().Format(wire.DayLayout),
	}
}

// CustomTrackingParams builds the body for adding a tracking number with a
// provider the catalog does not list.
func CustomTrackingParams(provider, link, number string, shipped time.Time) map[string]any {
	return map[string]any{
		"custom_tracking_provider": provider,
		"custom_tracking_link":     link,
		"tracking_number":          number,
		"date_shipped":             shipped.UTC().Format(wire.DayLayout),
	}
}
