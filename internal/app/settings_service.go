package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/settings"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores"
)

// Compile-time check that SettingsService implements ports.SettingsService.
var _ ports.SettingsService = (*SettingsService)(nil)

// SettingsService implements ports.SettingsService on top of the app
// settings store.
type SettingsService struct {
	dispatcher ports.ActionDispatcher
	logger     *slog.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(d ports.ActionDispatcher, logger *slog.Logger) *SettingsService {
	return &SettingsService{dispatcher: d, logger: logger}
}

// SelectedProviders returns the catalog and custom providers remembered for
// a site.
func (s *SettingsService) SelectedProviders(
	ctx context.Context, siteID int64,
) (catalog, custom *settings.PreselectedProvider, err error) {
	catalog, err = sendResult(ctx, s.dispatcher, func(done func(*settings.PreselectedProvider, error)) dispatch.Action {
		return stores.LoadTrackingProvider{SiteID: siteID, OnCompletion: done}
	})
	if err != nil {
		return nil, nil, s.failed(ctx, "SelectedProviders", err)
	}
	custom, err = sendResult(ctx, s.dispatcher, func(done func(*settings.PreselectedProvider, error)) dispatch.Action {
		return stores.LoadCustomTrackingProvider{SiteID: siteID, OnCompletion: done}
	})
	if err != nil {
		return nil, nil, s.failed(ctx, "SelectedProviders", err)
	}
	return catalog, custom, nil
}

// SelectProvider remembers a provider for a site.
func (s *SettingsService) SelectProvider(ctx context.Context, siteID int64, name, url string) error {
	if name == "" {
		return &domain.ValidationError{Fields: map[string]string{"provider_name": domain.MsgRequired}}
	}
	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		if url != "" {
			return stores.AddCustomTrackingProvider{SiteID: siteID, ProviderName: name, ProviderURL: url, OnCompletion: done}
		}
		return stores.AddTrackingProvider{SiteID: siteID, ProviderName: name, OnCompletion: done}
	})
	return s.failed(ctx, "SelectProvider", err)
}

// MarkInstalled records the installation date unless an earlier one exists.
func (s *SettingsService) MarkInstalled(ctx context.Context, at time.Time) (bool, error) {
	changed, err := sendResult(ctx, s.dispatcher, func(done func(bool, error)) dispatch.Action {
		return stores.SetInstallationDateIfNecessary{Date: at, OnCompletion: done}
	})
	return changed, s.failed(ctx, "MarkInstalled", err)
}

// FeedbackVisible reports whether a feedback prompt should be shown now.
func (s *SettingsService) FeedbackVisible(ctx context.Context, t settings.FeedbackType) (bool, error) {
	visible, err := sendResult(ctx, s.dispatcher, func(done func(bool, error)) dispatch.Action {
		return stores.LoadFeedbackVisibility{Type: t, OnCompletion: done}
	})
	return visible, s.failed(ctx, "FeedbackVisible", err)
}

// UpdateFeedback records what the user did with a prompt.
func (s *SettingsService) UpdateFeedback(ctx context.Context, t settings.FeedbackType, status settings.FeedbackStatus) error {
	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.UpdateFeedbackStatus{Type: t, Status: status, OnCompletion: done}
	})
	return s.failed(ctx, "UpdateFeedback", err)
}

// CardReaders returns the known card readers.
func (s *SettingsService) CardReaders(ctx context.Context) ([]string, error) {
	readers, err := sendResult(ctx, s.dispatcher, func(done func([]string, error)) dispatch.Action {
		return stores.LoadCardReaders{OnCompletion: done}
	})
	return readers, s.failed(ctx, "CardReaders", err)
}

// RememberCardReader adds a card reader to the known list.
func (s *SettingsService) RememberCardReader(ctx context.Context, readerID string) error {
	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.RememberCardReader{ReaderID: readerID, OnCompletion: done}
	})
	return s.failed(ctx, "RememberCardReader", err)
}

// ForgetCardReader removes a card reader from the known list.
func (s *SettingsService) ForgetCardReader(ctx context.Context, readerID string) error {
	err := send(ctx, s.dispatcher, func(done func(error)) dispatch.Action {
		return stores.ForgetCardReader{ReaderID: readerID, OnCompletion: done}
	})
	return s.failed(ctx, "ForgetCardReader", err)
}

// failed logs err, if any, and returns it unchanged.
func (s *SettingsService) failed(ctx context.Context, operation string, err error) error {
	if err != nil {
		s.logger.ErrorContext(ctx, "settings operation failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
	return err
}
