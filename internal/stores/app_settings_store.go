package stores

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/storesync/internal/adapters/filestore"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/settings"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Settings file names.
const (
	GeneralSettingsFile         = "general-settings.json"
	ShipmentProvidersFile       = "shipment-providers.json"
	CustomShipmentProvidersFile = "custom-shipment-providers.json"
)

// App settings action kinds.
const (
	KindSetInstallationDateIfNecessary dispatch.Kind = "app_settings.set_installation_date"
	KindUpdateFeedbackStatus           dispatch.Kind = "app_settings.update_feedback_status"
	KindLoadFeedbackVisibility         dispatch.Kind = "app_settings.load_feedback_visibility"
	KindAddTrackingProvider            dispatch.Kind = "app_settings.add_tracking_provider"
	KindLoadTrackingProvider           dispatch.Kind = "app_settings.load_tracking_provider"
	KindAddCustomTrackingProvider      dispatch.Kind = "app_settings.add_custom_tracking_provider"
	KindLoadCustomTrackingProvider     dispatch.Kind = "app_settings.load_custom_tracking_provider"
	KindResetStoredProviders           dispatch.Kind = "app_settings.reset_stored_providers"
	KindRememberCardReader             dispatch.Kind = "app_settings.remember_card_reader"
	KindForgetCardReader               dispatch.Kind = "app_settings.forget_card_reader"
	KindLoadCardReaders                dispatch.Kind = "app_settings.load_card_readers"
)

// SetInstallationDateIfNecessary records Date as the installation date
// unless an earlier one is already stored. The completion reports whether
// the file changed.
type SetInstallationDateIfNecessary struct {
	Date         time.Time
	OnCompletion func(changed bool, err error)
}

func (SetInstallationDateIfNecessary) Kind() dispatch.Kind { return KindSetInstallationDateIfNecessary }

// UpdateFeedbackStatus records what the user did with a feedback prompt.
type UpdateFeedbackStatus struct {
	Type         settings.FeedbackType
	Status       settings.FeedbackStatus
	OnCompletion func(error)
}

func (UpdateFeedbackStatus) Kind() dispatch.Kind { return KindUpdateFeedbackStatus }

// LoadFeedbackVisibility reports whether a feedback prompt should show now.
type LoadFeedbackVisibility struct {
	Type         settings.FeedbackType
	OnCompletion func(bool, error)
}

func (LoadFeedbackVisibility) Kind() dispatch.Kind { return KindLoadFeedbackVisibility }

// AddTrackingProvider remembers the catalog provider last used on a site.
type AddTrackingProvider struct {
	SiteID       int64
	ProviderName string
	OnCompletion func(error)
}

func (AddTrackingProvider) Kind() dispatch.Kind { return KindAddTrackingProvider }

// LoadTrackingProvider returns the remembered catalog provider, or nil.
type LoadTrackingProvider struct {
	SiteID       int64
	OnCompletion func(*settings.PreselectedProvider, error)
}

func (LoadTrackingProvider) Kind() dispatch.Kind { return KindLoadTrackingProvider }

// AddCustomTrackingProvider remembers the custom provider last used on a site.
type AddCustomTrackingProvider struct {
	SiteID       int64
	ProviderName string
	ProviderURL  string
	OnCompletion func(error)
}

func (AddCustomTrackingProvider) Kind() dispatch.Kind { return KindAddCustomTrackingProvider }

// LoadCustomTrackingProvider returns the remembered custom provider, or nil.
type LoadCustomTrackingProvider struct {
	SiteID       int64
	OnCompletion func(*settings.PreselectedProvider, error)
}

func (LoadCustomTrackingProvider) Kind() dispatch.Kind { return KindLoadCustomTrackingProvider }

// ResetStoredProviders forgets every remembered provider.
type ResetStoredProviders struct {
	OnCompletion func(error)
}

func (ResetStoredProviders) Kind() dispatch.Kind { return KindResetStoredProviders }

// RememberCardReader adds a card reader to the known list.
type RememberCardReader struct {
	ReaderID     string
	OnCompletion func(error)
}

func (RememberCardReader) Kind() dispatch.Kind { return KindRememberCardReader }

// ForgetCardReader removes a card reader from the known list.
type ForgetCardReader struct {
	ReaderID     string
	OnCompletion func(error)
}

func (ForgetCardReader) Kind() dispatch.Kind { return KindForgetCardReader }

// LoadCardReaders returns the known card readers.
type LoadCardReaders struct {
	OnCompletion func([]string, error)
}

func (LoadCardReaders) Kind() dispatch.Kind { return KindLoadCardReaders }

// AppSettingsStore keeps app settings in flat files. A missing file reads
// as the default value; a corrupt one fails with domain.ErrDecode.
// Read-modify-write cycles are serialized.
type AppSettingsStore struct {
	files  ports.FileStore
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewAppSettingsStore wires an AppSettingsStore.
func NewAppSettingsStore(files ports.FileStore, logger *slog.Logger) *AppSettingsStore {
	return &AppSettingsStore{
		files:  files,
		logger: logger.With(slog.String("store", "app_settings")),
		now:    time.Now,
	}
}

// SupportedActions implements dispatch.Processor.
func (s *AppSettingsStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{
		KindSetInstallationDateIfNecessary,
		KindUpdateFeedbackStatus,
		KindLoadFeedbackVisibility,
		KindAddTrackingProvider,
		KindLoadTrackingProvider,
		KindAddCustomTrackingProvider,
		KindLoadCustomTrackingProvider,
		KindResetStoredProviders,
		KindRememberCardReader,
		KindForgetCardReader,
		KindLoadCardReaders,
	}
}

// OnAction implements dispatch.Processor. Settings actions complete before
// OnAction returns, after the store lock is released.
func (s *AppSettingsStore) OnAction(ctx context.Context, action dispatch.Action) {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	finish := s.apply(ctx, action)
	s.mu.Unlock()

	finish()
}

// apply runs action against the settings files and returns its completion.
func (s *AppSettingsStore) apply(ctx context.Context, action dispatch.Action) func() {
	switch a := action.(type) {
	case SetInstallationDateIfNecessary:
		changed, err := s.setInstallationDate(ctx, a.Date)
		return func() { complete(a.OnCompletion, changed, s.logged(ctx, action, err)) }
	case UpdateFeedbackStatus:
		err := s.updateGeneral(ctx, func(g settings.General) (settings.General, bool) {
			return g.WithFeedback(a.Type, a.Status, s.now()), true
		})
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case LoadFeedbackVisibility:
		g, err := filestore.ReadJSON[settings.General](ctx, s.files, GeneralSettingsFile)
		return func() {
			complete(a.OnCompletion, err == nil && g.FeedbackVisible(a.Type, s.now()), s.logged(ctx, action, err))
		}
	case AddTrackingProvider:
		err := s.addProvider(ctx, ShipmentProvidersFile, settings.PreselectedProvider{
			SiteID: a.SiteID, ProviderName: a.ProviderName,
		})
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case LoadTrackingProvider:
		p, err := s.loadProvider(ctx, ShipmentProvidersFile, a.SiteID)
		return func() { complete(a.OnCompletion, p, s.logged(ctx, action, err)) }
	case AddCustomTrackingProvider:
		err := s.addProvider(ctx, CustomShipmentProvidersFile, settings.PreselectedProvider{
			SiteID: a.SiteID, ProviderName: a.ProviderName, ProviderURL: a.ProviderURL,
		})
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case LoadCustomTrackingProvider:
		p, err := s.loadProvider(ctx, CustomShipmentProvidersFile, a.SiteID)
		return func() { complete(a.OnCompletion, p, s.logged(ctx, action, err)) }
	case ResetStoredProviders:
		err := errors.Join(
			s.files.Delete(ctx, ShipmentProvidersFile),
			s.files.Delete(ctx, CustomShipmentProvidersFile),
		)
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case RememberCardReader:
		err := s.updateGeneral(ctx, func(g settings.General) (settings.General, bool) {
			if slices.Contains(g.KnownCardReaders, a.ReaderID) {
				return g, false
			}
			g.KnownCardReaders = append(slices.Clone(g.KnownCardReaders), a.ReaderID)
			return g, true
		})
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case ForgetCardReader:
		err := s.updateGeneral(ctx, func(g settings.General) (settings.General, bool) {
			i := slices.Index(g.KnownCardReaders, a.ReaderID)
			if i < 0 {
				return g, false
			}
			g.KnownCardReaders = slices.Delete(slices.Clone(g.KnownCardReaders), i, i+1)
			return g, true
		})
		return func() { completeErr(a.OnCompletion, s.logged(ctx, action, err)) }
	case LoadCardReaders:
		g, err := filestore.ReadJSON[settings.General](ctx, s.files, GeneralSettingsFile)
		return func() { complete(a.OnCompletion, g.KnownCardReaders, s.logged(ctx, action, err)) }
	default:
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
		return func() {}
	}
}

func (s *AppSettingsStore) setInstallationDate(ctx context.Context, date time.Time) (bool, error) {
	changed := false
	err := s.updateGeneral(ctx, func(g settings.General) (settings.General, bool) {
		if g.InstallationDate != nil && !date.Before(*g.InstallationDate) {
			return g, false
		}
		d := date.UTC()
		g.InstallationDate = &d
		changed = true
		return g, true
	})
	return changed, err
}

// updateGeneral reads, modifies and writes the general settings file. fn
// reports whether anything changed; unchanged files are not rewritten.
func (s *AppSettingsStore) updateGeneral(ctx context.Context, fn func(settings.General) (settings.General, bool)) error {
	g, err := filestore.ReadJSON[settings.General](ctx, s.files, GeneralSettingsFile)
	if err != nil {
		return err
	}
	next, changed := fn(g)
	if !changed {
		return nil
	}
	return filestore.WriteJSON(ctx, s.files, GeneralSettingsFile, next)
}

func (s *AppSettingsStore) addProvider(ctx context.Context, file string, p settings.PreselectedProvider) error {
	providers, err := filestore.ReadJSON[settings.Providers](ctx, s.files, file)
	if err != nil {
		return err
	}
	return filestore.WriteJSON(ctx, s.files, file, providers.With(p))
}

func (s *AppSettingsStore) loadProvider(ctx context.Context, file string, siteID int64) (*settings.PreselectedProvider, error) {
	providers, err := filestore.ReadJSON[settings.Providers](ctx, s.files, file)
	if err != nil {
		return nil, err
	}
	p, ok := providers.ForSite(siteID)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *AppSettingsStore) logged(ctx context.Context, action dispatch.Action, err error) error {
	if err != nil {
		s.logger.ErrorContext(ctx, "settings action failed",
			slog.String("kind", string(action.Kind())),
			slog.Any("error", err),
		)
	}
	return err
}

func completeErr(done func(error), err error) {
	if done != nil {
		done(err)
	}
}
