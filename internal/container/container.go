// Package container wires the sync stack with samber/do. The daemon and the
// CLI resolve their graph from the same providers.
package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/storesync/internal/adapters/filestore"
	"github.com/jsamuelsen11/storesync/internal/adapters/remote"
	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/storesync/internal/app"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/platform/health"
	"github.com/jsamuelsen11/storesync/internal/platform/httpclient"
	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// BackendName identifies the store backend in traces, metrics and health.
const BackendName = "woocommerce"

// Stores holds every registered store so shutdown can wait for their
// in-flight operations.
type Stores struct {
	Shipment      *stores.ShipmentStore
	Order         *stores.OrderStore
	Refund        *stores.RefundStore
	ShippingLabel *stores.ShippingLabelStore
	Product       *stores.ProductStore
	AppSettings   *stores.AppSettingsStore
}

// Processors returns the stores in registration order.
func (s *Stores) Processors() []dispatch.Processor {
	return []dispatch.Processor{s.Shipment, s.Order, s.Refund, s.ShippingLabel, s.Product, s.AppSettings}
}

// Wait blocks until no store has an operation in flight.
func (s *Stores) Wait() {
	s.Shipment.Wait()
	s.Order.Wait()
	s.Refund.Wait()
	s.ShippingLabel.Wait()
	s.Product.Wait()
}

// Options customizes Register. Zero values select the production wiring.
type Options struct {
	// Network replaces the HTTP transport, for fixture-backed runs.
	Network network.Network

	// Metrics receives the OpenTelemetry HTTP client metrics. May be nil.
	Metrics *telemetry.Metrics
}

// Register provides the full dependency graph on injector. cfg and logger
// must already be provided as values.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, opts Options) {
	do.Provide(injector, func(_ do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (*storage.Manager, error) {
		ctx := context.Background()
		var storeOpts []storage.Option
		switch cfg.Storage.Driver {
		case config.StorageMemory, "":
		case config.StorageSQLite, config.StoragePostgres:
			p, err := sqlstore.Open(ctx, cfg.Storage.Driver, cfg.Storage.SQL.DSN)
			if err != nil {
				return nil, fmt.Errorf("opening %s snapshot store: %w", cfg.Storage.Driver, err)
			}
			storeOpts = append(storeOpts, storage.WithPersister(p))
		default:
			return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
		}
		m, err := storage.New(ctx, logger, storeOpts...)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[*prometheus.Registry](i).MustRegister(storage.NewCollector(m))
		return m, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.FileStore, error) {
		return filestore.New(context.Background(), cfg.Settings)
	})

	do.Provide(injector, func(_ do.Injector) (network.Network, error) {
		if opts.Network != nil {
			return opts.Network, nil
		}
		return httpclient.New(&cfg.Client, BackendName, opts.Metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*remote.Remote, error) {
		return remote.New(do.MustInvoke[network.Network](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*syncstate.Tracker, error) {
		metrics := syncstate.NewMetrics(do.MustInvoke[*prometheus.Registry](i))
		return syncstate.NewTracker(logger, metrics,
			syncstate.WithSerializedScopes(cfg.Stores.SerializeScopes),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*Stores, error) {
		r := do.MustInvoke[*remote.Remote](i)
		st := do.MustInvoke[*storage.Manager](i)
		tracker := do.MustInvoke[*syncstate.Tracker](i)
		return &Stores{
			Shipment:      stores.NewShipmentStore(remote.NewShipmentRemote(r), st, tracker, logger),
			Order:         stores.NewOrderStore(remote.NewOrdersRemote(r), st, tracker, logger),
			Refund:        stores.NewRefundStore(remote.NewRefundsRemote(r), st, tracker, logger),
			ShippingLabel: stores.NewShippingLabelStore(remote.NewShippingLabelRemote(r), st, tracker, logger),
			Product:       stores.NewProductStore(remote.NewProductsRemote(r), st, tracker, logger),
			AppSettings:   stores.NewAppSettingsStore(do.MustInvoke[ports.FileStore](i), logger),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (*dispatch.Dispatcher, error) {
		d := dispatch.New(logger, dispatch.WithStrict(cfg.Dispatch.Strict))
		for _, p := range do.MustInvoke[*Stores](i).Processors() {
			if err := d.RegisterProcessor(p); err != nil {
				return nil, fmt.Errorf("registering stores: %w", err)
			}
		}
		d.Seal()
		logger.Info("dispatcher sealed", slog.Int("kinds", len(d.Kinds())))
		return d, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ShipmentService, error) {
		return app.NewShipmentService(do.MustInvoke[*dispatch.Dispatcher](i), do.MustInvoke[*storage.Manager](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrderDetailsService, error) {
		return app.NewOrderDetailsService(do.MustInvoke[*dispatch.Dispatcher](i), do.MustInvoke[*storage.Manager](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SettingsService, error) {
		return app.NewSettingsService(do.MustInvoke[*dispatch.Dispatcher](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*storage.Manager](i))
		registry.Register(do.MustInvoke[ports.FileStore](i))
		if hc, ok := do.MustInvoke[network.Network](i).(ports.HealthChecker); ok {
			registry.Register(hc)
		}
		return registry, nil
	})
}

// Shutdown waits for in-flight store operations, then closes the local
// store so its last commit is persisted. Call it after the graph has been
// resolved.
func Shutdown(injector do.Injector) error {
	var errs []error
	if s, err := do.Invoke[*Stores](injector); err == nil {
		s.Wait()
	}
	if m, err := do.Invoke[*storage.Manager](injector); err == nil {
		if err := m.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
