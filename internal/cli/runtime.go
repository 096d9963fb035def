package cli

import (
	"fmt"
	"io"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/storesync/internal/container"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/platform/logging"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Runtime is what a command needs from the dependency graph.
type Runtime struct {
	Orders    ports.OrderDetailsService
	Shipments ports.ShipmentService

	close func() error
}

// Close releases the runtime. In-flight syncs finish first.
func (r *Runtime) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Opener builds a Runtime for the given options.
type Opener func(opts *RootOptions, stderr io.Writer) (*Runtime, error)

func openRuntime(opts *RootOptions, stderr io.Writer) (*Runtime, error) {
	var overrides []config.Option
	if opts.LogLevel != "" {
		overrides = append(overrides, config.WithOverride("log.level", opts.LogLevel))
	}
	cfg, err := config.Load(opts.Profile, overrides...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}

	logger := logging.Discard()
	if opts.Verbose {
		logger = logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	container.Register(injector, cfg, logger, container.Options{})

	orders, err := do.Invoke[ports.OrderDetailsService](injector)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "wiring services", err)
	}
	shipments, err := do.Invoke[ports.ShipmentService](injector)
	if err != nil {
		_ = container.Shutdown(injector)
		return nil, WrapExitError(ExitCommandError, "wiring services", err)
	}

	return &Runtime{
		Orders:    orders,
		Shipments: shipments,
		close: func() error {
			if err := container.Shutdown(injector); err != nil {
				return fmt.Errorf("closing local store: %w", err)
			}
			return nil
		},
	}, nil
}
