// Package main is the entry point for the sync daemon. It wires all
// dependencies using samber/do v2, serves the HTTP API, and handles graceful
// shutdown on SIGINT/SIGTERM: in-flight syncs finish and the local store is
// closed after the server drains.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/storesync/internal/adapters/http"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storesync/internal/container"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/platform/logging"
	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		return fmt.Errorf("%s is required (e.g. local, dev, prod)", config.ProfileEnv)
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	container.Register(injector, cfg, logger, container.Options{Metrics: otel.Metrics})
	registerHTTP(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return errors.Join(fmt.Errorf("server failed: %w", err), container.Shutdown(injector))
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let in-flight syncs commit, then close the local store.
	if err := container.Shutdown(injector); err != nil {
		logger.Error("storage shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.OrderHandler, error) {
		return handlers.NewOrderHandler(do.MustInvoke[ports.OrderDetailsService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ShipmentHandler, error) {
		return handlers.NewShipmentHandler(do.MustInvoke[ports.ShipmentService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SettingsHandler, error) {
		return handlers.NewSettingsHandler(do.MustInvoke[ports.SettingsService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, container.BackendName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		reg := do.MustInvoke[*prometheus.Registry](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Order:    do.MustInvoke[*handlers.OrderHandler](i),
			Shipment: do.MustInvoke[*handlers.ShipmentHandler](i),
			Settings: do.MustInvoke[*handlers.SettingsHandler](i),
			Health:   do.MustInvoke[*handlers.HealthHandler](i),
			Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		}, middleware.Standard(logger, metrics, cfg.Server.WriteTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
