// Package telemetry sets up OpenTelemetry tracing and metrics for the sync
// daemon, exporting to stdout in development or OTLP/HTTP in production.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics.ClientRequestTotal.Add(ctx, 1, ...)
//
// When telemetry is disabled Setup returns empty Providers whose Metrics is
// nil; every recorder in this repo treats nil Metrics as a no-op.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

// InstrumentationName scopes every tracer and meter in this module.
const InstrumentationName = "github.com/jsamuelsen11/storesync"

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metrics.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrURLPath     = attribute.Key("url.path")
	AttrPeerService = attribute.Key("peer.service")
	AttrSiteID      = attribute.Key("storesync.site_id")
	AttrResult      = attribute.Key("result")
)

// Result values for AttrResult.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
)

// ResultOf classifies an HTTP status for AttrResult.
func ResultOf(status int) string {
	if status == 0 || status >= http.StatusBadRequest {
		return ResultError
	}
	return ResultSuccess
}

// Metrics holds the request instruments for both directions: the sync API
// (server) and the store backend (client).
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
}

// Providers owns the SDK providers created by Setup. All fields are nil when
// telemetry is disabled.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers per cfg.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	tp, err := InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p := &Providers{Tracer: tp}

	if p.Meter, err = InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("init meter: %w", err), p.Shutdown(ctx))
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(fmt.Errorf("creating metrics: %w", err), p.Shutdown(ctx))
	}
	return p, nil
}

// Shutdown flushes and stops whatever providers exist.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer creates and registers a global TracerProvider with W3C trace
// context and baggage propagation. The caller shuts it down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var spanExporter sdktrace.SpanExporter
	if exporter == ExporterOTLP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spanExporter, err = otlptracehttp.New(ctx, opts...)
	} else {
		spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter creates and registers a global MeterProvider with a periodic
// reader. The caller shuts it down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var metricExporter sdkmetric.Exporter
	if exporter == ExporterOTLP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metricExporter, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		metricExporter, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics creates the request instruments on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(InstrumentationName,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)),
	)

	var (
		m    Metrics
		errs []error
	)
	histogram := func(dst *metric.Float64Histogram, name, desc string) {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		*dst = h
	}
	counter := func(dst *metric.Int64Counter, name, desc string) {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit("{request}"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		*dst = c
	}

	histogram(&m.ServerRequestDuration, "http.server.request.duration", "Duration of sync API requests")
	counter(&m.ServerRequestTotal, "http.server.request.total", "Sync API requests served")
	histogram(&m.ClientRequestDuration, "http.client.request.duration", "Duration of store backend requests")
	counter(&m.ClientRequestTotal, "http.client.request.total", "Store backend requests sent")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// prepare validates the exporter choice and builds the service resource.
func prepare(serviceName, exporter, endpoint string) (*resource.Resource, error) {
	switch exporter {
	case ExporterStdout:
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// hostPort reduces "http://otel-collector:4318" to "otel-collector:4318".
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && u.Scheme == "https"
}
