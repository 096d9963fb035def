package telemetry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false})

	require.NoError(t, err)
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

// Not parallel: Setup replaces the global providers.
func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "storesync-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	require.NotNil(t, p.Tracer)
	require.NotNil(t, p.Meter)
	require.NotNil(t, p.Metrics)
	assert.Same(t, p.Tracer, otel.GetTracerProvider())
	assert.NotEmpty(t, otel.GetTextMapPropagator().Fields())
}

func TestSetup_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{"unknown exporter", config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}},
		{"otlp without endpoint", config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := telemetry.Setup(context.Background(), tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestInitMeter_OTLPDoesNotDial(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "storesync-test", telemetry.ExporterOTLP, "http://localhost:4318")
	require.NoError(t, err)
	// No collector is running; the flush on shutdown may fail.
	_ = mp.Shutdown(ctx)
}

func TestNewMetrics_RecordsRequests(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "storesync-test")
	require.NoError(t, err)

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(http.MethodGet),
		telemetry.AttrPeerService.String("woocommerce"),
		telemetry.AttrResult.String(telemetry.ResultSuccess),
	)
	m.ClientRequestTotal.Add(ctx, 2, attrs)
	m.ClientRequestDuration.Record(ctx, 0.25, attrs)
	m.ServerRequestTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, telemetry.InstrumentationName, rm.ScopeMetrics[0].Scope.Name)

	names := map[string]metricdata.Aggregation{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names[md.Name] = md.Data
	}
	assert.Contains(t, names, "http.client.request.duration")
	assert.Contains(t, names, "http.server.request.total")

	clientTotal, ok := names["http.client.request.total"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, clientTotal.DataPoints, 1)
	assert.Equal(t, int64(2), clientTotal.DataPoints[0].Value)
}

func TestResultOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, telemetry.ResultSuccess, telemetry.ResultOf(http.StatusOK))
	assert.Equal(t, telemetry.ResultSuccess, telemetry.ResultOf(http.StatusNoContent))
	assert.Equal(t, telemetry.ResultError, telemetry.ResultOf(http.StatusNotFound))
	assert.Equal(t, telemetry.ResultError, telemetry.ResultOf(http.StatusBadGateway))
	assert.Equal(t, telemetry.ResultError, telemetry.ResultOf(0))
}
