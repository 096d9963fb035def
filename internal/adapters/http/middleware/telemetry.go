package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
)

const unmatchedRoute = "unmatched"

// Telemetry continues the caller's W3C trace in a server span and records
// the server request metrics. Spans are named after the matched route so
// per-order paths do not explode span names. A nil metrics skips recording.
func Telemetry(metrics *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.GetTracerProvider().Tracer(telemetry.InstrumentationName).Start(ctx,
				"HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					telemetry.AttrURLPath.String(r.URL.Path),
				),
			)
			defer span.End()

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			route := routePattern(r)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			} else {
				route = unmatchedRoute
			}
			if site := chi.URLParam(r, "siteID"); site != "" {
				span.SetAttributes(telemetry.AttrSiteID.String(site))
			}
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, status, time.Since(start))
		})
	}
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(telemetry.ResultOf(status)),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
