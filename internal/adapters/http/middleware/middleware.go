// Package middleware holds the inbound request pipeline of the sync API.
// Standard returns it outermost first:
//
//	Recovery → RequestID → CorrelationID → Telemetry → AccessLog → Timeout
//
// SiteScope runs inside the /sites/{siteID} subrouter.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/storesync/internal/platform/telemetry"
)

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// Standard returns the daemon's pipeline. A zero timeout disables the
// request deadline.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []Middleware {
	return []Middleware{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		Telemetry(metrics),
		AccessLog(logger),
		Timeout(timeout),
	}
}

// wrap returns w as a status-recording writer, reusing an outer wrapper so
// every stage sees the same status.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the written status, 200 for a handler that wrote nothing.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// routePattern is the matched chi pattern, empty outside a chi router or
// before routing.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
