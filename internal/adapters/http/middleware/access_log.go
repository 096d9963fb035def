package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storesync/internal/platform/logging"
)

const redacted = "[REDACTED]"

// AccessLog stores a logger carrying the request and correlation IDs in the
// context and logs each request when it completes: server errors at Error,
// client errors at Warn, the rest at Info.
func AccessLog(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("headers", redactHeaders(r.Header)),
				)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if site := chi.URLParam(r, "siteID"); site != "" {
				attrs = append(attrs, slog.String("site_id", site))
			}
			child.LogAttrs(ctx, levelFor(status), "request completed", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// redactHeaders flattens h for logging, masking credential-bearing headers.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key, vals := range h {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			out[key] = redacted
			continue
		}
		out[key] = strings.Join(vals, ",")
	}
	return out
}
