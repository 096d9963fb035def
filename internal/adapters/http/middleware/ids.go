package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/storesync/internal/platform/httpclient"
)

// Propagated ID headers.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLength bounds caller-supplied IDs; longer ones are replaced.
const maxIDLength = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx for this package and for outbound backend
// calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx for this package and for outbound
// backend calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses the caller's X-Request-ID or assigns a UUID, and echoes it
// in the response.
func RequestID() Middleware {
	return propagateID(HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses the caller's X-Correlation-ID or falls back to the
// request ID. It belongs after RequestID.
func CorrelationID() Middleware {
	return propagateID(HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		if id := RequestIDFromContext(r.Context()); id != "" {
			return id
		}
		return uuid.NewString()
	})
}

func propagateID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" || len(id) > maxIDLength {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}
