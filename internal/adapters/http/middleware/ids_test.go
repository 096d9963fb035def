package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/middleware"
)

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))
	req := get("/")
	req.Header.Set(middleware.HeaderRequestID, "req-123")

	rec := serve(h, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(middleware.HeaderRequestID))
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	rec := serve(middleware.RequestID()(statusHandler(http.StatusOK)), get("/"))

	_, err := uuid.Parse(rec.Header().Get(middleware.HeaderRequestID))
	require.NoError(t, err)
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	t.Parallel()

	req := get("/")
	req.Header.Set(middleware.HeaderRequestID, strings.Repeat("x", 200))

	rec := serve(middleware.RequestID()(statusHandler(http.StatusOK)), req)

	id := rec.Header().Get(middleware.HeaderRequestID)
	assert.NotEqual(t, strings.Repeat("x", 200), id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		incoming  string
		want      string
	}{
		{"reuses incoming", "req-1", "corr-1", "corr-1"},
		{"falls back to request ID", "req-2", "", "req-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					seen = middleware.CorrelationIDFromContext(r.Context())
				}),
			))
			req := get("/")
			req.Header.Set(middleware.HeaderRequestID, tt.requestID)
			if tt.incoming != "" {
				req.Header.Set(middleware.HeaderCorrelationID, tt.incoming)
			}

			rec := serve(h, req)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want, rec.Header().Get(middleware.HeaderCorrelationID))
		})
	}
}

func TestCorrelationID_WithoutRequestID(t *testing.T) {
	t.Parallel()

	rec := serve(middleware.CorrelationID()(statusHandler(http.StatusOK)), get("/"))

	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))
}
