package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storesync/internal/platform/logging"
)

// logLines decodes one JSON object per log line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func completion(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, l := range logLines(t, buf) {
		if l["msg"] == "request completed" {
			return l
		}
	}
	t.Fatalf("no completion line in %s", buf.String())
	return nil
}

func TestAccessLog_CompletionCarriesRouteAndSite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := siteRouter(statusHandler(http.StatusOK), middleware.AccessLog(testLogger(&buf)))

	serve(h, get("/api/v1/sites/123/orders/963/details"))

	line := completion(t, &buf)
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/v1/sites/{siteID}/orders/{orderID}/details", line["route"])
	assert.Equal(t, "/api/v1/sites/123/orders/963/details", line["path"])
	assert.Equal(t, "123", line["site_id"])
	assert.EqualValues(t, 200, line["status"])
	assert.Contains(t, line, "duration")
}

func TestAccessLog_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusNoContent, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer

			serve(middleware.AccessLog(testLogger(&buf))(statusHandler(tt.status)), get("/health/ready"))

			line := completion(t, &buf)
			assert.Equal(t, tt.level, line["level"])
			assert.EqualValues(t, tt.status, line["status"])
		})
	}
}

func TestAccessLog_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.AccessLog(testLogger(&buf))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("syncing order")
		}),
	))
	req := get("/")
	req.Header.Set(middleware.HeaderRequestID, "req-ctx")

	serve(h, req)

	var found bool
	for _, l := range logLines(t, &buf) {
		if l["msg"] == "syncing order" {
			found = true
			assert.Equal(t, "req-ctx", l["request_id"])
		}
	}
	assert.True(t, found, "handler log not written through context logger")
}

func TestAccessLog_RedactsCredentialHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := get("/")
	req.Header.Set("Authorization", "Bearer ck_live_secret")
	req.Header.Set("Accept", "application/json")

	serve(middleware.AccessLog(testLogger(&buf))(statusHandler(http.StatusOK)), req)

	out := buf.String()
	assert.NotContains(t, out, "ck_live_secret")
	assert.Contains(t, out, "[REDACTED]")
	assert.Contains(t, out, "application/json")
}
