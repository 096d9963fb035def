package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/storesync/internal/adapters/http"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/mocks"
)

type testServices struct {
	orders   *mocks.MockOrderDetailsService
	shipment *mocks.MockShipmentService
	settings *mocks.MockSettingsService
	health   *mocks.MockHealthRegistry
}

func newTestHandlers(t *testing.T) (adapthttp.Handlers, testServices) {
	t.Helper()
	svcs := testServices{
		orders:   mocks.NewMockOrderDetailsService(t),
		shipment: mocks.NewMockShipmentService(t),
		settings: mocks.NewMockSettingsService(t),
		health:   mocks.NewMockHealthRegistry(t),
	}
	return adapthttp.Handlers{
		Order:    handlers.NewOrderHandler(svcs.orders),
		Shipment: handlers.NewShipmentHandler(svcs.shipment),
		Settings: handlers.NewSettingsHandler(svcs.settings),
		Health:   handlers.NewHealthHandler(svcs.health),
	}, svcs
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	h, svcs := newTestHandlers(t)
	return adapthttp.NewRouter(h), svcs
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlers(t)
	h.Metrics = promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	router := adapthttp.NewRouter(h)

	const site = "/api/v1/sites/{siteID}"
	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodPost, site + "/orders/{orderID}/sync"},
		{http.MethodGet, site + "/orders/{orderID}/details"},
		{http.MethodPost, site + "/orders/{orderID}/shipment-trackings/sync"},
		{http.MethodGet, site + "/orders/{orderID}/shipment-trackings"},
		{http.MethodPost, site + "/orders/{orderID}/shipment-trackings"},
		{http.MethodDelete, site + "/orders/{orderID}/shipment-trackings/{trackingID}"},
		{http.MethodPost, site + "/orders/{orderID}/shipment-providers/sync"},
		{http.MethodGet, site + "/shipment-providers"},
		{http.MethodGet, site + "/settings/shipment-provider"},
		{http.MethodPut, site + "/settings/shipment-provider"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, svcs := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	svcs.health.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListTrackings(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)

	svcs.shipment.EXPECT().ListTrackings(mock.Anything, int64(123), int64(963)).
		Return([]shipment.Tracking{{SiteID: 123, OrderID: 963, TrackingID: "b1b94eb"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/123/orders/963/shipment-trackings", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"b1b94eb"`) {
		t.Errorf("body = %s, want tracking b1b94eb", rec.Body.String())
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "storesync_router_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h, _ := newTestHandlers(t)
	h.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	router := adapthttp.NewRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "storesync_router_test_total 1") {
		t.Errorf("metrics body missing counter: %s", rec.Body.String())
	}
}

func TestRouter_NoMetricsHandler(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/123/coupons", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if !strings.Contains(rec.Body.String(), `"code":"not_found"`) {
		t.Errorf("body = %s, want not_found problem", rec.Body.String())
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sites/123/shipment-providers", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_RejectsMalformedSite(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, site := range []string{"abc", "0", "-4"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sites/"+site+"/shipment-providers", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("site %q: status = %d, want %d", site, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestRouter_StandardPipeline(t *testing.T) {
	t.Parallel()

	h, svcs := newTestHandlers(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	router := adapthttp.NewRouter(h, middleware.Standard(logger, nil, time.Second)...)

	svcs.shipment.EXPECT().ListTrackings(mock.Anything, int64(123), int64(963)).
		Return([]shipment.Tracking{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/123/orders/963/shipment-trackings", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-pipeline")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get(middleware.HeaderCorrelationID); got != "req-pipeline" {
		t.Errorf("correlation ID = %q, want request ID fallback", got)
	}
	out := logs.String()
	for _, want := range []string{
		`"route":"/api/v1/sites/{siteID}/orders/{orderID}/shipment-trackings"`,
		`"site_id":"123"`,
		`"request_id":"req-pipeline"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("access log missing %s: %s", want, out)
		}
	}
}
