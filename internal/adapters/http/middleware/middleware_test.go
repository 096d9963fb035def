package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

// siteRouter mounts h at the shape of a real order route, with mw applied the
// way NewRouter applies the global pipeline.
func siteRouter(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.Method(http.MethodGet, "/api/v1/sites/{siteID}/orders/{orderID}/details", h)
	return r
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, http.NoBody)
}
