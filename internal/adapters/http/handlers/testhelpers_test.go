package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
)

const (
	testSiteID  = "123"
	testOrderID = "963"
)

var testTime = time.Date(2019, 2, 19, 0, 0, 0, 0, time.UTC)

// withChiParams routes r as if chi had matched params.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func orderParams() map[string]string {
	return map[string]string{"siteID": testSiteID, "orderID": testOrderID}
}

func validTracking() shipment.Tracking {
	return shipment.Tracking{
		SiteID:           123,
		OrderID:          963,
		TrackingID:       "f1b3e2a5",
		TrackingNumber:   "11122233344",
		TrackingProvider: "TNT Express (consignment)",
		TrackingURL:      "https://www.tnt.com/?searchType=con&cons=11122233344",
		DateShipped:      testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body = %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}
