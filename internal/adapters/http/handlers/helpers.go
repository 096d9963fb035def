package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/platform/logging"
)

// Path parameter names shared by the routes under /api/v1/sites/{siteID}.
const (
	paramSiteID     = "siteID"
	paramOrderID    = "orderID"
	paramTrackingID = "trackingID"
)

// parseID reads a positive int64 path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a positive integer"},
		}
	}
	return id, nil
}

// parseOrderPath extracts the site and order IDs of an order-scoped route.
func parseOrderPath(r *http.Request) (siteID, orderID int64, err error) {
	if siteID, err = parseID(r, paramSiteID); err != nil {
		return 0, 0, err
	}
	if orderID, err = parseID(r, paramOrderID); err != nil {
		return 0, 0, err
	}
	return siteID, orderID, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError writes the problem response for err. Failures on our side or
// the backend's are logged with the request-scoped logger; client errors are
// not.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if dto.IsServerError(err) {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("operation", r.Method+" "+r.URL.Path),
			slog.Any("error", err),
		)
	}
	dto.WriteErrorResponse(w, r, err)
}

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and validates it. On failure it
// writes the error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}
