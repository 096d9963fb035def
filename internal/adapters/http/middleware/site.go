package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/platform/logging"
)

// SiteScope rejects a non-positive or malformed {siteID} with 400 and adds
// site_id to the request logger. It must run inside a router that declares
// {siteID}.
func SiteScope() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			siteID, err := strconv.ParseInt(chi.URLParam(r, "siteID"), 10, 64)
			if err != nil || siteID <= 0 {
				dto.WriteErrorResponse(w, r, &domain.ValidationError{
					Fields: map[string]string{"siteID": "must be a positive integer"},
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(logging.With(r.Context(), slog.Int64("site_id", siteID))))
		})
	}
}
