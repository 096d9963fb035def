// Package http serves the sync API: routing, the middleware pipeline and the
// server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Handlers groups the handlers mounted by NewRouter. Metrics is optional.
type Handlers struct {
	Order    *handlers.OrderHandler
	Shipment *handlers.ShipmentHandler
	Settings *handlers.SettingsHandler
	Health   *handlers.HealthHandler
	Metrics  http.Handler
}

// NewRouter mounts the probes, the optional metrics endpoint and the
// site-scoped sync API behind middlewares, outermost first. Unknown paths get
// a 404 problem response.
func NewRouter(h Handlers, middlewares ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/v1/sites/{siteID}", func(site chi.Router) {
		site.Use(middleware.SiteScope())

		site.Get("/shipment-providers", h.Shipment.ListProviderGroups)
		site.Get("/settings/shipment-provider", h.Settings.GetShipmentProvider)
		site.Put("/settings/shipment-provider", h.Settings.SelectShipmentProvider)

		site.Route("/orders/{orderID}", func(order chi.Router) {
			order.Post("/sync", h.Order.SyncOrder)
			order.Get("/details", h.Order.GetDetails)

			order.Post("/shipment-trackings/sync", h.Shipment.SyncTrackings)
			order.Get("/shipment-trackings", h.Shipment.ListTrackings)
			order.Post("/shipment-trackings", h.Shipment.AddTracking)
			order.Delete("/shipment-trackings/{trackingID}", h.Shipment.DeleteTracking)

			// The backend serves the provider catalog under an order.
			order.Post("/shipment-providers/sync", h.Shipment.SyncProviderGroups)
		})
	})

	return r
}
