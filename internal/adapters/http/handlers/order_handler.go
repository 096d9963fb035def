// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// OrderHandler handles order sync and the order-details view.
type OrderHandler struct {
	svc ports.OrderDetailsService
	now func() time.Time
}

// NewOrderHandler creates a new OrderHandler with the given service port.
func NewOrderHandler(svc ports.OrderDetailsService) *OrderHandler {
	return &OrderHandler{svc: svc, now: time.Now}
}

// SyncOrder handles POST /api/v1/sites/{siteID}/orders/{orderID}/sync.
func (h *OrderHandler) SyncOrder(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.SyncOrder(r.Context(), siteID, orderID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewSyncResponse(siteID, orderID, h.now()))
}

// GetDetails handles GET /api/v1/sites/{siteID}/orders/{orderID}/details.
// It reads local state only.
func (h *OrderHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d, err := h.svc.Details(r.Context(), siteID, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderDetailsResponse(orderID, &d))
}
