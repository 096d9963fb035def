package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// ShipmentHandler handles shipment trackings and the provider catalog.
type ShipmentHandler struct {
	svc ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler with the given service port.
func NewShipmentHandler(svc ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

// SyncTrackings handles POST /api/v1/sites/{siteID}/orders/{orderID}/shipment-trackings/sync.
// It responds with the trackings stored after the sync.
func (h *ShipmentHandler) SyncTrackings(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.SyncTrackings(r.Context(), siteID, orderID); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeTrackings(w, r, siteID, orderID)
}

// ListTrackings handles GET /api/v1/sites/{siteID}/orders/{orderID}/shipment-trackings.
func (h *ShipmentHandler) ListTrackings(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeTrackings(w, r, siteID, orderID)
}

func (h *ShipmentHandler) writeTrackings(w http.ResponseWriter, r *http.Request, siteID, orderID int64) {
	trackings, err := h.svc.ListTrackings(r.Context(), siteID, orderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTrackingListResponse(orderID, trackings))
}

// AddTracking handles POST /api/v1/sites/{siteID}/orders/{orderID}/shipment-trackings.
func (h *ShipmentHandler) AddTracking(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req dto.AddTrackingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddTracking(r.Context(), siteID, orderID, req.ToNewTracking())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTrackingResponse(&created))
}

// DeleteTracking handles DELETE /api/v1/sites/{siteID}/orders/{orderID}/shipment-trackings/{trackingID}.
func (h *ShipmentHandler) DeleteTracking(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	trackingID := strings.TrimSpace(chi.URLParam(r, paramTrackingID))
	if trackingID == "" {
		writeError(w, r, &domain.ValidationError{
			Fields: map[string]string{paramTrackingID: domain.MsgRequired},
		})
		return
	}

	if err := h.svc.DeleteTracking(r.Context(), siteID, orderID, trackingID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SyncProviderGroups handles POST /api/v1/sites/{siteID}/orders/{orderID}/shipment-providers/sync.
// It responds with the catalog stored after the sync.
func (h *ShipmentHandler) SyncProviderGroups(w http.ResponseWriter, r *http.Request) {
	siteID, orderID, err := parseOrderPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.SyncProviderGroups(r.Context(), siteID, orderID); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeProviderGroups(w, r, siteID)
}

// ListProviderGroups handles GET /api/v1/sites/{siteID}/shipment-providers.
func (h *ShipmentHandler) ListProviderGroups(w http.ResponseWriter, r *http.Request) {
	siteID, err := parseID(r, paramSiteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeProviderGroups(w, r, siteID)
}

func (h *ShipmentHandler) writeProviderGroups(w http.ResponseWriter, r *http.Request, siteID int64) {
	groups, err := h.svc.ListProviderGroups(r.Context(), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProviderGroupListResponse(groups))
}
