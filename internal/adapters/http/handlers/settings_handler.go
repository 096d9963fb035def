package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// SettingsHandler handles the per-site provider preselection.
type SettingsHandler struct {
	svc ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the given service port.
func NewSettingsHandler(svc ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetShipmentProvider handles GET /api/v1/sites/{siteID}/settings/shipment-provider.
func (h *SettingsHandler) GetShipmentProvider(w http.ResponseWriter, r *http.Request) {
	siteID, err := parseID(r, paramSiteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	catalog, custom, err := h.svc.SelectedProviders(r.Context(), siteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSelectedProvidersResponse(catalog, custom))
}

// SelectShipmentProvider handles PUT /api/v1/sites/{siteID}/settings/shipment-provider.
func (h *SettingsHandler) SelectShipmentProvider(w http.ResponseWriter, r *http.Request) {
	siteID, err := parseID(r, paramSiteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req dto.SelectProviderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.SelectProvider(r.Context(), siteID, req.Name, req.URL); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
