package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/storesync/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes. A failing optional
// check degrades readiness without failing it: cached reads keep working
// while the backend is unreachable.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional []string
	now      func() time.Time
}

// NewHealthHandler returns a handler over registry. Checks named in optional
// do not fail readiness.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	return &HealthHandler{registry: registry, optional: optional, now: time.Now}
}

type readinessResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	CheckedAt string            `json:"checked_at"`
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It answers 503 only when a required
// check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status:    statusReady,
		Checks:    make(map[string]string, len(results)),
		CheckedAt: h.now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK

	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		switch {
		case !slices.Contains(h.optional, name):
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		case resp.Status == statusReady:
			resp.Status = statusDegraded
		}
	}

	writeJSON(w, code, resp)
}
