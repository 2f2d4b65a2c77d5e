package handlers

import (
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/platform/obs"
)

// Health reports liveness only; it touches neither the scenario store nor the plan cache.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		RequestID: obs.RequestID(r.Context()),
	})
}
