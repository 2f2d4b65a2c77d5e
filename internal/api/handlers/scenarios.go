package handlers

import (
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/ports"
)

// ScenarioHandler exposes read-only scenario listing.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names, err := h.Repo.ListScenarios(r.Context())
	if err != nil {
		writeInternal(w, r, "list scenarios", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListScenariosResponse{Scenarios: names})
}
