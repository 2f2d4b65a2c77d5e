package api

import (
	"net/http"
	"pickup-route-service/internal/api/handlers"
	"pickup-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// cache may be nil, in which case every plan is computed.
func NewRouter(repo ports.ScenarioRepository, cache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:  repo,
		Cache: cache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/scenarios", scenarioHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
