package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/network"
	"pickup-route-service/internal/ports"
	"pickup-route-service/internal/services"
	"strings"
)

const maxPlanBodyBytes = 1 << 20

type PlanHandler struct {
	Repo  ports.ScenarioRepository
	Cache ports.PlanCache
}

// Plan computes one route per requested strategy for a stored or inline scenario.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	strategies := make([]services.Strategy, 0, len(req.Strategies))
	for _, s := range req.Strategies {
		strategy, err := services.ParseStrategy(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "strategies must be shortest or fuel_efficient")
			return
		}
		strategies = append(strategies, strategy)
	}

	name := strings.TrimSpace(req.Scenario)
	inline := strings.TrimSpace(req.Depot) != ""
	if (name == "") == !inline {
		writeError(w, r, http.StatusBadRequest, "exactly one of scenario or depot is required")
		return
	}

	var scenario *domain.Scenario
	if inline {
		s, err := scenarioFromRequest(req)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		scenario = s
	} else {
		s, err := h.Repo.GetScenario(r.Context(), name)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		scenario = s
	}

	plans, err := services.PlanScenario(r.Context(), scenario, strategies, h.Cache)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// The network is rebuilt here only to expand transit legs into road paths.
	roads, err := services.BuildNetwork(scenario)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := dto.ListPlanResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, planResponse(p, roads))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrScenarioNotFound):
		writeError(w, r, http.StatusNotFound, "scenario not found")
	case errors.Is(err, domain.ErrUnreachableCity):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidDistance),
		errors.Is(err, domain.ErrInvalidPackage),
		errors.Is(err, domain.ErrInvalidCity),
		errors.Is(err, domain.ErrOverweightPackage):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		writeInternal(w, r, "plan deliveries", err)
	}
}

func scenarioFromRequest(req dto.PlanRequest) (*domain.Scenario, error) {
	s := &domain.Scenario{
		Name:     "inline",
		Depot:    domain.NormalizeCity(req.Depot),
		Capacity: req.Capacity,
		Roads:    make([]domain.Road, 0, len(req.Roads)),
		Packages: make([]domain.Package, 0, len(req.Packages)),
	}

	for _, road := range req.Roads {
		s.Roads = append(s.Roads, domain.Road{
			From:     domain.NormalizeCity(road.From),
			To:       domain.NormalizeCity(road.To),
			Distance: road.Distance,
		})
	}

	for _, p := range req.Packages {
		pkg, err := domain.NewPackage(p.Name, p.From, p.To, p.Weight)
		if err != nil {
			return nil, err
		}
		s.Packages = append(s.Packages, pkg)
	}

	return s, nil
}

func planResponse(p *domain.RoutePlan, roads *network.RoadNetwork) dto.PlanResponse {
	steps := make([]dto.PlanStepResponse, 0, len(p.Steps))
	for _, s := range p.Steps {
		step := dto.PlanStepResponse{
			From:       string(s.From),
			To:         string(s.To),
			PickedUp:   packageResponses(s.PickedUp),
			DroppedOff: packageResponses(s.DroppedOff),
		}
		if s.IsTransit() {
			for _, c := range roads.Path(s.From, s.To) {
				step.Path = append(step.Path, string(c))
			}
		}
		steps = append(steps, step)
	}

	return dto.PlanResponse{
		PlanID:        p.ID.String(),
		Strategy:      p.Strategy,
		Depot:         string(p.Depot),
		Capacity:      p.Capacity,
		TotalDistance: p.TotalDistance,
		FuelCost:      p.FuelCost,
		Steps:         steps,
	}
}

func packageResponses(pkgs []domain.Package) []dto.PackageResponse {
	out := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, dto.PackageResponse{
			Name:   p.Name,
			From:   string(p.From),
			To:     string(p.To),
			Weight: p.Weight,
		})
	}
	return out
}
