package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/network"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type PlanDeliveriesRequest struct {
	Scenario   string
	Strategies []Strategy
}

// PlanDeliveries loads a stored scenario and plans it with every requested
// strategy. cache may be nil.
func PlanDeliveries(
	ctx context.Context,
	req PlanDeliveriesRequest,
	repo ports.ScenarioRepository,
	cache ports.PlanCache,
) ([]*domain.RoutePlan, error) {
	name := strings.TrimSpace(req.Scenario)
	if name == "" {
		return nil, errors.New("plan deliveries: scenario name must be non-empty")
	}

	scenario, err := repo.GetScenario(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: get scenario: %w", err)
	}

	plans, err := PlanScenario(ctx, scenario, req.Strategies, cache)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	return plans, nil
}

// PlanScenario builds the road network of scenario, checks that every package
// city can be reached from the depot and runs one greedy build per strategy.
// All strategies share one RouteBuilder and therefore one distance cache.
func PlanScenario(
	ctx context.Context,
	scenario *domain.Scenario,
	strategies []Strategy,
	cache ports.PlanCache,
) (_ []*domain.RoutePlan, err error) {
	defer obs.Time(ctx, "plan.scenario")(&err)

	if scenario == nil {
		return nil, errors.New("plan scenario: scenario must be non-nil")
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("plan scenario: %w", err)
	}

	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	roads, err := BuildNetwork(scenario)
	if err != nil {
		return nil, fmt.Errorf("plan scenario: %w", err)
	}

	builder, err := NewRouteBuilder(roads, scenario.Packages, scenario.Depot, scenario.Capacity)
	if err != nil {
		return nil, fmt.Errorf("plan scenario: %w", err)
	}

	if err := checkReachable(builder, roads); err != nil {
		return nil, fmt.Errorf("plan scenario %q: %w", scenario.Name, err)
	}

	fingerprint := Fingerprint(scenario)
	plans := make([]*domain.RoutePlan, 0, len(strategies))
	for _, strategy := range strategies {
		cost, err := strategy.CostFunc(scenario.Capacity)
		if err != nil {
			return nil, fmt.Errorf("plan scenario: %w", err)
		}

		key := fingerprint + ":" + string(strategy)
		if cache != nil {
			cached, ok, err := cache.Get(ctx, key)
			if err != nil {
				log.Printf("plan cache read failed: key=%s err=%v", key, err)
			} else if ok {
				plans = append(plans, cached)
				continue
			}
		}

		steps := builder.Build(cost)
		plan := Summarize(roads, scenario, strategy, steps)

		log.Printf(
			"plan built: scenario=%s strategy=%s steps=%d distance=%d fuel_cost=%.2f",
			scenario.Name, strategy, len(plan.Steps), plan.TotalDistance, plan.FuelCost,
		)

		if cache != nil {
			if err := cache.Put(ctx, key, plan); err != nil {
				log.Printf("plan cache write failed: key=%s err=%v", key, err)
			}
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// BuildNetwork adds every road of the scenario to a fresh network.
func BuildNetwork(scenario *domain.Scenario) (*network.RoadNetwork, error) {
	roads := network.New()
	for _, r := range scenario.Roads {
		if err := roads.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("build network: %w", err)
		}
	}
	return roads, nil
}

// checkReachable fails when some package city has no path to the depot.
// Isolated cities are rejected from the neighbor lookup without running Dijkstra.
func checkReachable(builder *RouteBuilder, roads ports.DistanceProvider) error {
	depot := builder.Depot()
	for _, city := range builder.PackageCities() {
		if city == depot {
			continue
		}
		if len(builder.Neighbors(city)) == 0 || roads.ShortestDistance(depot, city) == network.Unreachable {
			return fmt.Errorf("check reachable: city %q: %w", city, domain.ErrUnreachableCity)
		}
	}
	return nil
}

// Summarize wraps steps into a RoutePlan and replays them to compute the
// total distance and the load-weighted fuel cost of every move.
func Summarize(
	roads *network.RoadNetwork,
	scenario *domain.Scenario,
	strategy Strategy,
	steps []domain.RouteStep,
) *domain.RoutePlan {
	plan := &domain.RoutePlan{
		ID:       uuid.New(),
		Strategy: string(strategy),
		Depot:    scenario.Depot,
		Capacity: scenario.Capacity,
		Steps:    steps,
	}

	fuel := FuelEfficient(scenario.Capacity)
	position := scenario.Depot
	load := 0
	for _, s := range steps {
		if s.To != position {
			d := roads.ShortestDistance(position, s.To)
			plan.TotalDistance += d
			plan.FuelCost += fuel(d, load)
			position = s.To
		}
		load += domain.TotalWeight(s.PickedUp) - domain.TotalWeight(s.DroppedOff)
	}

	return plan
}

// Fingerprint identifies a scenario by content so that plans can be cached
// across requests. Road order does not matter; package order does, since it
// breaks ties between packages of equal weight. The scenario name is ignored.
// Every name is written quoted, so separators inside names cannot collide.
func Fingerprint(scenario *domain.Scenario) string {
	roads := make([]string, 0, len(scenario.Roads))
	for _, r := range scenario.Roads {
		a, b := r.From, r.To
		if b < a {
			a, b = b, a
		}
		roads = append(roads, fmt.Sprintf("%q %q %d", a, b, r.Distance))
	}
	slices.Sort(roads)

	h := sha256.New()
	fmt.Fprintf(h, "depot=%q\ncapacity=%d\n", scenario.Depot, scenario.Capacity)
	for _, r := range roads {
		fmt.Fprintf(h, "road=%s\n", r)
	}
	for _, p := range scenario.Packages {
		fmt.Fprintf(h, "package=%q %q %q %d\n", p.Name, p.From, p.To, p.Weight)
	}
	return hex.EncodeToString(h.Sum(nil))
}
