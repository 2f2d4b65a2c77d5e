package services

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/network"
	"pickup-route-service/internal/ports"
	"slices"

	"github.com/yourbasic/bit"
)

// RouteBuilder plans the route of one vehicle that collects packages at their
// origin and drops them at their destination, starting and ending at a depot.
//
// The algorithm is greedy: at each city it drops what is due, loads what fits
// (lightest first), then moves to the cheapest unvisited city that still has
// work under the supplied CostFunc. It gives no optimality guarantee.
// Candidate cities are scanned in lexicographic order so that equal costs
// always resolve the same way.
type RouteBuilder struct {
	distances ports.DistanceProvider
	packages  []domain.Package
	depot     domain.City
	capacity  int

	// pickups holds the packages waiting at each origin, lightest first.
	pickups   map[domain.City][]domain.Package
	neighbors map[domain.City][]domain.City
	cityIndex map[domain.City]int

	// costs memoizes direct costs for the current Build call only.
	costs map[costKey]float64
}

type costKey struct {
	from domain.City
	to   domain.City
	load int
}

func NewRouteBuilder(
	distances ports.DistanceProvider,
	packages []domain.Package,
	depot domain.City,
	capacity int,
) (*RouteBuilder, error) {
	if distances == nil {
		return nil, errors.New("new route builder: distance provider must be non-nil")
	}

	if depot == "" {
		return nil, fmt.Errorf("new route builder: depot: %w", domain.ErrInvalidCity)
	}

	if capacity <= 0 {
		return nil, fmt.Errorf("new route builder: %w: got %d", domain.ErrInvalidCapacity, capacity)
	}

	b := &RouteBuilder{
		distances: distances,
		packages:  slices.Clone(packages),
		depot:     depot,
		capacity:  capacity,
		pickups:   make(map[domain.City][]domain.Package),
		neighbors: make(map[domain.City][]domain.City),
		cityIndex: map[domain.City]int{depot: 0},
		costs:     make(map[costKey]float64),
	}

	for _, p := range b.packages {
		// A package heavier than the vehicle could never be loaded.
		if p.Weight > capacity {
			return nil, fmt.Errorf(
				"new route builder: package %q weight=%d capacity=%d: %w",
				p.Name, p.Weight, capacity, domain.ErrOverweightPackage,
			)
		}
		b.pickups[p.From] = append(b.pickups[p.From], p)
		b.index(p.From)
		b.index(p.To)
	}

	// Stable sort keeps input order among packages of equal weight.
	for _, group := range b.pickups {
		slices.SortStableFunc(group, func(x, y domain.Package) int { return cmp.Compare(x.Weight, y.Weight) })
	}

	for city := range b.cityIndex {
		b.neighbors[city] = domain.SortedCities(distances.ConnectedCities(city))
	}

	return b, nil
}

func (b *RouteBuilder) index(city domain.City) {
	if _, ok := b.cityIndex[city]; !ok {
		b.cityIndex[city] = len(b.cityIndex)
	}
}

func (b *RouteBuilder) Depot() domain.City { return b.depot }
func (b *RouteBuilder) Capacity() int      { return b.capacity }

// PackageCities returns every origin and destination in lexicographic order.
func (b *RouteBuilder) PackageCities() []domain.City {
	out := make([]domain.City, 0, len(b.neighbors))
	for _, p := range b.packages {
		out = append(out, p.From, p.To)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Neighbors returns the cities one road away from the depot or a package
// city, as seen when the builder was created.
func (b *RouteBuilder) Neighbors(city domain.City) []domain.City {
	return slices.Clone(b.neighbors[city])
}

// Build runs the greedy planner with the given cost function.
// The result ends with the vehicle empty at the depot; it is empty when there
// are no packages. Build may be called repeatedly with different cost functions.
func (b *RouteBuilder) Build(cost CostFunc) []domain.RouteStep {
	steps := []domain.RouteStep{}
	if len(b.packages) == 0 {
		return steps
	}

	clear(b.costs)

	// capacity was validated by NewRouteBuilder
	vehicle, _ := domain.NewVehicle(b.capacity)

	pending := make(map[domain.City][]domain.Package, len(b.pickups))
	for city, group := range b.pickups {
		pending[city] = slices.Clone(group)
	}

	visited := new(bit.Set).Add(b.cityIndex[b.depot])
	current := b.depot

	for {
		steps = append(steps, b.serve(current, vehicle, pending))

		if vehicle.IsEmpty() && len(pending) == 0 {
			if current != b.depot {
				steps = append(steps, transit(current, b.depot))
			}
			return steps
		}

		next := b.nextCity(current, vehicle, pending, visited, cost)
		if idx := b.cityIndex[next]; !visited.Contains(idx) {
			visited.Add(idx)
			steps = append(steps, transit(current, next))
		}
		current = next
	}
}

// serve drops the packages due at city, then loads waiting packages in queue
// order until one does not fit. Packages left behind stay queued.
func (b *RouteBuilder) serve(
	city domain.City,
	vehicle *domain.Vehicle,
	pending map[domain.City][]domain.Package,
) domain.RouteStep {
	dropped := vehicle.UnloadAt(city)

	picked := []domain.Package{}
	queue := pending[city]
	for len(queue) > 0 && vehicle.TryLoad(queue[0]) {
		picked = append(picked, queue[0])
		queue = queue[1:]
	}

	if len(queue) == 0 {
		delete(pending, city)
	} else {
		pending[city] = queue
	}

	return domain.RouteStep{From: city, To: city, PickedUp: picked, DroppedOff: dropped}
}

// nextCity picks where to go after serving current. While carrying cargo only
// its destinations are candidates; otherwise the cities with waiting packages.
// The cheapest unvisited candidate wins. When none is selectable the first
// candidate is chosen even if already visited, since a city may need a second
// visit for packages that did not fit earlier.
func (b *RouteBuilder) nextCity(
	current domain.City,
	vehicle *domain.Vehicle,
	pending map[domain.City][]domain.Package,
	visited *bit.Set,
	cost CostFunc,
) domain.City {
	var candidates []domain.City
	if !vehicle.IsEmpty() {
		candidates = vehicle.Destinations()
	} else {
		candidates = domain.SortedCities(pending)
	}

	if len(candidates) == 0 {
		return b.depot
	}

	best := domain.City("")
	bestCost := math.Inf(1)
	for _, c := range candidates {
		if visited.Contains(b.cityIndex[c]) {
			continue
		}
		// Strict comparison keeps the first candidate on ties.
		if cc := b.directCost(current, c, vehicle.CurrentLoad(), cost); cc < bestCost {
			best, bestCost = c, cc
		}
	}

	if best == "" {
		return candidates[0]
	}
	return best
}

// directCost evaluates cost for the move from -> to at the given load.
// Unreachable pairs cost +Inf so they never win a minimum.
func (b *RouteBuilder) directCost(from, to domain.City, load int, cost CostFunc) float64 {
	key := costKey{from: from, to: to, load: load}
	if c, ok := b.costs[key]; ok {
		return c
	}

	c := math.Inf(1)
	if d := b.distances.ShortestDistance(from, to); d != network.Unreachable {
		c = cost(d, load)
	}
	b.costs[key] = c
	return c
}

func transit(from, to domain.City) domain.RouteStep {
	return domain.RouteStep{From: from, To: to, PickedUp: []domain.Package{}, DroppedOff: []domain.Package{}}
}
