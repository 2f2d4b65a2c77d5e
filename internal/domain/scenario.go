package domain

import (
	"fmt"
	"math"
)

// MaxRoadDistance bounds a single road so that any shortest path, even one
// crossing billions of roads, stays far below the int range.
const MaxRoadDistance = math.MaxInt32

// Road is an undirected road between two cities.
type Road struct {
	From     City
	To       City
	Distance int
}

// Scenario is everything needed to plan one route: the network, the depot,
// the vehicle capacity and the packages to move.
type Scenario struct {
	Name     string
	Depot    City
	Capacity int
	Roads    []Road
	Packages []Package
}

// Validate checks the invariants that do not need the road network.
func (s *Scenario) Validate() error {
	if s.Depot == "" {
		return fmt.Errorf("validate scenario %q: depot: %w", s.Name, ErrInvalidCity)
	}

	if s.Capacity <= 0 {
		return fmt.Errorf("validate scenario %q: %w: got %d", s.Name, ErrInvalidCapacity, s.Capacity)
	}

	for _, r := range s.Roads {
		if r.Distance < 0 || r.Distance > MaxRoadDistance {
			return fmt.Errorf("validate scenario %q: road %s-%s: %w", s.Name, r.From, r.To, ErrInvalidDistance)
		}
	}

	for _, p := range s.Packages {
		if _, err := NewPackage(p.Name, string(p.From), string(p.To), p.Weight); err != nil {
			return fmt.Errorf("validate scenario %q: %w", s.Name, err)
		}
		if p.Weight > s.Capacity {
			return fmt.Errorf(
				"validate scenario %q: package %q weight=%d capacity=%d: %w",
				s.Name, p.Name, p.Weight, s.Capacity, ErrOverweightPackage,
			)
		}
	}

	return nil
}
