package domain

import "github.com/google/uuid"

// Represents one atomic record of a planned route.
// A service step has From == To and lists the packages picked up and dropped
// at that city. A transit step moves the vehicle between two cities and
// carries no packages; the final return to the depot is a transit step.
type RouteStep struct {
	From       City
	To         City
	PickedUp   []Package
	DroppedOff []Package
}

// IsTransit reports whether the step moves the vehicle to another city.
func (s RouteStep) IsTransit() bool { return s.From != s.To }

// Represents the route computed for one optimization strategy.
// TotalDistance sums the shortest distance of every move; FuelCost weighs each
// move by the load the vehicle carried while making it.
type RoutePlan struct {
	ID            uuid.UUID
	Strategy      string
	Depot         City
	Capacity      int
	Steps         []RouteStep
	TotalDistance int
	FuelCost      float64
}
