package domain

import "fmt"

// Vehicle tracks the cargo of the single delivery vehicle while a route is
// being simulated. The load never exceeds the capacity and the destination
// index always mirrors the carried set.
type Vehicle struct {
	capacity      int
	load          int
	carried       []Package
	byDestination map[City][]Package
}

func NewVehicle(capacity int) (*Vehicle, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new vehicle: %w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Vehicle{
		capacity:      capacity,
		byDestination: make(map[City][]Package),
	}, nil
}

// TryLoad admits pkg if it fits in the remaining capacity.
// It reports false and leaves the vehicle untouched otherwise.
// Loading the same package twice is the caller's responsibility to avoid.
func (v *Vehicle) TryLoad(pkg Package) bool {
	if v.load+pkg.Weight > v.capacity {
		return false
	}

	v.carried = append(v.carried, pkg)
	v.load += pkg.Weight
	v.byDestination[pkg.To] = append(v.byDestination[pkg.To], pkg)
	return true
}

// UnloadAt removes and returns every carried package destined to city,
// in the order they were loaded.
func (v *Vehicle) UnloadAt(city City) []Package {
	dropped, ok := v.byDestination[city]
	if !ok {
		return []Package{}
	}
	delete(v.byDestination, city)

	kept := v.carried[:0]
	for _, p := range v.carried {
		if p.To != city {
			kept = append(kept, p)
		}
	}
	// Clear the tail so dropped packages are not retained by the backing array.
	clear(v.carried[len(kept):])
	v.carried = kept

	v.load -= TotalWeight(dropped)
	return dropped
}

func (v *Vehicle) Capacity() int    { return v.capacity }
func (v *Vehicle) CurrentLoad() int { return v.load }
func (v *Vehicle) IsEmpty() bool    { return len(v.carried) == 0 }

// Carried returns a copy of the packages currently on board.
func (v *Vehicle) Carried() []Package {
	out := make([]Package, len(v.carried))
	copy(out, v.carried)
	return out
}

// Destinations returns the distinct destinations of the carried packages
// in lexicographic order.
func (v *Vehicle) Destinations() []City {
	return SortedCities(v.byDestination)
}
