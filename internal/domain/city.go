package domain

import (
	"slices"
	"strings"
)

// City identifies a node of the road network. Two cities are the same
// city when their names are equal.
type City string

// NormalizeCity trims surrounding whitespace so that user-entered names
// compare consistently.
func NormalizeCity(name string) City {
	return City(strings.TrimSpace(name))
}

// SortedCities returns the keys of a city set in lexicographic order.
func SortedCities[V any](set map[City]V) []City {
	out := make([]City, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
