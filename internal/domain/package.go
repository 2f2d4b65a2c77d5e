package domain

import (
	"fmt"
	"strings"
)

// Represents a single parcel that has to be collected at one city and
// dropped at another. Packages are values and never change after creation.
type Package struct {
	Name   string
	From   City
	To     City
	Weight int
}

// NewPackage validates the fields and returns the package.
// Names and cities are trimmed; all must be non-empty and the weight positive.
func NewPackage(name string, from string, to string, weight int) (Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Package{}, fmt.Errorf("new package: %w: name must not be empty", ErrInvalidPackage)
	}

	origin := NormalizeCity(from)
	if origin == "" {
		return Package{}, fmt.Errorf("new package %q: %w: origin must not be empty", name, ErrInvalidPackage)
	}

	destination := NormalizeCity(to)
	if destination == "" {
		return Package{}, fmt.Errorf("new package %q: %w: destination must not be empty", name, ErrInvalidPackage)
	}

	if weight <= 0 {
		return Package{}, fmt.Errorf("new package %q: %w: weight must be positive, got %d", name, ErrInvalidPackage, weight)
	}

	return Package{Name: name, From: origin, To: destination, Weight: weight}, nil
}

// TotalWeight sums the weight of the given packages.
func TotalWeight(pkgs []Package) int {
	total := 0
	for _, p := range pkgs {
		total += p.Weight
	}
	return total
}
