package main

import (
	"fmt"
	"io"
	"pickup-route-service/internal/domain"
	"strings"
	"text/tabwriter"
)

type pathFunc func(from, to domain.City) []domain.City

// render writes plan as an aligned table followed by its totals.
// When path is non-nil every move lists the cities it passes through.
func render(w io.Writer, plan *domain.RoutePlan, path pathFunc) error {
	fmt.Fprintf(w, "\nstrategy %s  plan %s\n", plan.Strategy, plan.ID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tFROM\tTO\tPICKED UP\tDROPPED OFF")
	for i, s := range plan.Steps {
		to := string(s.To)
		if path != nil && s.IsTransit() {
			to = joinCities(path(s.From, s.To))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, s.From, to, packageNames(s.PickedUp), packageNames(s.DroppedOff))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	_, err := fmt.Fprintf(w, "total distance %d  fuel cost %.2f\n", plan.TotalDistance, plan.FuelCost)
	return err
}

func packageNames(pkgs []domain.Package) string {
	if len(pkgs) == 0 {
		return "-"
	}
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	return strings.Join(names, ",")
}

func joinCities(cities []domain.City) string {
	parts := make([]string, 0, len(cities))
	for _, c := range cities {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ">")
}
