// planner prints the delivery plans of one or more scenarios as tables.
//
//	planner -file data/seeds/scenarios.json [-name triangle] [-strategy shortest]
//	planner -store -name triangle
//
// With -store the scenario is read from the configured database
// (DATABASE_URL or DB_PATH) instead of a JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/services"
	"strings"
)

func main() {
	file := flag.String("file", "data/seeds/scenarios.json", "scenario seed file")
	name := flag.String("name", "", "plan only the named scenario")
	strategy := flag.String("strategy", "", "shortest or fuel_efficient (default both)")
	store := flag.Bool("store", false, "read the scenario from the configured database")
	paths := flag.Bool("paths", false, "expand every move into its road path")
	flag.Parse()

	log.SetOutput(os.Stderr)

	var strategies []services.Strategy
	if *strategy != "" {
		s, err := services.ParseStrategy(*strategy)
		if err != nil {
			log.Fatal(err)
		}
		strategies = []services.Strategy{s}
	}

	scenarios, err := loadScenarios(*file, *name, *store)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, s := range scenarios {
		plans, err := services.PlanScenario(ctx, s, strategies, nil)
		if err != nil {
			log.Fatal(err)
		}

		roads, err := services.BuildNetwork(s)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("scenario %s (depot %s, capacity %d)\n", s.Name, s.Depot, s.Capacity)
		for _, p := range plans {
			var expand pathFunc
			if *paths {
				expand = roads.Path
			}
			if err := render(os.Stdout, p, expand); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func loadScenarios(file, name string, store bool) ([]*domain.Scenario, error) {
	if store {
		return loadFromStore(name)
	}

	all, err := repositories.LoadScenarios(file)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return all, nil
	}

	for _, s := range all {
		if strings.EqualFold(s.Name, name) {
			return []*domain.Scenario{s}, nil
		}
	}
	return nil, fmt.Errorf("scenario %q in %s: %w", name, file, domain.ErrScenarioNotFound)
}

func loadFromStore(name string) ([]*domain.Scenario, error) {
	if name == "" {
		return nil, fmt.Errorf("-store requires -name")
	}

	config.Load()
	conn, dialect, err := db.OpenStore(config.Get("DATABASE_URL", ""), config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	repo := &repositories.SQLScenarioRepository{DB: conn, Dialect: dialect}
	s, err := repo.GetScenario(context.Background(), name)
	if err != nil {
		return nil, err
	}
	return []*domain.Scenario{s}, nil
}
