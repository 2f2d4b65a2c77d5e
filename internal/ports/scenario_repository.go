package ports

import (
	"context"
	"pickup-route-service/internal/domain"
)

// Port: a boundary for retrieving planning scenarios from a data source.
type ScenarioRepository interface {
	// Return the names of all stored scenarios.
	ListScenarios(ctx context.Context) ([]string, error)
	// Return one scenario with its roads and packages.
	// Unknown names fail with domain.ErrScenarioNotFound.
	GetScenario(ctx context.Context, name string) (*domain.Scenario, error)
}
