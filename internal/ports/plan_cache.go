package ports

import (
	"context"
	"pickup-route-service/internal/domain"
)

// Optional store for computed plans, keyed by scenario fingerprint and strategy.
type PlanCache interface {
	Get(ctx context.Context, key string) (*domain.RoutePlan, bool, error)
	Put(ctx context.Context, key string, plan *domain.RoutePlan) error
}
