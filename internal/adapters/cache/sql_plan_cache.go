package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/platform/obs"
	"strings"
)

// SQL-backed cache for computed route plans, used when no Redis is
// configured. The plan_cache table is created by repositories.InitSchema.
type SQLPlanCache struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLPlanCache(conn *sql.DB, dialect db.Dialect) *SQLPlanCache {
	return &SQLPlanCache{DB: conn, Dialect: dialect}
}

// Fetch a cached plan. A missing key is not an error.
func (s *SQLPlanCache) Get(ctx context.Context, key string) (_ *domain.RoutePlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("plan cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	q := `
	SELECT plan
	FROM plan_cache
	WHERE cache_key = ?;
	`

	var payload string
	err = s.DB.QueryRowContext(ctx, s.Dialect.Bind(q), key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: query plan_cache table: %w", err)
	}

	var plan domain.RoutePlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%q: decode: %w", key, err)
	}

	return &plan, true, nil
}

// Store a plan under key, replacing any previous value.
func (s *SQLPlanCache) Put(ctx context.Context, key string, plan *domain.RoutePlan) error {
	if s.DB == nil {
		return errors.New("plan cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache key=%q: encode: %w", key, err)
	}

	q := `
	INSERT INTO plan_cache (cache_key, plan)
	VALUES (?, ?)
	ON CONFLICT (cache_key) DO UPDATE
	SET plan = excluded.plan;
	`
	if _, err := s.DB.ExecContext(ctx, s.Dialect.Bind(q), key, string(payload)); err != nil {
		return fmt.Errorf("insert plan cache key=%q: %w", key, err)
	}

	return nil
}
