package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "plan:"

// Redis-backed cache for computed route plans.
// Plans are stored as JSON and expire after TTL (zero keeps them forever).
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Fetch a cached plan. A missing key is not an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.RoutePlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	payload, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%q: %w", key, err)
	}

	var plan domain.RoutePlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache key=%q: decode: %w", key, err)
	}

	return &plan, true, nil
}

// Store a plan under key, replacing any previous value.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.RoutePlan) error {
	if c.Client == nil {
		return errors.New("plan cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert plan cache: key must not be empty")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache key=%q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache key=%q: %w", key, err)
	}

	return nil
}
