package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner/internal/domain"
)

const redisRouteKeyPrefix = "route:"

// Redis-backed cache for computed routes, for deployments where planner
// instances share a cache without a SQL database. Expiry is delegated to
// Redis key TTLs.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// Fetch the cached route for one stop order, nil on miss.
func (r *RedisRouteCache) Get(ctx context.Context, key string) (*domain.RouteResult, error) {
	if r.client == nil {
		return nil, errors.New("route cache: redis client is nil")
	}

	if key == "" {
		return nil, errors.New("get route cache: key must not be empty")
	}

	payload, err := r.client.Get(ctx, redisRouteKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: redis get: %w", err)
	}

	var route domain.RouteResult
	if err := json.Unmarshal([]byte(payload), &route); err != nil {
		return nil, fmt.Errorf("get route cache: parse payload: %w", err)
	}

	return &route, nil
}

// Store one route under the given stop order key.
func (r *RedisRouteCache) Put(ctx context.Context, key string, route *domain.RouteResult) error {
	if r.client == nil {
		return errors.New("route cache: redis client is nil")
	}

	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	if route == nil {
		return errors.New("insert route cache: route is nil")
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert route cache: marshal payload: %w", err)
	}

	if err := r.client.Set(ctx, redisRouteKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: redis set: %w", key, err)
	}

	return nil
}
