package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
)

// SQLRouteCache is a Postgres-backed cache for computed routes, shared
// between planner instances. Same contract as the SQLite variant.
type SQLRouteCache struct {
	DB  *sql.DB
	TTL time.Duration

	// Clock used for TTL checks; tests override it.
	Now func() time.Time
}

func NewSQLRouteCache(db *sql.DB, ttl time.Duration) *SQLRouteCache {
	return &SQLRouteCache{DB: db, TTL: ttl, Now: time.Now}
}

// Fetch the cached route for one stop order, nil on miss or expiry.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}

	if key == "" {
		return nil, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT payload, created_at
	FROM route_cache
	WHERE stop_key = $1;
	`
	var payload string
	var createdAt int64
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	if s.TTL > 0 && s.Now().UnixMilli()-createdAt >= s.TTL.Milliseconds() {
		return nil, nil
	}

	var route domain.RouteResult
	if err := json.Unmarshal([]byte(payload), &route); err != nil {
		return nil, fmt.Errorf("get route cache: parse payload: %w", err)
	}

	return &route, nil
}

// Store one route under the given stop order key.
func (s *SQLRouteCache) Put(ctx context.Context, key string, route *domain.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
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

	q := `
	INSERT INTO route_cache (stop_key, payload, created_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (stop_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = EXCLUDED.created_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, string(payload), s.Now().UnixMilli()); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
