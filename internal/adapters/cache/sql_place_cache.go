package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner/internal/platform/obs"
)

// SQLPlaceCache is a Postgres-backed cache for reverse-geocoded place
// names. Same contract as the SQLite variant.
type SQLPlaceCache struct {
	DB *sql.DB
}

func NewSQLPlaceCache(db *sql.DB) *SQLPlaceCache {
	return &SQLPlaceCache{DB: db}
}

// Fetch the cached place name for one coordinate key.
func (s *SQLPlaceCache) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("place cache: db is nil")
	}

	if key == "" {
		return "", false, errors.New("get place cache: key must not be empty")
	}

	q := `
	SELECT place_name
	FROM place_cache
	WHERE coord_key = $1;
	`
	var name string
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get place cache: query place_cache table: %w", err)
	}

	return name, true, nil
}

// Store one place name under the given coordinate key.
func (s *SQLPlaceCache) Put(ctx context.Context, key, name string) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	if key == "" {
		return errors.New("insert place cache: key must not be empty")
	}

	q := `
	INSERT INTO place_cache (coord_key, place_name)
	VALUES ($1, $2)
	ON CONFLICT (coord_key) DO UPDATE
	SET place_name = EXCLUDED.place_name;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, name); err != nil {
		return fmt.Errorf("insert place cache key=%q: %w", key, err)
	}

	return nil
}
