package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed cache for reverse-geocoded place names, keyed by rounded
// coordinates. Places do not move, so entries never expire.
type SqlitePlaceCache struct {
	DB *sql.DB
}

func NewSqlitePlaceCache(db *sql.DB) *SqlitePlaceCache {
	return &SqlitePlaceCache{DB: db}
}

// Fetch the cached place name for one coordinate key.
func (s *SqlitePlaceCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("place cache: db is nil")
	}

	if key == "" {
		return "", false, errors.New("get place cache: key must not be empty")
	}

	q := `
	SELECT place_name
	FROM place_cache
	WHERE coord_key = ?;
	`
	var name string
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get place cache: query place_cache table: %w", err)
	}

	return name, true, nil
}

// Store one place name under the given coordinate key.
func (s *SqlitePlaceCache) Put(ctx context.Context, key, name string) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	if key == "" {
		return errors.New("insert place cache: key must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO place_cache (coord_key, place_name)
	VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, name); err != nil {
		return fmt.Errorf("insert place cache key=%q: %w", key, err)
	}

	return nil
}
