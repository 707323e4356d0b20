package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the cache tables. The DDL is portable: the same statements
// run against the local SQLite cache and the shared Postgres cache set
// up by cachetool.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init cache schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init cache schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		stop_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at BIGINT NOT NULL
	);
	`

	createPlaceCacheQuery := `
	CREATE TABLE IF NOT EXISTS place_cache (
		coord_key TEXT PRIMARY KEY,
		place_name TEXT NOT NULL
	);
	`

	statements := []string{
		createRouteCacheQuery,
		createPlaceCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init cache schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init cache schema: commit tx: %w", err)
	}

	return nil
}
