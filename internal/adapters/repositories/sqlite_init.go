package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite marker store schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createMarkersQuery := `
	CREATE TABLE IF NOT EXISTS markers (
		address TEXT PRIMARY KEY,
		lon REAL NOT NULL,
		lat REAL NOT NULL,
		position INTEGER NOT NULL
	);
	`

	if _, err := db.Exec(createMarkersQuery); err != nil {
		return fmt.Errorf("init schema: create markers table: %w", err)
	}

	return nil
}

type MarkerSeed struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Populate the marker store from a JSON file. Seeding is idempotent:
// re-running replaces rows by address and keeps the file order.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed markers: read %q: %w", jsonPath, err)
	}

	var data []MarkerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed markers: parse json: %w", err)
	}

	rows := make([]MarkerSeed, 0, len(data))
	for i, item := range data {
		address := strings.TrimSpace(item.Address)
		if address == "" {
			return fmt.Errorf("seed markers: item at index %d: address cannot be empty", i+1)
		}
		rows = append(rows, MarkerSeed{Address: address, Lat: item.Lat, Lng: item.Lng})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed markers: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO markers (
		address,
		lon,
		lat,
		position
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed markers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range rows {
		if _, err := stmt.Exec(m.Address, m.Lng, m.Lat, i); err != nil {
			return fmt.Errorf("seed markers: insert address=%q: %w", m.Address, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed markers: commit tx: %w", err)
	}

	return nil
}
