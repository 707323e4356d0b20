package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

// SQLite-backed implementation of the MarkerRepository port, used by the
// dev backend to serve the marker endpoints.
type SqliteMarkerRepository struct{ DB *sql.DB }

func NewSqliteMarkerRepository(db *sql.DB) *SqliteMarkerRepository {
	return &SqliteMarkerRepository{DB: db}
}

// Return all markers in their stored order.
func (s *SqliteMarkerRepository) ListMarkers(ctx context.Context) ([]domain.Waypoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite marker repository: DB is nil")
	}

	query := `
	SELECT
		address,
		lon,
		lat
	FROM markers
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list markers: query markers table: %w", err)
	}
	defer rows.Close()

	markers := make([]domain.Waypoint, 0, 16)
	for rows.Next() {
		var address string
		var lon, lat float64
		if err := rows.Scan(&address, &lon, &lat); err != nil {
			return nil, fmt.Errorf("list markers: scan row: %w", err)
		}
		markers = append(markers, domain.Waypoint{
			Address: address,
			Coords:  domain.Coordinates{Lon: lon, Lat: lat},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list markers: row iteration: %w", err)
	}

	return markers, nil
}

// Remove one marker by address.
func (s *SqliteMarkerRepository) DeleteMarker(ctx context.Context, address string) error {
	if s.DB == nil {
		return errors.New("sqlite marker repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM markers WHERE address = ?;`, address)
	if err != nil {
		return fmt.Errorf("delete marker %q: %w", address, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete marker %q: rows affected: %w", address, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete marker %q: %w", address, ports.ErrMarkerNotFound)
	}

	return nil
}
