package ports

import (
	"context"
	"errors"

	"trip-planner/internal/domain"
)

// ErrMarkerNotFound reports a delete for an address no stored marker has.
var ErrMarkerNotFound = errors.New("marker not found")

// Port: a boundary for the marker collection behind the map. The planner
// reaches it over HTTP while the dev backend serves it from storage; both
// sides implement the same contract.
type MarkerRepository interface {
	// Retrieve all markers available for routing.
	ListMarkers(ctx context.Context) ([]domain.Waypoint, error)
	// Remove the marker with the given address. Deleting an unknown
	// address wraps ErrMarkerNotFound.
	DeleteMarker(ctx context.Context, address string) error
}
