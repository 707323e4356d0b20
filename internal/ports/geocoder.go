package ports

import (
	"context"
	"trip-planner/internal/domain"
)

// Contract for resolving a map position to a human-readable place name.
type Geocoder interface {
	// Return the place name nearest to the given position.
	ReverseGeocode(ctx context.Context, at domain.Coordinates) (string, error)
}
