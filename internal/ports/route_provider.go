package ports

import (
	"context"
	"trip-planner/internal/domain"
)

// Contract for computing a drivable route over an ordered stop list.
// Providers may reorder the intermediate stops; the order actually routed
// comes back in RouteResult.OptimizedOrder with the first and last stop
// pinned. When no route can be produced the error is a
// *domain.RouteUnavailableError carrying the reason.
type RouteProvider interface {
	// Compute a route visiting every stop. Requires at least two stops.
	BuildRoute(ctx context.Context, stops domain.Stops) (*domain.RouteResult, error)
}
