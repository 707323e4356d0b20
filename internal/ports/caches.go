package ports

import (
	"context"
	"trip-planner/internal/domain"
)

// Port: cached routes keyed by the submitted stop order. A miss returns
// (nil, nil); cache failures are errors so callers can degrade to the
// backend instead of failing the route.
type RouteCache interface {
	Get(ctx context.Context, key string) (*domain.RouteResult, error)
	Put(ctx context.Context, key string, route *domain.RouteResult) error
}

// Port: cached reverse-geocode results keyed by a rounded coordinate
// string. A miss is reported with ok=false.
type PlaceCache interface {
	Get(ctx context.Context, key string) (name string, ok bool, err error)
	Put(ctx context.Context, key, name string) error
}
