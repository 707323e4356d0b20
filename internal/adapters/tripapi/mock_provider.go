package tripapi

import (
	"context"
	"fmt"
	"sync"

	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

// MockRouteProvider scripts BuildRoute for tests. Every call is recorded
// before the hook runs; hooks may block to model in-flight requests.
type MockRouteProvider struct {
	mu      sync.Mutex
	onBuild func(stops domain.Stops) (*domain.RouteResult, error)
	calls   []domain.Stops
}

func NewMockRouteProvider(onBuild func(stops domain.Stops) (*domain.RouteResult, error)) *MockRouteProvider {
	return &MockRouteProvider{onBuild: onBuild}
}

func (p *MockRouteProvider) BuildRoute(ctx context.Context, stops domain.Stops) (*domain.RouteResult, error) {
	p.mu.Lock()
	p.calls = append(p.calls, stops.Clone())
	fn := p.onBuild
	p.mu.Unlock()

	if fn == nil {
		return IdentityRoute(stops), nil
	}
	return fn(stops)
}

// Calls returns a copy of every stop list submitted so far.
func (p *MockRouteProvider) Calls() []domain.Stops {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.Stops, len(p.calls))
	copy(out, p.calls)
	return out
}

// IdentityRoute builds a minimal successful result that keeps the
// submitted order: one leg per consecutive pair, geometry straight
// through the stops.
func IdentityRoute(stops domain.Stops) *domain.RouteResult {
	var legs []domain.Leg
	geometry := make([]domain.Coordinates, 0, len(stops))
	for i, w := range stops {
		geometry = append(geometry, w.Coords)
		if i+1 < len(stops) {
			legs = append(legs, domain.Leg{
				StartAddress: stops[i].Address,
				EndAddress:   stops[i+1].Address,
			})
		}
	}

	return &domain.RouteResult{
		OptimizedOrder: stops.Clone(),
		Geometry:       geometry,
		Legs:           legs,
	}
}

// MockMarkerRepository scripts the marker backend for tests.
type MockMarkerRepository struct {
	mu        sync.Mutex
	markers   []domain.Waypoint
	deleteErr error
	deleted   []string
}

func NewMockMarkerRepository(markers []domain.Waypoint) *MockMarkerRepository {
	return &MockMarkerRepository{markers: append([]domain.Waypoint(nil), markers...)}
}

// FailDeletes makes every subsequent DeleteMarker return err.
func (r *MockMarkerRepository) FailDeletes(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteErr = err
}

func (r *MockMarkerRepository) ListMarkers(ctx context.Context) ([]domain.Waypoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Waypoint(nil), r.markers...), nil
}

func (r *MockMarkerRepository) DeleteMarker(ctx context.Context, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return r.deleteErr
	}

	for i, m := range r.markers {
		if m.Address == address {
			r.markers = append(r.markers[:i], r.markers[i+1:]...)
			r.deleted = append(r.deleted, address)
			return nil
		}
	}
	return fmt.Errorf("delete marker %q: %w", address, ports.ErrMarkerNotFound)
}

// Deleted returns the addresses removed so far.
func (r *MockMarkerRepository) Deleted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleted...)
}
