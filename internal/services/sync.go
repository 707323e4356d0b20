package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
	"trip-planner/internal/ports"
)

// RouteSyncEngine keeps the published route in step with the waypoint
// list. Every list mutation bumps a generation counter and schedules a
// recomputation for that generation; a response whose generation is no
// longer current is dropped silently, so the latest mutation always
// wins over an older in-flight request.
//
// When the backend returns a different visiting order than the one
// submitted, the list is replaced with that order and the result is
// published in the same critical section, then exactly one follow-up
// recomputation confirms the new order. A response matching the
// submitted order is the fixed point and schedules nothing.
type RouteSyncEngine struct {
	mu      sync.Mutex
	store   WaypointStore
	gen     uint64
	current *domain.RouteResult

	markers ports.MarkerRepository
	routes  ports.RouteProvider
	updates chan struct{}
}

// Snapshot is a consistent copy of the engine state for rendering.
type Snapshot struct {
	Stops         domain.Stops
	CurrentStop   int
	StartLocation string
	Route         *domain.RouteResult
}

// RouteAvailable reports whether the route matches the stop list it was
// captured with. A route computed for an older list shape is stale and
// does not count as available.
func (s Snapshot) RouteAvailable() bool {
	return s.Route != nil && s.Route.OptimizedOrder.EqualOrder(s.Stops)
}

func NewRouteSyncEngine(markers ports.MarkerRepository, routes ports.RouteProvider) *RouteSyncEngine {
	return &RouteSyncEngine{
		markers: markers,
		routes:  routes,
		updates: make(chan struct{}, 1),
	}
}

// Updates signals after every published state change. The channel is
// coalescing: a receiver that falls behind sees one pending signal, not
// a backlog.
func (e *RouteSyncEngine) Updates() <-chan struct{} {
	return e.updates
}

// Refresh reloads the waypoint list from the backend and schedules a
// route recomputation for it.
func (e *RouteSyncEngine) Refresh(ctx context.Context) error {
	markers, err := e.markers.ListMarkers(ctx)
	if err != nil {
		return fmt.Errorf("route sync: list markers: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Load(markers)
	e.scheduleLocked(ctx)
	e.notify()
	return nil
}

// Delete removes a waypoint on the backend first and mirrors the
// removal locally only after the backend confirms. A backend failure
// leaves the local state untouched.
func (e *RouteSyncEngine) Delete(ctx context.Context, address string) error {
	if err := e.markers.DeleteMarker(ctx, address); err != nil {
		return fmt.Errorf("route sync: delete marker %q: %w", address, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.Delete(address) {
		return nil
	}
	e.scheduleLocked(ctx)
	e.notify()
	return nil
}

// SetStartLocation reorders the list so the given address leads it and
// schedules one recomputation. An address not in the list logs an
// error and changes nothing.
func (e *RouteSyncEngine) SetStartLocation(ctx context.Context, address string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.SetStartLocation(address) {
		log.Printf("route sync: set start location: address %q not in waypoint list", address)
		return false
	}
	e.scheduleLocked(ctx)
	e.notify()
	return true
}

// AdvanceCurrentStop moves the stop pointer forward and reports whether
// it moved. It requires a route that is current for the present list;
// while a recomputation is in flight the previous route is stale and
// the pointer holds still.
func (e *RouteSyncEngine) AdvanceCurrentStop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil || !e.current.OptimizedOrder.EqualOrder(e.store.stops) {
		return false
	}
	if !e.store.Advance() {
		return false
	}
	e.notify()
	return true
}

func (e *RouteSyncEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Stops:         e.store.Stops(),
		CurrentStop:   e.store.CurrentStop(),
		StartLocation: e.store.StartLocation(),
		Route:         e.current,
	}
}

// scheduleLocked starts a recomputation for the present list under a
// fresh generation. Callers hold e.mu. Below two waypoints there is
// nothing to route: the result becomes absent immediately and no
// request leaves the process.
func (e *RouteSyncEngine) scheduleLocked(ctx context.Context) {
	e.gen++

	if len(e.store.stops) < 2 {
		e.current = nil
		return
	}
	go e.run(ctx, e.gen, e.store.Stops())
}

func (e *RouteSyncEngine) run(ctx context.Context, gen uint64, stops domain.Stops) {
	ctx = obs.WithRequestID(ctx, uuid.NewString())
	result, err := e.routes.BuildRoute(ctx, stops)

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		// Superseded while in flight. The newer mutation owns the
		// outcome; this response is dropped without logging.
		return
	}

	if err != nil {
		log.Printf("route sync: compute route for %d stops: %v", len(stops), err)
		e.current = nil
		e.notify()
		return
	}

	if !result.OptimizedOrder.EqualOrder(stops) {
		// The backend's visiting order supersedes the submitted one.
		// List and result change together so readers never see one
		// without the other, then one follow-up confirms the order.
		e.store.ReplaceOrder(result.OptimizedOrder)
		e.current = result
		e.gen++
		next := e.gen
		go e.run(ctx, next, e.store.Stops())
		e.notify()
		return
	}

	e.current = result
	e.notify()
}

func (e *RouteSyncEngine) notify() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}
