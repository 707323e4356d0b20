package domain

import "fmt"

// Represents a single maneuver within a leg, as produced by the routing
// backend. Instruction text has all markup stripped.
type Step struct {
	Instruction  string
	DistanceText string
	DurationText string
}

// Represents one segment of the route between two consecutive stops in
// the optimized order. Display texts come from the backend verbatim;
// numeric values are meters and seconds.
type Leg struct {
	StartAddress    string
	EndAddress      string
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
	Steps           []Step
}

// Represents a computed route over an ordered waypoint list.
// A RouteResult is the output of the routing backend after optimization
// and describes the stop order actually routed, the drawable geometry,
// per-leg details and aggregate metrics. It is immutable result data.
type RouteResult struct {
	OptimizedOrder       Stops
	Geometry             []Coordinates
	Legs                 []Leg
	TotalDistanceMeters  int
	TotalDurationSeconds int
}

// Why a route could not be produced.
type UnavailableReason string

const (
	// Fewer than two waypoints: a route needs an origin and a destination.
	UnavailableInsufficientWaypoints UnavailableReason = "insufficient waypoints"
	// The backend failed, returned no routes, or returned undecodable data.
	UnavailableBackendError UnavailableReason = "backend error"
)

// Signals that no route exists for the current waypoint list. Callers
// keep the map usable in a degraded state: markers without a route line.
type RouteUnavailableError struct {
	Reason UnavailableReason
	Err    error
}

func (e *RouteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("route unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("route unavailable (%s)", e.Reason)
}

func (e *RouteUnavailableError) Unwrap() error { return e.Err }
