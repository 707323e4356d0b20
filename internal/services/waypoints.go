package services

import (
	"trip-planner/internal/domain"
)

// WaypointStore holds the canonical stop list, the selected start
// location and the current stop pointer. Every operation keeps the
// list and the pointer consistent: after it returns the pointer is in
// bounds for the new list, with the empty list pinned to index 0.
//
// The store never computes routes. It only mutates the canonical
// state; the sync engine observes the changes and reacts. It is not
// safe for concurrent use on its own, the engine serializes access.
type WaypointStore struct {
	stops         domain.Stops
	currentStop   int
	startLocation string
}

// Load replaces the whole stop list. A previously selected start that
// survives the reload is moved back to the front; otherwise the first
// waypoint becomes the start. Loading an empty list clears the start.
func (s *WaypointStore) Load(initial domain.Stops) {
	s.stops = initial.Clone()
	s.currentStop = 0

	if len(s.stops) == 0 {
		s.startLocation = ""
		return
	}

	if s.startLocation != "" {
		if i := s.stops.IndexOf(s.startLocation); i >= 0 {
			s.stops = s.stops.MoveToFront(i)
			return
		}
	}
	s.startLocation = s.stops[0].Address
}

// Delete removes the waypoint with the given address and reports
// whether anything was removed. Deleting the start promotes the first
// remaining waypoint to start.
func (s *WaypointStore) Delete(address string) bool {
	i := s.stops.IndexOf(address)
	if i < 0 {
		return false
	}

	s.stops = s.stops.Delete(i)
	s.currentStop = 0

	if len(s.stops) == 0 {
		s.startLocation = ""
		return true
	}
	if address == s.startLocation {
		s.startLocation = s.stops[0].Address
	}
	return true
}

// SetStartLocation moves the waypoint with the given address to the
// front, keeping the relative order of the others. An address not in
// the list leaves the state unchanged and reports false.
func (s *WaypointStore) SetStartLocation(address string) bool {
	i := s.stops.IndexOf(address)
	if i < 0 {
		return false
	}

	s.stops = s.stops.MoveToFront(i)
	s.startLocation = address
	s.currentStop = 0
	return true
}

// ReplaceOrder adopts the visiting order the routing backend decided
// on. The first stop of the new order is the start by construction.
func (s *WaypointStore) ReplaceOrder(order domain.Stops) {
	s.stops = order.Clone()
	s.currentStop = 0

	if len(s.stops) == 0 {
		s.startLocation = ""
		return
	}
	s.startLocation = s.stops[0].Address
}

// Advance moves the current stop pointer one step forward and reports
// whether it moved. At the last stop (and on shorter lists) it is a
// no-op.
func (s *WaypointStore) Advance() bool {
	if s.currentStop >= len(s.stops)-1 {
		return false
	}
	s.currentStop++
	return true
}

func (s *WaypointStore) Stops() domain.Stops {
	return s.stops.Clone()
}

func (s *WaypointStore) CurrentStop() int {
	return s.currentStop
}

func (s *WaypointStore) StartLocation() string {
	return s.startLocation
}
