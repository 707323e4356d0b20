package domain

// An ordered list of waypoints. Order is significant: index 0 is the
// chosen start location and each consecutive pair is one route leg.
type Stops []Waypoint

// Return the identity sequence of the list.
func (s Stops) Keys() []string {
	keys := make([]string, len(s))
	for i, w := range s {
		keys[i] = w.Key()
	}
	return keys
}

// Return the index of the waypoint with the given address, or -1.
func (s Stops) IndexOf(address string) int {
	for i, w := range s {
		if w.Key() == address {
			return i
		}
	}
	return -1
}

// Report whether both lists visit the same identities in the same order.
// Comparison is by identity sequence, not element equality, so it holds
// across copies and across backend round-trips.
func (s Stops) EqualOrder(other Stops) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Key() != other[i].Key() {
			return false
		}
	}
	return true
}

// Return an independent copy of the list.
func (s Stops) Clone() Stops {
	if s == nil {
		return nil
	}
	out := make(Stops, len(s))
	copy(out, s)
	return out
}

// Return a new list with the waypoint at i removed. Relative order of the
// remaining waypoints is preserved.
func (s Stops) Delete(i int) Stops {
	out := make(Stops, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// Return a new list with the waypoint at i moved to the front. Relative
// order of the other waypoints is preserved.
func (s Stops) MoveToFront(i int) Stops {
	out := make(Stops, 0, len(s))
	out = append(out, s[i])
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
