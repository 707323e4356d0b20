package domain

// Represents a single stop shown on the trip map.
// A Waypoint pairs the address displayed in the marker popup with the
// geographic position used for routing and rendering.
type Waypoint struct {
	Address string
	Coords  Coordinates
}

// Return the identity used to match waypoints across backend responses
// and local state. The backend keys markers by address (delete takes only
// an address), so two waypoints sharing an address are indistinguishable.
func (w Waypoint) Key() string { return w.Address }
