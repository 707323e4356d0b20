package ports

import "trip-planner/internal/domain"

// Marker color classes the presentation layer emits.
const (
	MarkerCurrent = "current"
	MarkerNext    = "next"
	MarkerDefault = "default"
)

// One rendered marker: position plus the color class and popup text the
// view should apply.
type MarkerStyle struct {
	Position   domain.Coordinates
	ColorClass string
	PopupText  string
}

// Port: the drawable map surface. SetMarkers replaces every previously
// drawn marker and popup and SetRouteLine replaces the route geometry
// (nil clears it), so each render starts from a clean surface and
// repeated renders of the same state are idempotent.
type MapView interface {
	SetMarkers(markers []MarkerStyle)
	SetRouteLine(path []domain.Coordinates)
	// Center the view on a position.
	FlyTo(at domain.Coordinates)
	// Register the handler invoked when the user clicks the map.
	OnClick(handler func(at domain.Coordinates))
}
