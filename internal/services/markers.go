package services

import (
	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

// Compute the marker styling for a stop sequence.
//
// The waypoint at the current stop is styled "current", its successor
// "next", and every other stop "default". The mapping is pure and has
// no memory of past styles; callers re-render from scratch on every
// change.
func PresentMarkers(stops domain.Stops, currentStop int) []ports.MarkerStyle {
	styles := make([]ports.MarkerStyle, 0, len(stops))
	for i, w := range stops {
		class := ports.MarkerDefault
		switch i {
		case currentStop:
			class = ports.MarkerCurrent
		case currentStop + 1:
			class = ports.MarkerNext
		}

		styles = append(styles, ports.MarkerStyle{
			Position:   w.Coords,
			ColorClass: class,
			PopupText:  w.Address,
		})
	}
	return styles
}
