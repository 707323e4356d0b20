package services

import (
	"math"

	"trip-planner/internal/domain"
)

// Pick a visiting order for intermediate stops using a greedy
// nearest-neighbor walk from the origin.
//
// The algorithm minimizes immediate travel distance at each step.
// It does not attempt global route optimization (e.g., TSP solvers).
// The design prioritizes determinism and simplicity over optimality.
// Routing an already optimized order reproduces it unchanged.
//
// The returned slice holds indices into stops, in visiting order.
func NearestNeighborOrder(origin domain.Coordinates, stops []domain.Coordinates) []int {
	order := make([]int, 0, len(stops))
	remaining := make(map[int]struct{}, len(stops))
	for i := range stops {
		remaining[i] = struct{}{}
	}

	current := origin
	for len(remaining) > 0 {
		best := -1
		minDistance := math.MaxFloat64

		// Select the nearest remaining stop (greedy step.)
		for i := range stops {
			if _, ok := remaining[i]; !ok {
				continue
			}
			// Ascending index scan makes the lowest index win ties,
			// keeping the order deterministic.
			if d := current.DistanceTo(stops[i]); d < minDistance {
				minDistance = d
				best = i
			}
		}

		order = append(order, best)
		delete(remaining, best)
		current = stops[best]
	}

	return order
}
