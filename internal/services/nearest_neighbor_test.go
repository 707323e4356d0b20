package services

import (
	"testing"

	"trip-planner/internal/domain"
)

func TestNearestNeighborOrder(t *testing.T) {
	origin := domain.Coordinates{Lon: 0, Lat: 0}
	stops := []domain.Coordinates{
		{Lon: 0, Lat: 0.03},
		{Lon: 0, Lat: 0.01},
		{Lon: 0, Lat: 0.02},
	}

	order := NearestNeighborOrder(origin, stops)

	want := []int{1, 2, 0}
	if len(order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestNearestNeighborOrderTieKeepsLowestIndex(t *testing.T) {
	origin := domain.Coordinates{Lon: 0, Lat: 0}
	stops := []domain.Coordinates{
		{Lon: 0.01, Lat: 0},
		{Lon: -0.01, Lat: 0},
	}

	order := NearestNeighborOrder(origin, stops)

	if order[0] != 0 || order[1] != 1 {
		t.Fatalf("order = %v, want [0 1]", order)
	}
}

func TestNearestNeighborOrderEmpty(t *testing.T) {
	if order := NearestNeighborOrder(domain.Coordinates{}, nil); len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}
