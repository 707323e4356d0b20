package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/polyline"
)

func getDirections(t *testing.T, params url.Values) *httptest.ResponseRecorder {
	t.Helper()

	handler := &DirectionsHandler{}
	req := httptest.NewRequest(http.MethodGet, "/directions?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	handler.Directions(rec, req)
	return rec
}

func TestDirectionsReordersWaypoints(t *testing.T) {
	// build test data
	params := url.Values{}
	params.Set("origin", "0,0")
	params.Set("destination", "0.04,0")
	params.Set("waypoints", "0.03,0|0.01,0|0.02,0")

	// call the method under test
	rec := getDirections(t, params)

	// verify behavior
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.DirectionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(res.Routes))
	}
	route := res.Routes[0]

	wantOrder := []int{1, 2, 0}
	if len(route.WaypointOrder) != len(wantOrder) {
		t.Fatalf("waypoint_order = %v, want %v", route.WaypointOrder, wantOrder)
	}
	for i := range wantOrder {
		if route.WaypointOrder[i] != wantOrder[i] {
			t.Fatalf("waypoint_order = %v, want %v", route.WaypointOrder, wantOrder)
		}
	}

	if len(route.Legs) != 4 {
		t.Fatalf("expected 4 legs, got %d", len(route.Legs))
	}

	points, err := polyline.Decode(route.OverviewPolyline.Points)
	if err != nil {
		t.Fatalf("decode overview polyline: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 geometry points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Lat <= points[i-1].Lat {
			t.Fatalf("expected geometry to walk north, got latitudes %v then %v",
				points[i-1].Lat, points[i].Lat)
		}
	}

	// 0.01 degrees of latitude is roughly 1112 meters.
	leg := route.Legs[0]
	if leg.Distance.Value < 1100 || leg.Distance.Value > 1125 {
		t.Errorf("leg distance = %d, want about 1112", leg.Distance.Value)
	}
	if leg.Distance.Text != "1.1 km" {
		t.Errorf("leg distance text = %q, want %q", leg.Distance.Text, "1.1 km")
	}
	if leg.Duration.Value < 110 || leg.Duration.Value > 113 {
		t.Errorf("leg duration = %d, want about 111", leg.Duration.Value)
	}

	if len(leg.Steps) == 0 {
		t.Fatal("expected at least one step per leg")
	}
	if !strings.Contains(leg.Steps[0].HTMLInstructions, "<b>") {
		t.Errorf("expected markup-bearing instructions, got %q", leg.Steps[0].HTMLInstructions)
	}
	if !strings.Contains(leg.Steps[0].HTMLInstructions, "north") {
		t.Errorf("expected a northbound instruction, got %q", leg.Steps[0].HTMLInstructions)
	}
}

func TestDirectionsWithoutWaypoints(t *testing.T) {
	params := url.Values{}
	params.Set("origin", "33.45,-112.07")
	params.Set("destination", "33.50,-112.00")

	rec := getDirections(t, params)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.DirectionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	route := res.Routes[0]
	if len(route.WaypointOrder) != 0 {
		t.Fatalf("waypoint_order = %v, want empty", route.WaypointOrder)
	}
	if len(route.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(route.Legs))
	}
}

func TestDirectionsRequiresEndpoints(t *testing.T) {
	params := url.Values{}
	params.Set("origin", "0,0")

	if rec := getDirections(t, params); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDirectionsRejectsMalformedPosition(t *testing.T) {
	params := url.Values{}
	params.Set("origin", "not-a-position")
	params.Set("destination", "0.04,0")

	if rec := getDirections(t, params); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDirectionsMethodNotAllowed(t *testing.T) {
	handler := &DirectionsHandler{}
	req := httptest.NewRequest(http.MethodPost, "/directions", nil)
	rec := httptest.NewRecorder()

	handler.Directions(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
