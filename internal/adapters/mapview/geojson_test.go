package mapview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"

	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

func readSnapshot(t *testing.T, path string) *geojson.FeatureCollection {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	return fc
}

func countKind(fc *geojson.FeatureCollection, kind string) int {
	n := 0
	for _, f := range fc.Features {
		if f.Properties.MustString("kind", "") == kind {
			n++
		}
	}
	return n
}

func TestGeoJSONViewRendersMarkersAndRoute(t *testing.T) {
	// build test data
	path := filepath.Join(t.TempDir(), "route.geojson")
	view := NewGeoJSONView(path, "pk.test")
	markers := []ports.MarkerStyle{
		{Position: domain.Coordinates{Lon: -112.07, Lat: 33.45}, ColorClass: ports.MarkerCurrent, PopupText: "A"},
		{Position: domain.Coordinates{Lon: -112.00, Lat: 33.50}, ColorClass: ports.MarkerNext, PopupText: "B"},
		{Position: domain.Coordinates{Lon: -111.93, Lat: 33.42}, ColorClass: ports.MarkerDefault, PopupText: "C"},
	}

	// call the method under test
	view.SetMarkers(markers)
	view.SetRouteLine([]domain.Coordinates{
		{Lon: -112.07, Lat: 33.45},
		{Lon: -112.00, Lat: 33.50},
		{Lon: -111.93, Lat: 33.42},
	})

	// verify behavior
	fc := readSnapshot(t, path)
	if got := countKind(fc, "marker"); got != 3 {
		t.Fatalf("expected 3 marker features, got %d", got)
	}
	if got := countKind(fc, "route"); got != 1 {
		t.Fatalf("expected 1 route feature, got %d", got)
	}
	for _, f := range fc.Features {
		if f.Properties.MustString("popup", "") == "A" {
			if class := f.Properties.MustString("color_class", ""); class != ports.MarkerCurrent {
				t.Errorf("expected marker A to carry class %q, got %q", ports.MarkerCurrent, class)
			}
		}
	}
}

func TestGeoJSONViewReplacesPreviousRender(t *testing.T) {
	// build test data
	path := filepath.Join(t.TempDir(), "route.geojson")
	view := NewGeoJSONView(path, "pk.test")
	view.SetMarkers([]ports.MarkerStyle{
		{Position: domain.Coordinates{Lon: -112.07, Lat: 33.45}, ColorClass: ports.MarkerCurrent, PopupText: "A"},
		{Position: domain.Coordinates{Lon: -112.00, Lat: 33.50}, ColorClass: ports.MarkerDefault, PopupText: "B"},
	})
	view.SetRouteLine([]domain.Coordinates{
		{Lon: -112.07, Lat: 33.45},
		{Lon: -112.00, Lat: 33.50},
	})

	// call the method under test
	view.SetMarkers([]ports.MarkerStyle{
		{Position: domain.Coordinates{Lon: -112.07, Lat: 33.45}, ColorClass: ports.MarkerCurrent, PopupText: "A"},
	})
	view.SetRouteLine(nil)

	// verify behavior
	fc := readSnapshot(t, path)
	if got := countKind(fc, "marker"); got != 1 {
		t.Fatalf("expected rerender to replace markers, got %d marker features", got)
	}
	if got := countKind(fc, "route"); got != 0 {
		t.Fatalf("expected cleared route line, got %d route features", got)
	}
}

func TestGeoJSONViewClickDispatch(t *testing.T) {
	// build test data
	path := filepath.Join(t.TempDir(), "route.geojson")
	view := NewGeoJSONView(path, "pk.test")
	var got domain.Coordinates
	view.OnClick(func(at domain.Coordinates) { got = at })

	// call the method under test
	view.Click(domain.Coordinates{Lon: -112.07, Lat: 33.45})

	// verify behavior
	if got.Lon != -112.07 || got.Lat != 33.45 {
		t.Fatalf("expected click handler to receive position, got %+v", got)
	}
}
