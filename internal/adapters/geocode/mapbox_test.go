package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"trip-planner/internal/domain"
)

type fakePlaceCache struct {
	mu sync.Mutex
	m  map[string]string
}

func (f *fakePlaceCache) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.m[key]
	return name, ok, nil
}

func (f *fakePlaceCache) Put(ctx context.Context, key, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = make(map[string]string)
	}
	f.m[key] = name
	return nil
}

func TestReverseGeocode(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("access_token") != "pk.test" {
			t.Errorf("access_token = %q, want pk.test", r.URL.Query().Get("access_token"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"features": []map[string]any{{"place_name": "Heritage Square, Phoenix, Arizona"}},
		})
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cache := &fakePlaceCache{}
	geocoder, err := NewMapboxGeocoder(server.URL, "pk.test", cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := domain.Coordinates{Lon: -112.066, Lat: 33.45}

	got, err := geocoder.ReverseGeocode(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Heritage Square, Phoenix, Arizona" {
		t.Errorf("place = %q", got)
	}

	// second lookup of the same rounded position is served from cache
	if _, err := geocoder.ReverseGeocode(context.Background(), at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 1 {
		t.Errorf("mapbox received %d requests, want 1", requests)
	}
}

func TestReverseGeocodeNoResult(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"features": []any{}})
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	geocoder, err := NewMapboxGeocoder(server.URL, "pk.test", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := geocoder.ReverseGeocode(context.Background(), domain.Coordinates{}); err == nil {
		t.Fatal("expected an error when no features come back")
	}
}
