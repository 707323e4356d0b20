package tripapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/ports"
)

func TestListMarkers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_markers" {
			t.Errorf("path = %q, want /get_markers", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]dto.MarkerResponse{
			{Address: "A", Lat: 33.45, Lng: -112.07},
			{Address: "B", Lat: 33.42, Lng: -111.94},
		})
	})

	client := newTestClient(t, handler)
	got, err := client.ListMarkers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d markers, want 2", len(got))
	}
	if got[0].Address != "A" || got[0].Coords.Lon != -112.07 || got[0].Coords.Lat != 33.45 {
		t.Errorf("marker 0 = %+v, want A at (-112.07, 33.45)", got[0])
	}
}

func TestDeleteMarkerPostsAddress(t *testing.T) {
	var gotAddress string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/delete_marker" {
			t.Errorf("request = %s %s, want POST /delete_marker", r.Method, r.URL.Path)
		}

		var req dto.DeleteMarkerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		gotAddress = req.Address

		json.NewEncoder(w).Encode(dto.DeleteMarkerResponse{Status: "deleted"})
	})

	client := newTestClient(t, handler)
	if err := client.DeleteMarker(context.Background(), "221B Baker St"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddress != "221B Baker St" {
		t.Errorf("backend received address %q, want %q", gotAddress, "221B Baker St")
	}
}

func TestDeleteMarkerBackendFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown marker", http.StatusNotFound)
	})

	client := newTestClient(t, handler)
	err := client.DeleteMarker(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error for a failed backend delete")
	}
	if !errors.Is(err, ports.ErrMarkerNotFound) {
		t.Fatalf("expected ErrMarkerNotFound for a 404, got %v", err)
	}
}

func TestMapboxToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_mapbox_token" {
			t.Errorf("path = %q, want /get_mapbox_token", r.URL.Path)
		}
		json.NewEncoder(w).Encode(dto.TokenResponse{MapboxToken: "pk.test"})
	})

	client := newTestClient(t, handler)
	got, err := client.MapboxToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pk.test" {
		t.Errorf("token = %q, want pk.test", got)
	}
}
