package api

import (
	"net/http"

	"trip-planner/internal/api/handlers"
	"trip-planner/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.MarkerRepository, mapboxToken string) http.Handler {
	mux := http.NewServeMux()

	markerHandler := &handlers.MarkerHandler{Repo: repo}
	directionsHandler := &handlers.DirectionsHandler{}
	tokenHandler := &handlers.TokenHandler{MapboxToken: mapboxToken}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/get_markers", markerHandler.List)
	mux.HandleFunc("/delete_marker", markerHandler.Delete)
	mux.HandleFunc("/directions", directionsHandler.Directions)
	mux.HandleFunc("/get_mapbox_token", tokenHandler.Token)

	return loggingMiddleware(mux)
}
