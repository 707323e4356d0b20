package handlers

import (
	"net/http"

	"trip-planner/internal/api/dto"
)

// TokenHandler hands the map widget its Mapbox access token.
type TokenHandler struct {
	MapboxToken string
}

func (h *TokenHandler) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.MapboxToken == "" {
		writeError(w, r, http.StatusInternalServerError, "mapbox token not configured")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TokenResponse{MapboxToken: h.MapboxToken})
}
