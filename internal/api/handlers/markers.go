package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/ports"
)

// MarkerHandler exposes the stored trip markers.
type MarkerHandler struct {
	Repo ports.MarkerRepository
}

// List returns every marker as a bare JSON array, the shape the map
// client consumes on load.
func (h *MarkerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	markers, err := h.Repo.ListMarkers(r.Context())
	if err != nil {
		log.Printf("list markers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.MarkerResponse, 0, len(markers))
	for _, m := range markers {
		res = append(res, dto.MarkerResponse{
			Address: m.Address,
			Lat:     m.Coords.Lat,
			Lng:     m.Coords.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Delete removes one marker by address.
func (h *MarkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DeleteMarkerRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	if err := h.Repo.DeleteMarker(r.Context(), address); err != nil {
		if errors.Is(err, ports.ErrMarkerNotFound) {
			writeError(w, r, http.StatusNotFound, "marker not found")
			return
		}
		log.Printf("delete marker failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteMarkerResponse{Status: "deleted"})
}
