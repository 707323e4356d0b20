package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/domain"
	"trip-planner/internal/polyline"
	"trip-planner/internal/services"
)

// Assumed travel speed for synthetic leg durations.
const averageSpeedMetersPerSecond = 10.0

// DirectionsHandler serves a Directions-shaped response computed from
// straight-line geometry. Intermediate waypoints are reordered with the
// same greedy heuristic on every call, so resubmitting an optimized
// order returns the identity order.
type DirectionsHandler struct{}

func (h *DirectionsHandler) Directions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()

	origin, err := parsePosition(query.Get("origin"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("origin: %v", err))
		return
	}
	destination, err := parsePosition(query.Get("destination"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("destination: %v", err))
		return
	}

	var intermediates []domain.Coordinates
	if raw := query.Get("waypoints"); raw != "" {
		for _, part := range strings.Split(raw, "|") {
			if part == "" {
				continue
			}
			p, err := parsePosition(part)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, fmt.Sprintf("waypoints: %v", err))
				return
			}
			intermediates = append(intermediates, p)
		}
	}

	order := services.NearestNeighborOrder(origin, intermediates)

	visit := make([]domain.Coordinates, 0, len(intermediates)+2)
	visit = append(visit, origin)
	for _, i := range order {
		visit = append(visit, intermediates[i])
	}
	visit = append(visit, destination)

	legs := make([]dto.LegResponse, 0, len(visit)-1)
	for i := 0; i+1 < len(visit); i++ {
		legs = append(legs, buildLeg(visit[i], visit[i+1], i+1 == len(visit)-1))
	}

	res := dto.DirectionsResponse{
		Routes: []dto.RouteResponse{
			{
				OverviewPolyline: dto.PolylineResponse{Points: polyline.Encode(visit)},
				WaypointOrder:    order,
				Legs:             legs,
			},
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}

// buildLeg synthesizes one leg between consecutive stops: great-circle
// distance, a fixed-speed duration, and markup-bearing instructions the
// way a real directions backend writes them.
func buildLeg(from, to domain.Coordinates, final bool) dto.LegResponse {
	meters := int(math.Round(from.DistanceTo(to)))
	seconds := int(math.Round(float64(meters) / averageSpeedMetersPerSecond))

	distance := dto.TextValueResponse{Text: formatDistance(meters), Value: meters}
	duration := dto.TextValueResponse{Text: formatDuration(seconds), Value: seconds}

	steps := []dto.StepResponse{
		{
			HTMLInstructions: fmt.Sprintf("Head <b>%s</b> toward %.5f,%.5f", bearingLabel(from, to), to.Lat, to.Lon),
			Distance:         distance,
			Duration:         duration,
		},
	}
	if final {
		steps = append(steps, dto.StepResponse{
			HTMLInstructions: "Arrive at <b>your destination</b>",
			Distance:         dto.TextValueResponse{Text: "0 m"},
			Duration:         dto.TextValueResponse{Text: "0 secs"},
		})
	}

	return dto.LegResponse{
		Distance: distance,
		Duration: duration,
		Steps:    steps,
	}
}

// parsePosition reads the wire position format, latitude first.
func parsePosition(raw string) (domain.Coordinates, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return domain.Coordinates{}, fmt.Errorf("position %q must be lat,lng", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("position %q: invalid latitude", raw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("position %q: invalid longitude", raw)
	}

	return domain.Coordinates{Lon: lng, Lat: lat}, nil
}

// bearingLabel names the compass direction from one stop to the next.
// A flat projection is accurate enough for a display hint.
func bearingLabel(from, to domain.Coordinates) string {
	dx := (to.Lon - from.Lon) * math.Cos((from.Lat+to.Lat)/2*math.Pi/180)
	dy := to.Lat - from.Lat

	angle := math.Atan2(dx, dy) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	labels := [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}
	return labels[int(math.Round(angle/45))%len(labels)]
}

func formatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return pluralize(seconds, "sec")
	}

	minutes := (seconds + 30) / 60
	if minutes < 60 {
		return pluralize(minutes, "min")
	}
	if minutes%60 == 0 {
		return pluralize(minutes/60, "hour")
	}
	return fmt.Sprintf("%s %s", pluralize(minutes/60, "hour"), pluralize(minutes%60, "min"))
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
