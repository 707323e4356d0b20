package tripapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
	"trip-planner/internal/polyline"
)

// Leg labels used when the backend's leg count does not line up with
// the reconstructed stop order.
const (
	unknownStartLabel = "Unknown Start"
	unknownEndLabel   = "Unknown End"
)

// BuildRoute asks the backend for a route over the given stops. The
// first stop is the origin, the last the destination, everything between
// is submitted for reordering; the order actually routed comes back in
// OptimizedOrder. Fewer than two stops never reaches the network.
func (c *Client) BuildRoute(ctx context.Context, stops domain.Stops) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "tripapi.BuildRoute")(&err)

	if len(stops) < 2 {
		return nil, &domain.RouteUnavailableError{Reason: domain.UnavailableInsufficientWaypoints}
	}

	key := routeKey(stops)
	// Check the persistent route cache before issuing external API calls.
	if c.routeCache != nil {
		cached, err := c.routeCache.Get(ctx, key)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	endpoint := c.baseURL + "/directions"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		q := req.URL.Query()
		q.Set("origin", formatPosition(stops[0].Coords))
		q.Set("destination", formatPosition(stops[len(stops)-1].Coords))
		if mids := stops[1 : len(stops)-1]; len(mids) > 0 {
			parts := make([]string, len(mids))
			for i, w := range mids {
				parts[i] = formatPosition(w.Coords)
			}
			q.Set("waypoints", strings.Join(parts, "|"))
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, &domain.RouteUnavailableError{
			Reason: domain.UnavailableBackendError,
			Err:    fmt.Errorf("directions request: %w", err),
		}
	}
	defer resp.Body.Close()

	var decoded dto.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.RouteUnavailableError{
			Reason: domain.UnavailableBackendError,
			Err:    fmt.Errorf("decode directions response: %w", err),
		}
	}

	result, err := normalizeRoute(stops, &decoded)
	if err != nil {
		return nil, &domain.RouteUnavailableError{Reason: domain.UnavailableBackendError, Err: err}
	}

	if c.routeCache != nil {
		if err := c.routeCache.Put(ctx, key, result); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
		// An optimized order is its own optimum, so the same result is
		// valid under the optimized order's key. Storing it there makes
		// the follow-up request after an order change a cache hit.
		if optKey := routeKey(result.OptimizedOrder); optKey != key {
			if err := c.routeCache.Put(ctx, optKey, result); err != nil {
				log.Printf("route cache write failed: %v", err)
			}
		}
	}

	return result, nil
}

// Cache identity of a stop order.
func routeKey(stops domain.Stops) string {
	return strings.Join(stops.Keys(), "|")
}

// Format a position as "lat,lng", the order the directions API expects.
func formatPosition(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// normalizeRoute turns the backend's wire response into a RouteResult:
// decoded geometry, reconstructed stop order, sanitized instructions and
// summed totals.
func normalizeRoute(submitted domain.Stops, decoded *dto.DirectionsResponse) (*domain.RouteResult, error) {
	if len(decoded.Routes) == 0 {
		return nil, errors.New("backend returned no routes")
	}
	route := decoded.Routes[0]
	if len(route.Legs) == 0 {
		return nil, errors.New("backend returned a route with no legs")
	}

	geometry, err := polyline.Decode(route.OverviewPolyline.Points)
	if err != nil {
		return nil, fmt.Errorf("decode overview polyline: %w", err)
	}

	order := reorderStops(submitted, route.WaypointOrder)

	legs := make([]domain.Leg, 0, len(route.Legs))
	totalMeters := 0
	totalSeconds := 0
	for i, l := range route.Legs {
		leg := domain.Leg{
			StartAddress:    unknownStartLabel,
			EndAddress:      unknownEndLabel,
			DistanceMeters:  l.Distance.Value,
			DistanceText:    l.Distance.Text,
			DurationSeconds: l.Duration.Value,
			DurationText:    l.Duration.Text,
		}
		if i < len(order) {
			leg.StartAddress = order[i].Address
		}
		if i+1 < len(order) {
			leg.EndAddress = order[i+1].Address
		}

		for _, s := range l.Steps {
			leg.Steps = append(leg.Steps, domain.Step{
				Instruction:  stripMarkup(s.HTMLInstructions),
				DistanceText: s.Distance.Text,
				DurationText: s.Duration.Text,
			})
		}

		totalMeters += l.Distance.Value
		totalSeconds += l.Duration.Value
		legs = append(legs, leg)
	}

	return &domain.RouteResult{
		OptimizedOrder:       order,
		Geometry:             geometry,
		Legs:                 legs,
		TotalDistanceMeters:  totalMeters,
		TotalDurationSeconds: totalSeconds,
	}, nil
}

// reorderStops applies the backend's waypoint_order permutation to the
// intermediate stops, keeping origin and destination pinned. An empty
// permutation means the submitted order stands. Out-of-range or repeated
// indices are skipped and intermediates the order misses follow in
// submitted order, so the result is always a permutation of the input:
// a malformed order must never drop a stop.
func reorderStops(submitted domain.Stops, waypointOrder []int) domain.Stops {
	mids := submitted[1 : len(submitted)-1]

	out := make(domain.Stops, 0, len(submitted))
	out = append(out, submitted[0])

	if len(waypointOrder) == 0 {
		out = append(out, mids...)
	} else {
		seen := make(map[int]struct{}, len(waypointOrder))
		for _, idx := range waypointOrder {
			if idx < 0 || idx >= len(mids) {
				continue
			}
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			out = append(out, mids[idx])
		}
		for i := range mids {
			if _, ok := seen[i]; !ok {
				out = append(out, mids[i])
			}
		}
	}

	return append(out, submitted[len(submitted)-1])
}
