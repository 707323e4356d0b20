package tripapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
	"trip-planner/internal/ports"
)

// ListMarkers retrieves every marker the backend knows about, in the
// order the backend returns them.
func (c *Client) ListMarkers(ctx context.Context) (_ []domain.Waypoint, err error) {
	defer obs.Time(ctx, "tripapi.ListMarkers")(&err)

	endpoint := c.baseURL + "/get_markers"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}
	defer resp.Body.Close()

	var decoded []dto.MarkerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode markers response: %w", err)
	}

	out := make([]domain.Waypoint, 0, len(decoded))
	for _, m := range decoded {
		out = append(out, domain.Waypoint{
			Address: m.Address,
			Coords:  domain.Coordinates{Lon: m.Lng, Lat: m.Lat},
		})
	}

	return out, nil
}

// DeleteMarker removes one marker by address on the backend. Callers
// must not mutate their local list unless this succeeds.
func (c *Client) DeleteMarker(ctx context.Context, address string) (err error) {
	defer obs.Time(ctx, "tripapi.DeleteMarker")(&err)

	payload, err := json.Marshal(dto.DeleteMarkerRequest{Address: address})
	if err != nil {
		return fmt.Errorf("marshal delete request: %w", err)
	}

	endpoint := c.baseURL + "/delete_marker"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return fmt.Errorf("delete marker %q: %w", address, ports.ErrMarkerNotFound)
		}
		return fmt.Errorf("delete marker %q: %w", address, err)
	}
	resp.Body.Close()

	return nil
}
