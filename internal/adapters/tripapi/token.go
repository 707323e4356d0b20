package tripapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"trip-planner/internal/api/dto"
	"trip-planner/internal/platform/obs"
)

// MapboxToken fetches the map access token the backend holds for the
// rendering widget and the geocoder. Consumed once at startup.
func (c *Client) MapboxToken(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "tripapi.MapboxToken")(&err)

	endpoint := c.baseURL + "/get_mapbox_token"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return "", fmt.Errorf("get mapbox token: %w", err)
	}
	defer resp.Body.Close()

	var decoded dto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	return decoded.MapboxToken, nil
}
