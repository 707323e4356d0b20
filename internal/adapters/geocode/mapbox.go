package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
	"trip-planner/internal/ports"
)

type placesResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
	} `json:"features"`
}

// MapboxGeocoder resolves map positions to place names via the Mapbox
// places API, fronted by a persistent place cache. The access token is
// the one the trip backend hands out at startup.
type MapboxGeocoder struct {
	session     *http.Client
	accessToken string
	baseURL     string
	placeCache  ports.PlaceCache
}

func NewMapboxGeocoder(baseURL, accessToken string, placeCache ports.PlaceCache) (*MapboxGeocoder, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("mapbox access token is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.mapbox.com"
	}

	return &MapboxGeocoder{
		session:     &http.Client{Timeout: 10 * time.Second},
		accessToken: accessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
		placeCache:  placeCache,
	}, nil
}

// Cache key rounded to the geometry precision (1e-5 degrees) so nearby
// clicks share an entry.
func placeKey(at domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", at.Lat, at.Lon)
}

// ReverseGeocode returns the most relevant place name at the position.
// Failures leave the caller with the raw coordinates; nothing here is
// fatal to the map.
func (g *MapboxGeocoder) ReverseGeocode(ctx context.Context, at domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "geocode.ReverseGeocode")(&err)

	key := placeKey(at)
	if g.placeCache != nil {
		name, ok, err := g.placeCache.Get(ctx, key)
		if err != nil {
			log.Printf("place cache read failed: %v", err)
		} else if ok {
			return name, nil
		}
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%.6f,%.6f.json", g.baseURL, at.Lon, at.Lat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create reverse geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_token", g.accessToken)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode %s: unexpected status: %d", key, resp.StatusCode)
	}

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return "", fmt.Errorf("no place found at %s", key)
	}

	name := decoded.Features[0].PlaceName
	if g.placeCache != nil {
		if err := g.placeCache.Put(ctx, key, name); err != nil {
			log.Printf("place cache write failed: %v", err)
		}
	}

	return name, nil
}
