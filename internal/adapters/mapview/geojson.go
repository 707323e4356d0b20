package mapview

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

// GeoJSONView is a headless MapView that persists every render as a
// GeoJSON snapshot. Each write rebuilds the whole FeatureCollection from
// current state, so a render never inherits markers, popups or geometry
// from the previous one.
type GeoJSONView struct {
	mu      sync.Mutex
	path    string
	markers []ports.MarkerStyle
	line    []domain.Coordinates
	center  *domain.Coordinates
	onClick func(at domain.Coordinates)
}

// NewGeoJSONView builds a view writing to path. The access token is the
// one fetched from the backend at startup; the snapshot itself carries
// no token, but a missing one means the map widget downstream cannot
// load, so the degradation is reported once here.
func NewGeoJSONView(path, accessToken string) *GeoJSONView {
	if accessToken == "" {
		log.Printf("mapview: no access token; widget rendering will be degraded")
	}
	return &GeoJSONView{path: path}
}

func (v *GeoJSONView) SetMarkers(markers []ports.MarkerStyle) {
	v.mu.Lock()
	v.markers = append([]ports.MarkerStyle(nil), markers...)
	v.mu.Unlock()
	v.write()
}

func (v *GeoJSONView) SetRouteLine(path []domain.Coordinates) {
	v.mu.Lock()
	v.line = append([]domain.Coordinates(nil), path...)
	v.mu.Unlock()
	v.write()
}

func (v *GeoJSONView) FlyTo(at domain.Coordinates) {
	v.mu.Lock()
	center := at
	v.center = &center
	v.mu.Unlock()
	v.write()
}

func (v *GeoJSONView) OnClick(handler func(at domain.Coordinates)) {
	v.mu.Lock()
	v.onClick = handler
	v.mu.Unlock()
}

// Click feeds a position into the registered click handler. The headless
// view has no input surface of its own; the shell calls this for lookup
// commands.
func (v *GeoJSONView) Click(at domain.Coordinates) {
	v.mu.Lock()
	handler := v.onClick
	v.mu.Unlock()

	if handler != nil {
		handler(at)
	}
}

func (v *GeoJSONView) write() {
	v.mu.Lock()
	fc := geojson.NewFeatureCollection()

	for i, m := range v.markers {
		f := geojson.NewFeature(orb.Point{m.Position.Lon, m.Position.Lat})
		f.Properties["kind"] = "marker"
		f.Properties["sequence"] = i
		f.Properties["color_class"] = m.ColorClass
		f.Properties["popup"] = m.PopupText
		fc.Append(f)
	}

	if len(v.line) > 1 {
		line := make(orb.LineString, 0, len(v.line))
		for _, p := range v.line {
			line = append(line, orb.Point{p.Lon, p.Lat})
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		fc.Append(f)
	}

	if v.center != nil {
		f := geojson.NewFeature(orb.Point{v.center.Lon, v.center.Lat})
		f.Properties["kind"] = "center"
		fc.Append(f)
	}

	path := v.path
	v.mu.Unlock()

	data, err := fc.MarshalJSON()
	if err != nil {
		log.Printf("mapview: marshal snapshot: %v", err)
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("mapview: create snapshot dir: %v", err)
			return
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("mapview: write snapshot: %v", err)
	}
}
