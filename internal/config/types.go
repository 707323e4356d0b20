package config

// BackendConfig locates the trip backend serving markers, directions and
// the map token.
type BackendConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// MapboxConfig contains reverse-geocoding configuration. The access token
// is not configured here: it is fetched from the backend at startup.
type MapboxConfig struct {
	GeocodeURL string `yaml:"geocodeURL" validate:"omitempty,url"`
}

// CacheConfig selects the route/place cache backing store.
// Driver "none" disables caching entirely.
type CacheConfig struct {
	Driver     string `yaml:"driver" validate:"omitempty,oneof=none sqlite postgres redis"`
	Path       string `yaml:"path"`
	RedisAddr  string `yaml:"redisAddr"`
	RouteTTLMS int    `yaml:"routeTTLMS" validate:"gte=0"`
}

// SnapshotConfig controls where the map snapshot is written.
type SnapshotConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root configuration structure for the planner.
type AppConfig struct {
	Backend  BackendConfig  `yaml:"backend" validate:"required"`
	Mapbox   MapboxConfig   `yaml:"mapbox"`
	Cache    CacheConfig    `yaml:"cache"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}
