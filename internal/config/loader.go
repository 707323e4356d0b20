package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads and validates the planner configuration from the given
// YAML file, applying defaults for anything left unset. Secrets (the
// Postgres cache URL) stay in the environment and are not part of the
// file.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config: validate %q: %w", path, err)
	}

	if cfg.Backend.TimeoutMS == 0 {
		cfg.Backend.TimeoutMS = 10000
	}
	if cfg.Mapbox.GeocodeURL == "" {
		cfg.Mapbox.GeocodeURL = "https://api.mapbox.com"
	}
	if cfg.Cache.Driver == "" {
		cfg.Cache.Driver = "none"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "data/planner.db"
	}
	if cfg.Cache.RedisAddr == "" {
		cfg.Cache.RedisAddr = "localhost:6379"
	}
	if cfg.Cache.RouteTTLMS == 0 {
		cfg.Cache.RouteTTLMS = 600000
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "data/route.geojson"
	}

	return &cfg, nil
}
