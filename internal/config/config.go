// Package config handles configuration loading and the zone catalogue.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/geokit/internal/geo"
	"github.com/woozymasta/geokit/internal/parser"

	"gopkg.in/yaml.v3"
)

// Configuration errors reported by Validate.
var (
	ErrZoneName      = errors.New("zone name is empty")
	ErrDuplicateZone = errors.New("duplicate zone name or alias")
	ErrZoneSource    = errors.New("zone needs exactly one of wkt or geojson")
)

// Config represents the root configuration file structure.
type Config struct {
	LogLevel      string  `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	Zones         []Zone  `yaml:"zones" json:"zones"`
	ErrorDistance float64 `yaml:"error_distance,omitempty" json:"error_distance,omitempty"`
}

// Zone is a named geometry the query server answers for.
type Zone struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	// defining GeoJSON directly in config.yaml
	GeoJSON map[string]any `yaml:"geojson,omitempty" json:"-"`

	// per-zone tolerance in meters, overrides Config.ErrorDistance
	ErrorDistance *float64 `yaml:"error_distance,omitempty" json:"error_distance,omitempty"`

	Name    string   `yaml:"name" json:"name"`
	WKT     string   `yaml:"wkt,omitempty" json:"-"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Load reads, parses and validates the YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks zone names and sources. Geometries are not built here.
func (c *Config) Validate() error {
	seen := make(map[string]string)

	for i, z := range c.Zones {
		if z.Name == "" {
			return fmt.Errorf("zone %d: %w", i, ErrZoneName)
		}
		if (z.WKT == "") == (z.GeoJSON == nil) {
			return fmt.Errorf("zone %q: %w", z.Name, ErrZoneSource)
		}

		for _, key := range append([]string{z.Name}, z.Aliases...) {
			if owner, ok := seen[key]; ok {
				return fmt.Errorf("zone %q: %w: %q already used by %q", z.Name, ErrDuplicateZone, key, owner)
			}
			seen[key] = z.Name
		}
	}

	return nil
}

// Geometry parses the zone's WKT or inline GeoJSON.
func (z Zone) Geometry() (geo.Geometry, error) {
	if z.WKT != "" {
		return parser.ParseWKT(z.WKT)
	}

	data, err := json.Marshal(z.GeoJSON)
	if err != nil {
		return nil, fmt.Errorf("encode inline geojson: %w", err)
	}

	return parser.ParseGeoJSON(data)
}

// Tolerance is the zone's error distance, or fallback when it has none.
func (z Zone) Tolerance(fallback float64) float64 {
	if z.ErrorDistance != nil {
		return *z.ErrorDistance
	}
	return fallback
}
