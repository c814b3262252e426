package processor

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// FeatureCollection is the annotated GeoJSON output.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature is a GeoJSON feature carrying its measurement under the
// "measure" property.
type Feature struct {
	Type       string         `json:"type" yaml:"type"`
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	Geometry   map[string]any `json:"geometry" yaml:"geometry"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// Annotate builds a FeatureCollection from the valid measurements; rejected
// features are left out.
func Annotate(measurements []Measurement) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}

	for _, m := range measurements {
		if !m.Valid() {
			continue
		}

		properties := make(map[string]any, len(m.Properties)+1)
		maps.Copy(properties, m.Properties)
		properties["measure"] = m

		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			ID:         m.ID,
			Geometry:   m.Geometry.GeoJSON(),
			Properties: properties,
		})
	}

	return fc
}

// Marshal encodes v as indented JSON or, for format "yaml", as YAML.
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "json", "":
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// SaveGeoJSON marshals the feature collection and writes it to path,
// creating parent directories.
func SaveGeoJSON(path string, fc FeatureCollection) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return json.NewEncoder(f).Encode(fc)
}
