// Package parser turns WKT and GeoJSON text into validated geometries.
//
// Decoding is done by go-geom; the decoded coordinates are handed to the
// constructors in internal/geo, which enforce the geometry invariants.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/woozymasta/geokit/internal/geo"
)

// ErrUnsupportedType is returned for geometry types with no geo counterpart.
var ErrUnsupportedType = errors.New("unsupported geometry type")

// ErrNoGeometry is returned for features whose geometry is null.
var ErrNoGeometry = errors.New("feature has no geometry")

// ParseWKT decodes and validates a WKT geometry.
func ParseWKT(text string) (geo.Geometry, error) {
	g, err := wkt.Unmarshal(text)
	if err != nil {
		return nil, reject("wkt", fmt.Errorf("decode wkt: %w", err))
	}

	out, err := Geometry(g)
	if err != nil {
		return nil, reject("wkt", err)
	}

	return out, nil
}

// ParseGeoJSON decodes and validates a GeoJSON geometry object.
func ParseGeoJSON(data []byte) (geo.Geometry, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, reject("geojson", fmt.Errorf("decode geojson: %w", err))
	}

	out, err := Geometry(g)
	if err != nil {
		return nil, reject("geojson", err)
	}

	return out, nil
}

// Parse accepts either a GeoJSON geometry object or WKT text.
func Parse(data []byte) (geo.Geometry, error) {
	if isJSON(data) {
		return ParseGeoJSON(data)
	}
	return ParseWKT(string(data))
}

// ParseCollection decodes a GeoJSON FeatureCollection. A single Feature, a
// bare geometry object or WKT text is wrapped into a one-feature collection.
// Feature geometries are decoded but not validated.
func ParseCollection(data []byte) (*geojson.FeatureCollection, error) {
	if !isJSON(data) {
		return WKTCollection(string(data))
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("decode feature collection: %w", err)
		}
		return &fc, nil

	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode feature: %w", err)
		}
		return &geojson.FeatureCollection{Features: []*geojson.Feature{&f}}, nil

	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decode geojson: %w", err)
		}
		return &geojson.FeatureCollection{Features: []*geojson.Feature{{Geometry: g}}}, nil
	}
}

// WKTCollection wraps a WKT geometry into a one-feature collection.
func WKTCollection(text string) (*geojson.FeatureCollection, error) {
	g, err := wkt.Unmarshal(text)
	if err != nil {
		return nil, fmt.Errorf("decode wkt: %w", err)
	}
	return &geojson.FeatureCollection{Features: []*geojson.Feature{{Geometry: g}}}, nil
}

func isJSON(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func reject(format string, err error) error {
	log.Error().Err(err).Str("format", format).Msg("Geometry rejected")
	return err
}
