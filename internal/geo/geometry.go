// Package geo holds the validated, immutable GeoJSON geometry model.
//
// Every geometry computes its bounding box, centroid and point list once, at
// construction, and is safe for concurrent read-only use afterwards.
package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// ObjectType is the GeoJSON "type" tag of a geometry.
type ObjectType string

// Geometry type tags.
const (
	TypePoint              ObjectType = "Point"
	TypeLineString         ObjectType = "LineString"
	TypePolygon            ObjectType = "Polygon"
	TypeMultiPoint         ObjectType = "MultiPoint"
	TypeMultiLineString    ObjectType = "MultiLineString"
	TypeMultiPolygon       ObjectType = "MultiPolygon"
	TypeGeometryCollection ObjectType = "GeometryCollection"
)

// Geometry is implemented by every geometry variant.
type Geometry interface {
	fmt.Stringer
	json.Marshaler

	Type() ObjectType

	// BoundingBox is not ok only for a collection with no bounded member.
	BoundingBox() (geodesic.BoundingBox, bool)
	// Centroid is not ok only for an empty collection.
	Centroid() (geodesic.Point, bool)
	Points() []geodesic.Point

	// Distance is the geodesic distance in meters from the geometry to point.
	Distance(point geodesic.Point, errorDistance float64) float64
	// Contains reports whether point is on or within the geometry, with
	// errorDistance meters of tolerance.
	Contains(point geodesic.Point, errorDistance float64) bool

	// GeoJSON returns the {"type", "coordinates"|"geometries"} object.
	GeoJSON() map[string]any
}

// Areal geometries enclose an area.
type Areal interface {
	Geometry
	Area() float64
}

// Lineal geometries have a length.
type Lineal interface {
	Geometry
	Length() float64
}

var calculator = geodesic.New()

// Equal reports whether a and b serialize to the same type and coordinates.
// No normalization or topological comparison is done.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	ja, err := a.MarshalJSON()
	if err != nil {
		return false
	}
	jb, err := b.MarshalJSON()
	if err != nil {
		return false
	}

	return bytes.Equal(ja, jb)
}

type coordinatesObject struct {
	Type        ObjectType `json:"type"`
	Coordinates any        `json:"coordinates"`
}

type geometriesObject struct {
	Type       ObjectType `json:"type"`
	Geometries []Geometry `json:"geometries"`
}

func marshalCoordinates(t ObjectType, coordinates any) ([]byte, error) {
	return json.Marshal(coordinatesObject{Type: t, Coordinates: coordinates})
}

func coordinatesMap(t ObjectType, coordinates any) map[string]any {
	return map[string]any{"type": string(t), "coordinates": coordinates}
}

func pointCoordinates(points []geodesic.Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = p.Coordinates()
	}
	return out
}

func boxesOf[G interface {
	BoundingBox() (geodesic.BoundingBox, bool)
}](items []G) []geodesic.BoundingBox {
	boxes := make([]geodesic.BoundingBox, 0, len(items))
	for _, item := range items {
		if box, ok := item.BoundingBox(); ok {
			boxes = append(boxes, box)
		}
	}
	return boxes
}
