package geo

import (
	"fmt"
	"math"
	"slices"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// MultiPolygon is a non-empty set of polygons.
type MultiPolygon struct {
	polygons []*Polygon
	points   []geodesic.Point
	box      geodesic.BoundingBox
	centroid geodesic.Point
	area     float64
}

// NewMultiPolygon requires at least one polygon.
func NewMultiPolygon(polygons []*Polygon) (*MultiPolygon, error) {
	if len(polygons) == 0 {
		return nil, fmt.Errorf("multipolygon: %w", ErrEmpty)
	}

	raw := make([][][]geodesic.Point, len(polygons))
	var points []geodesic.Point
	var area float64
	for i, p := range polygons {
		if p == nil {
			return nil, fmt.Errorf("polygon %d: %w", i, ErrNoRings)
		}
		rings := make([][]geodesic.Point, len(p.rings))
		for j, ring := range p.rings {
			rings[j] = ring.points
		}
		raw[i] = rings
		points = append(points, p.points...)
		area += p.area
	}

	box, _ := geodesic.Best(boxesOf(polygons))

	return &MultiPolygon{
		polygons: slices.Clone(polygons),
		points:   points,
		box:      box,
		area:     area,
		centroid: calculator.CentroidPolygons(raw),
	}, nil
}

// MultiPolygonFromCoordinates builds a multipolygon from GeoJSON polygons.
func MultiPolygonFromCoordinates(coordinates [][][][]float64) (*MultiPolygon, error) {
	polygons := make([]*Polygon, len(coordinates))
	for i, c := range coordinates {
		p, err := PolygonFromCoordinates(c)
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		polygons[i] = p
	}
	return NewMultiPolygon(polygons)
}

// Type returns TypeMultiPolygon.
func (m *MultiPolygon) Type() ObjectType { return TypeMultiPolygon }

// Geometries returns the member polygons.
func (m *MultiPolygon) Geometries() []*Polygon { return slices.Clone(m.polygons) }

// BoundingBox encloses every polygon.
func (m *MultiPolygon) BoundingBox() (geodesic.BoundingBox, bool) { return m.box, true }

// Centroid is the area-weighted merge of the polygon centroids.
func (m *MultiPolygon) Centroid() (geodesic.Point, bool) { return m.centroid, true }

// Points returns every polygon's points in order.
func (m *MultiPolygon) Points() []geodesic.Point { return slices.Clone(m.points) }

// Area is the total area of all polygons.
func (m *MultiPolygon) Area() float64 { return m.area }

// Distance is the distance to the nearest exterior ring.
func (m *MultiPolygon) Distance(point geodesic.Point, errorDistance float64) float64 {
	d := math.Inf(1)
	for _, p := range m.polygons {
		d = math.Min(d, p.Distance(point, errorDistance))
	}
	return d
}

// Contains reports whether any polygon contains point.
func (m *MultiPolygon) Contains(point geodesic.Point, errorDistance float64) bool {
	for _, p := range m.polygons {
		if p.Contains(point, errorDistance) {
			return true
		}
	}
	return false
}

// Coordinates returns the GeoJSON polygons.
func (m *MultiPolygon) Coordinates() [][][][]float64 {
	out := make([][][][]float64, len(m.polygons))
	for i, p := range m.polygons {
		out[i] = p.Coordinates()
	}
	return out
}

// GeoJSON returns the GeoJSON object.
func (m *MultiPolygon) GeoJSON() map[string]any {
	return coordinatesMap(TypeMultiPolygon, m.Coordinates())
}

// MarshalJSON implements json.Marshaler.
func (m *MultiPolygon) MarshalJSON() ([]byte, error) {
	return marshalCoordinates(TypeMultiPolygon, m.Coordinates())
}

func (m *MultiPolygon) String() string {
	items := make([]string, len(m.polygons))
	for i, p := range m.polygons {
		items[i] = fmt.Sprintf("%d - %s", i+1, p)
	}
	return "MultiPolygon: " + describe(items)
}
