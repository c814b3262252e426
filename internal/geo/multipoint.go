package geo

import (
	"fmt"
	"math"
	"slices"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// MultiPoint is a non-empty set of points.
type MultiPoint struct {
	points   []*Point
	box      geodesic.BoundingBox
	centroid geodesic.Point
	raw      []geodesic.Point
}

// NewMultiPoint requires at least one point.
func NewMultiPoint(points []*Point) (*MultiPoint, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("multipoint: %w", ErrEmpty)
	}

	raw := make([]geodesic.Point, len(points))
	for i, p := range points {
		if p == nil {
			return nil, fmt.Errorf("point %d: %w", i, ErrInvalidCoordinate)
		}
		raw[i] = p.point
	}

	box, _ := geodesic.NewBoundingBox(raw...)

	return &MultiPoint{
		points:   slices.Clone(points),
		raw:      raw,
		box:      box,
		centroid: calculator.CentroidPoints(raw),
	}, nil
}

// MultiPointFromCoordinates builds a multipoint from GeoJSON positions.
func MultiPointFromCoordinates(coordinates [][]float64) (*MultiPoint, error) {
	points := make([]*Point, len(coordinates))
	for i, c := range coordinates {
		p, err := PointFromCoordinates(c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = p
	}
	return NewMultiPoint(points)
}

// Type returns TypeMultiPoint.
func (m *MultiPoint) Type() ObjectType { return TypeMultiPoint }

// Geometries returns the member points.
func (m *MultiPoint) Geometries() []*Point { return slices.Clone(m.points) }

// BoundingBox encloses every point.
func (m *MultiPoint) BoundingBox() (geodesic.BoundingBox, bool) { return m.box, true }

// Centroid is the unit-weight merge of the points.
func (m *MultiPoint) Centroid() (geodesic.Point, bool) { return m.centroid, true }

// Points returns every member point.
func (m *MultiPoint) Points() []geodesic.Point { return slices.Clone(m.raw) }

// Distance is the distance to the nearest member.
func (m *MultiPoint) Distance(point geodesic.Point, errorDistance float64) float64 {
	d := math.Inf(1)
	for _, p := range m.points {
		d = math.Min(d, p.Distance(point, errorDistance))
	}
	return d
}

// Contains reports whether any member contains point.
func (m *MultiPoint) Contains(point geodesic.Point, errorDistance float64) bool {
	for _, p := range m.points {
		if p.Contains(point, errorDistance) {
			return true
		}
	}
	return false
}

// Coordinates returns the GeoJSON positions.
func (m *MultiPoint) Coordinates() [][]float64 { return pointCoordinates(m.raw) }

// GeoJSON returns the GeoJSON object.
func (m *MultiPoint) GeoJSON() map[string]any {
	return coordinatesMap(TypeMultiPoint, m.Coordinates())
}

// MarshalJSON implements json.Marshaler.
func (m *MultiPoint) MarshalJSON() ([]byte, error) {
	return marshalCoordinates(TypeMultiPoint, m.Coordinates())
}

func (m *MultiPoint) String() string {
	items := make([]string, len(m.raw))
	for i, p := range m.raw {
		items[i] = fmt.Sprintf("%d - %s", i+1, p)
	}
	return "MultiPoint: " + describe(items)
}
