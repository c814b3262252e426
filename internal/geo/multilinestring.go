package geo

import (
	"fmt"
	"math"
	"slices"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// MultiLineString is a non-empty set of line strings.
type MultiLineString struct {
	lines    []*LineString
	points   []geodesic.Point
	box      geodesic.BoundingBox
	centroid geodesic.Point
	length   float64
}

// NewMultiLineString requires at least one line.
func NewMultiLineString(lines []*LineString) (*MultiLineString, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("multilinestring: %w", ErrEmpty)
	}

	raw := make([][]geodesic.Point, len(lines))
	var points []geodesic.Point
	var length float64
	for i, l := range lines {
		if l == nil {
			return nil, fmt.Errorf("line %d: %w", i, ErrTooFewPoints)
		}
		raw[i] = l.points
		points = append(points, l.points...)
		length += l.length
	}

	box, _ := geodesic.Best(boxesOf(lines))

	return &MultiLineString{
		lines:    slices.Clone(lines),
		points:   points,
		box:      box,
		length:   length,
		centroid: calculator.CentroidLines(raw),
	}, nil
}

// MultiLineStringFromCoordinates builds a multilinestring from GeoJSON lines.
func MultiLineStringFromCoordinates(coordinates [][][]float64) (*MultiLineString, error) {
	lines := make([]*LineString, len(coordinates))
	for i, c := range coordinates {
		l, err := LineStringFromCoordinates(c)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines[i] = l
	}
	return NewMultiLineString(lines)
}

// Type returns TypeMultiLineString.
func (m *MultiLineString) Type() ObjectType { return TypeMultiLineString }

// Geometries returns the member lines.
func (m *MultiLineString) Geometries() []*LineString { return slices.Clone(m.lines) }

// BoundingBox encloses every line.
func (m *MultiLineString) BoundingBox() (geodesic.BoundingBox, bool) { return m.box, true }

// Centroid is the length-weighted merge of the line midpoints.
func (m *MultiLineString) Centroid() (geodesic.Point, bool) { return m.centroid, true }

// Points returns every line's points in order.
func (m *MultiLineString) Points() []geodesic.Point { return slices.Clone(m.points) }

// Length is the total length of all lines.
func (m *MultiLineString) Length() float64 { return m.length }

// Distance is the distance to the nearest line.
func (m *MultiLineString) Distance(point geodesic.Point, errorDistance float64) float64 {
	d := math.Inf(1)
	for _, l := range m.lines {
		d = math.Min(d, l.Distance(point, errorDistance))
	}
	return d
}

// Contains reports whether any line contains point.
func (m *MultiLineString) Contains(point geodesic.Point, errorDistance float64) bool {
	for _, l := range m.lines {
		if l.Contains(point, errorDistance) {
			return true
		}
	}
	return false
}

// Coordinates returns the GeoJSON lines.
func (m *MultiLineString) Coordinates() [][][]float64 {
	out := make([][][]float64, len(m.lines))
	for i, l := range m.lines {
		out[i] = l.Coordinates()
	}
	return out
}

// GeoJSON returns the GeoJSON object.
func (m *MultiLineString) GeoJSON() map[string]any {
	return coordinatesMap(TypeMultiLineString, m.Coordinates())
}

// MarshalJSON implements json.Marshaler.
func (m *MultiLineString) MarshalJSON() ([]byte, error) {
	return marshalCoordinates(TypeMultiLineString, m.Coordinates())
}

func (m *MultiLineString) String() string {
	items := make([]string, len(m.lines))
	for i, l := range m.lines {
		items[i] = fmt.Sprintf("%d - %s", i+1, l)
	}
	return "MultiLineString: " + describe(items)
}
