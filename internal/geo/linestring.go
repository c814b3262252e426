package geo

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// LineString is an ordered path of at least two points. Polygon rings are
// line strings too.
type LineString struct {
	points   []geodesic.Point
	segments []geodesic.Segment
	box      geodesic.BoundingBox
	centroid geodesic.Point
	length   float64
}

// NewLineString validates points and derives the line's measures.
func NewLineString(points []geodesic.Point) (*LineString, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	points = slices.Clone(points)
	segments := geodesic.Segments(points)
	box, _ := geodesic.NewBoundingBox(points...)

	return &LineString{
		points:   points,
		segments: segments,
		box:      box,
		centroid: calculator.CentroidLinePoints(points),
		length:   calculator.Length(segments),
	}, nil
}

// LineStringFromCoordinates builds a line from GeoJSON positions.
func LineStringFromCoordinates(coordinates [][]float64) (*LineString, error) {
	points, err := positions(coordinates)
	if err != nil {
		return nil, err
	}
	return NewLineString(points)
}

// Type returns TypeLineString.
func (l *LineString) Type() ObjectType { return TypeLineString }

// BoundingBox encloses every point of the line.
func (l *LineString) BoundingBox() (geodesic.BoundingBox, bool) { return l.box, true }

// Centroid is the point half-way along the line.
func (l *LineString) Centroid() (geodesic.Point, bool) { return l.centroid, true }

// Points returns a copy of the line's points.
func (l *LineString) Points() []geodesic.Point { return slices.Clone(l.points) }

// Segments returns a copy of the adjacent point pairs.
func (l *LineString) Segments() []geodesic.Segment { return slices.Clone(l.segments) }

// Length is the sum of segment lengths in meters.
func (l *LineString) Length() float64 { return l.length }

// Distance is the shortest distance from point to any segment.
func (l *LineString) Distance(point geodesic.Point, _ float64) float64 {
	d := math.Inf(1)
	for _, s := range l.segments {
		d = math.Min(d, calculator.DistanceToSegment(point, s))
	}
	return d
}

// Contains reports whether any segment passes within errorDistance of point.
func (l *LineString) Contains(point geodesic.Point, errorDistance float64) bool {
	for _, s := range l.segments {
		if calculator.DistanceToSegment(point, s) <= errorDistance {
			return true
		}
	}
	return false
}

// Coordinates returns the GeoJSON positions.
func (l *LineString) Coordinates() [][]float64 { return pointCoordinates(l.points) }

// GeoJSON returns the GeoJSON object.
func (l *LineString) GeoJSON() map[string]any {
	return coordinatesMap(TypeLineString, l.Coordinates())
}

// MarshalJSON implements json.Marshaler.
func (l *LineString) MarshalJSON() ([]byte, error) {
	return marshalCoordinates(TypeLineString, l.Coordinates())
}

func (l *LineString) String() string {
	items := make([]string, len(l.points))
	for i, p := range l.points {
		items[i] = fmt.Sprintf("%d - %s", i+1, p)
	}
	return "LineString: " + describe(items)
}

// describe lays out items one per line inside parentheses.
func describe(items []string) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, item := range items {
		sb.WriteString("\n\t")
		sb.WriteString(strings.ReplaceAll(item, "\n", "\n\t"))
		if i < len(items)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("\n)")
	return sb.String()
}
