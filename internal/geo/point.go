package geo

import (
	"fmt"
	"math"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// Point is a single position.
type Point struct {
	point geodesic.Point
	box   geodesic.BoundingBox
}

// NewPoint wraps a geodesic point.
func NewPoint(p geodesic.Point) *Point {
	box, _ := geodesic.NewBoundingBox(p)
	return &Point{point: p, box: box}
}

// PointFromCoordinates builds a point from a GeoJSON position
// [lon, lat] or [lon, lat, alt].
func PointFromCoordinates(coordinates []float64) (*Point, error) {
	p, err := position(coordinates)
	if err != nil {
		return nil, err
	}
	return NewPoint(p), nil
}

func position(coordinates []float64) (geodesic.Point, error) {
	for _, v := range coordinates {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geodesic.Point{}, fmt.Errorf("%w: non-finite value in %v", ErrInvalidCoordinate, coordinates)
		}
	}

	switch len(coordinates) {
	case 2:
		return geodesic.NewPoint(coordinates[0], coordinates[1]), nil
	case 3:
		return geodesic.NewPointWithAltitude(coordinates[0], coordinates[1], coordinates[2]), nil
	default:
		return geodesic.Point{}, fmt.Errorf("%w: want 2 or 3 values, got %d", ErrInvalidCoordinate, len(coordinates))
	}
}

func positions(coordinates [][]float64) ([]geodesic.Point, error) {
	points := make([]geodesic.Point, len(coordinates))
	for i, c := range coordinates {
		p, err := position(c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}

// Type returns TypePoint.
func (p *Point) Type() ObjectType { return TypePoint }

// Position returns the wrapped geodesic point.
func (p *Point) Position() geodesic.Point { return p.point }

// BoundingBox is the degenerate box at the point.
func (p *Point) BoundingBox() (geodesic.BoundingBox, bool) { return p.box, true }

// Centroid is the point itself.
func (p *Point) Centroid() (geodesic.Point, bool) { return p.point, true }

// Points returns the point as a one-element slice.
func (p *Point) Points() []geodesic.Point { return []geodesic.Point{p.point} }

// Distance is the geodesic distance between the two points.
func (p *Point) Distance(point geodesic.Point, _ float64) float64 {
	return calculator.Distance(p.point, point)
}

// Contains reports whether point is within errorDistance meters.
func (p *Point) Contains(point geodesic.Point, errorDistance float64) bool {
	return p.Distance(point, errorDistance) <= errorDistance
}

// Coordinates returns the GeoJSON position.
func (p *Point) Coordinates() []float64 { return p.point.Coordinates() }

// GeoJSON returns the GeoJSON object.
func (p *Point) GeoJSON() map[string]any { return coordinatesMap(TypePoint, p.Coordinates()) }

// MarshalJSON implements json.Marshaler.
func (p *Point) MarshalJSON() ([]byte, error) { return marshalCoordinates(TypePoint, p.Coordinates()) }

func (p *Point) String() string { return "Point: " + p.point.String() }
