package geo

import (
	"fmt"
	"math"
	"slices"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// Polygon is an exterior linear ring followed by zero or more holes.
type Polygon struct {
	rings    []*LineString
	points   []geodesic.Point
	box      geodesic.BoundingBox
	centroid geodesic.Point
	area     float64
}

// NewPolygon validates every ring and derives the polygon's measures.
// rings[0] is the exterior ring.
func NewPolygon(rings []*LineString) (*Polygon, error) {
	if len(rings) == 0 {
		return nil, ErrNoRings
	}

	for i, ring := range rings {
		if ring == nil {
			return nil, fmt.Errorf("ring %d: %w", i, ErrRingTooShort)
		}
		if err := validateRing(ring.points); err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
	}

	rings = slices.Clone(rings)
	raw := make([][]geodesic.Point, len(rings))
	var points []geodesic.Point
	for i, ring := range rings {
		raw[i] = ring.points
		points = append(points, ring.points...)
	}

	box, _ := geodesic.Best(boxesOf(rings))

	return &Polygon{
		rings:    rings,
		points:   points,
		box:      box,
		area:     calculator.Area(raw),
		centroid: calculator.CentroidPolygonRings(raw),
	}, nil
}

// PolygonFromCoordinates builds a polygon from GeoJSON linear rings.
func PolygonFromCoordinates(coordinates [][][]float64) (*Polygon, error) {
	if len(coordinates) == 0 {
		return nil, ErrNoRings
	}

	rings := make([]*LineString, len(coordinates))
	for i, c := range coordinates {
		points, err := positions(c)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		if err := validateRing(points); err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		if rings[i], err = NewLineString(points); err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
	}

	return NewPolygon(rings)
}

func validateRing(points []geodesic.Point) error {
	if len(points) == 0 {
		return ErrRingTooShort
	}
	if !points[0].Equal(points[len(points)-1]) {
		return ErrRingNotClosed
	}
	if len(points) < 4 {
		return fmt.Errorf("%w: got %d", ErrRingTooShort, len(points))
	}
	if n := distinctVertices(points[:len(points)-1], 4); n < 4 {
		return fmt.Errorf("%w: got %d distinct", ErrRingTooShort, n)
	}
	return nil
}

// distinctVertices counts distinct positions in points, stopping at limit.
func distinctVertices(points []geodesic.Point, limit int) int {
	seen := make([]geodesic.Point, 0, limit)
	for _, p := range points {
		if !slices.ContainsFunc(seen, p.Equal) {
			seen = append(seen, p)
			if len(seen) == limit {
				break
			}
		}
	}
	return len(seen)
}

// Type returns TypePolygon.
func (p *Polygon) Type() ObjectType { return TypePolygon }

// LinearRings returns the exterior ring followed by the holes.
func (p *Polygon) LinearRings() []*LineString { return slices.Clone(p.rings) }

// BoundingBox encloses every ring.
func (p *Polygon) BoundingBox() (geodesic.BoundingBox, bool) { return p.box, true }

// Centroid is the exterior ring's centroid adjusted away from the holes.
func (p *Polygon) Centroid() (geodesic.Point, bool) { return p.centroid, true }

// Points returns every ring's points, exterior first.
func (p *Polygon) Points() []geodesic.Point { return slices.Clone(p.points) }

// Area is the exterior area minus the holes, in square meters.
func (p *Polygon) Area() float64 { return p.area }

// Distance is the distance from point to the exterior ring. Holes are not
// consulted; see DistanceToBoundary.
func (p *Polygon) Distance(point geodesic.Point, errorDistance float64) float64 {
	return p.rings[0].Distance(point, errorDistance)
}

// DistanceToBoundary is the distance from point to the nearest ring, holes
// included.
func (p *Polygon) DistanceToBoundary(point geodesic.Point, errorDistance float64) float64 {
	d := math.Inf(1)
	for _, ring := range p.rings {
		d = math.Min(d, ring.Distance(point, errorDistance))
	}
	return d
}

// Coordinates returns the GeoJSON linear rings.
func (p *Polygon) Coordinates() [][][]float64 {
	out := make([][][]float64, len(p.rings))
	for i, ring := range p.rings {
		out[i] = ring.Coordinates()
	}
	return out
}

// GeoJSON returns the GeoJSON object.
func (p *Polygon) GeoJSON() map[string]any { return coordinatesMap(TypePolygon, p.Coordinates()) }

// MarshalJSON implements json.Marshaler.
func (p *Polygon) MarshalJSON() ([]byte, error) {
	return marshalCoordinates(TypePolygon, p.Coordinates())
}

func (p *Polygon) String() string {
	items := make([]string, len(p.rings))
	for i, ring := range p.rings {
		name := "Main Ring"
		if i > 0 {
			name = fmt.Sprintf("Negative Ring %d", i)
		}
		items[i] = name + " - " + ring.String()
	}
	return "Polygon: " + describe(items)
}
