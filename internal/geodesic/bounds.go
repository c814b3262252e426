package geodesic

import (
	"fmt"
	"math"
)

// BoundingBox holds the longitude/latitude extent of a set of points and,
// when every point carries one, the altitude extent.
//
// Boxes never wrap the antimeridian: a set of points straddling ±180° gets
// the minimal non-wrapping envelope, which spans most of the globe.
type BoundingBox struct {
	MinAltitude  *float64 `json:"min_altitude,omitempty" yaml:"min_altitude,omitempty"`
	MaxAltitude  *float64 `json:"max_altitude,omitempty" yaml:"max_altitude,omitempty"`
	MinLongitude float64  `json:"min_longitude" yaml:"min_longitude"`
	MinLatitude  float64  `json:"min_latitude" yaml:"min_latitude"`
	MaxLongitude float64  `json:"max_longitude" yaml:"max_longitude"`
	MaxLatitude  float64  `json:"max_latitude" yaml:"max_latitude"`
}

// NewBoundingBox returns the envelope of points. ok is false when points is empty.
func NewBoundingBox(points ...Point) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box = BoundingBox{
		MinLongitude: math.Inf(1),
		MinLatitude:  math.Inf(1),
		MaxLongitude: math.Inf(-1),
		MaxLatitude:  math.Inf(-1),
	}

	withAlt := true
	minAlt, maxAlt := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		box.MinLongitude = math.Min(box.MinLongitude, p.Longitude)
		box.MinLatitude = math.Min(box.MinLatitude, p.Latitude)
		box.MaxLongitude = math.Max(box.MaxLongitude, p.Longitude)
		box.MaxLatitude = math.Max(box.MaxLatitude, p.Latitude)

		if alt, has := p.Alt(); has {
			minAlt = math.Min(minAlt, alt)
			maxAlt = math.Max(maxAlt, alt)
		} else {
			withAlt = false
		}
	}

	if withAlt {
		box.MinAltitude, box.MaxAltitude = &minAlt, &maxAlt
	}

	return box, true
}

// Best returns the minimal box enclosing every box in boxes.
// ok is false when boxes is empty.
func Best(boxes []BoundingBox) (box BoundingBox, ok bool) {
	if len(boxes) == 0 {
		return BoundingBox{}, false
	}

	box = boxes[0].clone()
	for _, b := range boxes[1:] {
		box.extend(b)
	}

	return box, true
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Longitude >= b.MinLongitude && p.Longitude <= b.MaxLongitude &&
		p.Latitude >= b.MinLatitude && p.Latitude <= b.MaxLatitude
}

// Overlaps reports whether b and o share any area or edge.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.MinLongitude <= o.MaxLongitude && b.MinLatitude <= o.MaxLatitude &&
		b.MaxLongitude >= o.MinLongitude && b.MaxLatitude >= o.MinLatitude
}

// Coordinates returns the GeoJSON bbox array: [w, s, e, n] or [w, s, lo, e, n, hi].
func (b BoundingBox) Coordinates() []float64 {
	if b.MinAltitude != nil && b.MaxAltitude != nil {
		return []float64{b.MinLongitude, b.MinLatitude, *b.MinAltitude, b.MaxLongitude, b.MaxLatitude, *b.MaxAltitude}
	}

	return []float64{b.MinLongitude, b.MinLatitude, b.MaxLongitude, b.MaxLatitude}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", b.MinLongitude, b.MinLatitude, b.MaxLongitude, b.MaxLatitude)
}

func (b BoundingBox) clone() BoundingBox {
	c := b
	if b.MinAltitude != nil && b.MaxAltitude != nil {
		lo, hi := *b.MinAltitude, *b.MaxAltitude
		c.MinAltitude, c.MaxAltitude = &lo, &hi
	}
	return c
}

func (b *BoundingBox) extend(o BoundingBox) {
	b.MinLongitude = math.Min(b.MinLongitude, o.MinLongitude)
	b.MinLatitude = math.Min(b.MinLatitude, o.MinLatitude)
	b.MaxLongitude = math.Max(b.MaxLongitude, o.MaxLongitude)
	b.MaxLatitude = math.Max(b.MaxLatitude, o.MaxLatitude)

	// altitude extent survives only if both sides have one
	if b.MinAltitude == nil || o.MinAltitude == nil || b.MaxAltitude == nil || o.MaxAltitude == nil {
		b.MinAltitude, b.MaxAltitude = nil, nil
		return
	}

	lo := math.Min(*b.MinAltitude, *o.MinAltitude)
	hi := math.Max(*b.MaxAltitude, *o.MaxAltitude)
	b.MinAltitude, b.MaxAltitude = &lo, &hi
}
