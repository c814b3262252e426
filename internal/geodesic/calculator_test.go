package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneDegree is the arc length of one degree on a sphere of EarthRadius.
const oneDegree = 111319.49079327358

func square(minLon, minLat, size float64) []Point {
	return []Point{
		NewPoint(minLon, minLat),
		NewPoint(minLon, minLat+size),
		NewPoint(minLon+size, minLat+size),
		NewPoint(minLon+size, minLat),
		NewPoint(minLon, minLat),
	}
}

func reversed(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside range", NewPoint(10, 20), NewPoint(10, 20)},
		{"east overflow", NewPoint(190, 0), NewPoint(-170, 0)},
		{"antimeridian west", NewPoint(-180, 0), NewPoint(180, 0)},
		{"antimeridian east", NewPoint(180, 0), NewPoint(180, 0)},
		{"several turns", NewPoint(900, 0), NewPoint(180, 0)},
		{"latitude overflow", NewPoint(0, 100), NewPoint(0, -80)},
		{"south pole", NewPoint(0, -90), NewPoint(0, 90)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.InDelta(t, tt.want.Longitude, got.Longitude, 1e-9)
			assert.InDelta(t, tt.want.Latitude, got.Latitude, 1e-9)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, p := range []Point{
		NewPoint(0, 0),
		NewPoint(-180, -90),
		NewPoint(180, 90),
		NewPoint(361.5, -271.25),
		NewPoint(-725, 445),
		NewPointWithAltitude(1234.5, -98.5, 12),
	} {
		once := Normalize(p)
		twice := Normalize(once)
		assert.True(t, once.Equal(twice), "normalize not idempotent for %v: %v then %v", p, once, twice)
		assert.True(t, p.GeoEqual(once), "%v not geo-equal to its normalized form", p)
	}
}

func TestNormalizeKeepsAltitude(t *testing.T) {
	p := Normalize(NewPointWithAltitude(370, 0, 42))
	alt, ok := p.Alt()
	require.True(t, ok)
	assert.Equal(t, 42.0, alt)
}

func TestDistance(t *testing.T) {
	calc := New()

	assert.InDelta(t, oneDegree, calc.Distance(NewPoint(0, 0), NewPoint(0, 1)), 1e-6)
	assert.InDelta(t, oneDegree, calc.Distance(NewPoint(0, 0), NewPoint(1, 0)), 1e-6)
	assert.Zero(t, calc.Distance(NewPoint(12.5, -33.1), NewPoint(12.5, -33.1)))

	// antipodes must not collapse to zero when the haversine term overshoots 1
	assert.InDelta(t, math.Pi*EarthRadius, calc.Distance(NewPoint(0, 0), NewPoint(180, 0)), 1e-3)
}

func TestDistanceSymmetric(t *testing.T) {
	calc := New()
	pairs := [][2]Point{
		{NewPoint(-2.935, 43.263), NewPoint(-2.934, 43.264)},
		{NewPoint(139.69, 35.68), NewPoint(-74.0, 40.71)},
		{NewPoint(179.9, 0), NewPoint(-179.9, 0)},
		{NewPoint(0, 89.9), NewPoint(180, 89.9)},
	}

	for _, pair := range pairs {
		d1 := calc.Distance(pair[0], pair[1])
		d2 := calc.Distance(pair[1], pair[0])
		assert.GreaterOrEqual(t, d1, 0.0)
		assert.InDelta(t, d1, d2, 1e-6)
	}
}

func TestLawOfCosinesAgreesAtLongRange(t *testing.T) {
	calc := New()
	p1, p2 := NewPoint(2.35, 48.85), NewPoint(-0.12, 51.5)

	assert.InDelta(t, calc.HaversineDistance(p1, p2), calc.LawOfCosinesDistance(p1, p2), 0.01)
	assert.Zero(t, calc.LawOfCosinesDistance(p1, p1))
}

func TestBearings(t *testing.T) {
	calc := New()
	origin := NewPoint(0, 0)

	assert.InDelta(t, 0, calc.InitialBearing(origin, NewPoint(0, 1)), 1e-9)
	assert.InDelta(t, 90, calc.InitialBearing(origin, NewPoint(1, 0)), 1e-9)
	assert.InDelta(t, 180, calc.InitialBearing(origin, NewPoint(0, -1)), 1e-9)
	assert.InDelta(t, 270, calc.InitialBearing(origin, NewPoint(-1, 0)), 1e-9)
	assert.InDelta(t, -90, calc.Bearing(origin, NewPoint(-1, 0)), 1e-9)

	assert.InDelta(t, 90, calc.FinalBearing(origin, NewPoint(1, 0)), 1e-9)
	assert.InDelta(t, 90, calc.AverageBearing(origin, NewPoint(1, 0)), 1e-9)

	// along a parallel the great circle bends poleward, so bearings differ
	p1, p2 := NewPoint(-10, 45), NewPoint(10, 45)
	initial := calc.InitialBearing(p1, p2)
	final := calc.FinalBearing(p1, p2)
	assert.Less(t, initial, 90.0)
	assert.Greater(t, final, 90.0)
	assert.InDelta(t, 90, calc.AverageBearing(p1, p2), 5)
}

func TestMidpoint(t *testing.T) {
	calc := New()

	mid := calc.Midpoint(NewPoint(0, 0), NewPoint(0, 2))
	assert.InDelta(t, 0, mid.Longitude, 1e-9)
	assert.InDelta(t, 1, mid.Latitude, 1e-9)
	_, ok := mid.Alt()
	assert.False(t, ok)

	mid = calc.Midpoint(NewPointWithAltitude(0, 0, 10), NewPointWithAltitude(2, 0, 20))
	assert.InDelta(t, 1, mid.Longitude, 1e-9)
	alt, ok := mid.Alt()
	require.True(t, ok)
	assert.Equal(t, 15.0, alt)

	// only one side has altitude
	mid = calc.Midpoint(NewPointWithAltitude(0, 0, 10), NewPoint(2, 0))
	_, ok = mid.Alt()
	assert.False(t, ok)

	// across the antimeridian the result stays in range
	mid = calc.Midpoint(NewPoint(179, 0), NewPoint(-179, 0))
	assert.InDelta(t, 180, math.Abs(mid.Longitude), 1e-9)
}

func TestDestinationPoint(t *testing.T) {
	calc := New()

	dest := calc.DestinationPoint(NewPointWithAltitude(0, 0, 7), 90, oneDegree)
	assert.InDelta(t, 1, dest.Longitude, 1e-9)
	assert.InDelta(t, 0, dest.Latitude, 1e-9)
	alt, ok := dest.Alt()
	require.True(t, ok)
	assert.Equal(t, 7.0, alt)

	dest = calc.DestinationPoint(NewPoint(0, 0), 0, oneDegree)
	assert.InDelta(t, 0, dest.Longitude, 1e-9)
	assert.InDelta(t, 1, dest.Latitude, 1e-9)

	dest = calc.DestinationPoint(NewPoint(179.5, 0), 90, oneDegree)
	assert.InDelta(t, -179.5, dest.Longitude, 1e-9)
}

func TestDistanceToSegment(t *testing.T) {
	calc := New()
	segment := Segment{Point1: NewPoint(0, 0), Point2: NewPoint(1, 0)}

	tests := []struct {
		name  string
		point Point
		want  float64
	}{
		{"perpendicular above", NewPoint(0.5, 1), oneDegree},
		{"perpendicular below", NewPoint(0.5, -1), oneDegree},
		{"on segment", NewPoint(0.25, 0), 0},
		{"beyond end", NewPoint(2, 0), oneDegree},
		{"before start", NewPoint(-1, 0), oneDegree},
		{"diagonal beyond start", NewPoint(-1, 1), calc.Distance(NewPoint(0, 0), NewPoint(-1, 1))},
		{"diagonal beyond end", NewPoint(2, -1), calc.Distance(NewPoint(1, 0), NewPoint(2, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.DistanceToSegment(tt.point, segment), 1e-3)
			assert.InDelta(t, tt.want, calc.DistanceToSegment(tt.point, segment.Reversed()), 1e-3)
		})
	}
}

func TestDistanceToSegmentPrefersEndpointOutsideProjection(t *testing.T) {
	calc := New()
	segment := Segment{Point1: NewPoint(0, 0), Point2: NewPoint(1, 0)}
	point := NewPoint(3, 0.5)

	got := calc.DistanceToSegment(point, segment)
	crossTrack := calc.Distance(NewPoint(3, 0), point)

	assert.InDelta(t, calc.Distance(segment.Point2, point), got, 1e-6)
	assert.Greater(t, got, crossTrack)
}

func TestSegmentDistanceAcrossNorthBearing(t *testing.T) {
	calc := New()
	// bearings 354° and 6°: twelve degrees apart, not 348
	segment := Segment{Point1: NewPoint(0, 0), Point2: NewPoint(-0.1, 1)}
	point := NewPoint(0.1, 1)

	d13 := calc.Distance(segment.Point1, point)
	got := calc.segmentDistance(point, segment)

	assert.Greater(t, got, 0.0)
	assert.Less(t, got, d13/2)
	assert.InDelta(t, calc.DistanceToSegment(point, segment), got, 1e-3)
}

func TestLength(t *testing.T) {
	calc := New()
	line := []Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1)}

	assert.InDelta(t, 2*oneDegree, calc.PathLength(line), 1e-6)
	assert.InDelta(t, 2*oneDegree, calc.Length(Segments(line)), 1e-6)
	assert.Zero(t, calc.Length(nil))
}

func TestArea(t *testing.T) {
	calc := New()
	ring := square(0, 0, 1)

	area := calc.RingArea(ring)
	assert.InDelta(t, 12391399902.070992, area, 1)
	assert.InDelta(t, area, calc.RingArea(reversed(ring)), 1e-3)

	hole := square(0.25, 0.25, 0.5)
	withHole := calc.Area([][]Point{ring, hole})
	assert.InDelta(t, area-calc.RingArea(hole), withHole, 1e-3)
	assert.Less(t, withHole, area)

	assert.Zero(t, calc.Area(nil))
	assert.Zero(t, calc.RingArea(ring[:2]))
}

func TestRadius(t *testing.T) {
	assert.Equal(t, EarthRadius, New().Radius())

	unit := NewWithRadius(1)
	assert.InDelta(t, math.Pi/2, unit.Distance(NewPoint(0, 0), NewPoint(90, 0)), 1e-12)
}
