package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPointNear(t *testing.T, want, got Point, delta float64) {
	t.Helper()
	assert.InDelta(t, want.Longitude, got.Longitude, delta, "longitude of %v", got)
	assert.InDelta(t, want.Latitude, got.Latitude, delta, "latitude of %v", got)
}

func TestCentroidPoints(t *testing.T) {
	calc := New()

	got := calc.CentroidPoints([]Point{NewPoint(0, 0), NewPoint(0, 2)})
	assertPointNear(t, NewPoint(0, 1), got, 1e-12)

	single := calc.CentroidPoints([]Point{NewPoint(3, 4)})
	assert.True(t, single.Equal(NewPoint(3, 4)))

	assert.Equal(t, Point{}, calc.CentroidPoints(nil))
}

func TestCentroidPointsDependsOnOrder(t *testing.T) {
	calc := New()
	points := []Point{NewPoint(0, 0), NewPoint(0, 2), NewPoint(0, 4)}

	forward := calc.CentroidPoints(points)
	backward := calc.CentroidPoints(reversed(points))

	assertPointNear(t, NewPoint(0, 2.5), forward, 1e-9)
	assertPointNear(t, NewPoint(0, 1.5), backward, 1e-9)
}

func TestCentroidLinePoints(t *testing.T) {
	calc := New()

	assertPointNear(t, NewPoint(1, 0), calc.CentroidLinePoints([]Point{NewPoint(0, 0), NewPoint(2, 0)}), 1e-9)
	assertPointNear(t, NewPoint(1, 0), calc.CentroidLinePoints([]Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1)}), 1e-9)

	// zero-length line collapses onto its first point
	same := []Point{NewPoint(5, 5), NewPoint(5, 5)}
	assert.True(t, calc.CentroidLinePoints(same).Equal(NewPoint(5, 5)))

	assert.True(t, calc.CentroidLinePoints([]Point{NewPoint(1, 2)}).Equal(NewPoint(1, 2)))
}

func TestCentroidLines(t *testing.T) {
	calc := New()

	equal := calc.CentroidLines([][]Point{
		{NewPoint(0, 0), NewPoint(2, 0)},
		{NewPoint(0, 2), NewPoint(2, 2)},
	})
	assertPointNear(t, NewPoint(1, 1), equal, 1e-3)

	// a line twice as long as the anchor pulls the centroid all the way over
	heavy := calc.CentroidLines([][]Point{
		{NewPoint(0, 0), NewPoint(2, 0)},
		{NewPoint(0, 2), NewPoint(4, 2)},
	})
	assertPointNear(t, NewPoint(2, 2), heavy, 1e-2)
}

func TestCentroidRing(t *testing.T) {
	calc := New()

	assertPointNear(t, NewPoint(0.5, 0.5), calc.CentroidRing(Segments(square(0, 0, 1))), 1e-12)
	assertPointNear(t, NewPoint(-9, -9), calc.CentroidRing(Segments(square(-10, -10, 2))), 1e-12)
	assertPointNear(t, NewPoint(0.5, 0.5), calc.CentroidRing(Segments(reversed(square(0, 0, 1)))), 1e-12)

	ring := square(0, 0, 1)
	ring[0] = NewPointWithAltitude(0, 0, 300)
	alt, ok := calc.CentroidRing(Segments(ring)).Alt()
	require.True(t, ok)
	assert.Equal(t, 300.0, alt)
}

func TestCentroidRingCollinear(t *testing.T) {
	calc := New()
	ring := []Point{NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2), NewPoint(0, 0)}

	got := calc.CentroidRing(Segments(ring))
	assertPointNear(t, NewPoint(1.25, 1.25), got, 1e-3)
}

func TestCentroidPolygonRings(t *testing.T) {
	calc := New()

	assertPointNear(t, NewPoint(2, 2), calc.CentroidPolygonRings([][]Point{square(0, 0, 4)}), 1e-12)

	// a hole in the north-east corner pushes the centroid south-west
	got := calc.CentroidPolygonRings([][]Point{square(0, 0, 4), square(2.5, 2.5, 1)})
	assert.Less(t, got.Longitude, 2.0)
	assert.Less(t, got.Latitude, 2.0)
	assertPointNear(t, NewPoint(1.875, 1.875), got, 1e-3)
}

func TestCentroidPolygons(t *testing.T) {
	calc := New()

	got := calc.CentroidPolygons([][][]Point{
		{square(0, 0, 1)},
		{square(2, 0, 1)},
	})
	assertPointNear(t, NewPoint(1.5, 0.5), got, 1e-3)

	single := calc.CentroidPolygons([][][]Point{{square(0, 0, 1)}})
	assertPointNear(t, NewPoint(0.5, 0.5), single, 1e-12)

	a := calc.CentroidPolygons([][][]Point{{square(0, 0, 1)}, {square(2, 0, 1)}, {square(0, 2, 1)}})
	b := calc.CentroidPolygons([][][]Point{{square(0, 2, 1)}, {square(2, 0, 1)}, {square(0, 0, 1)}})
	assert.False(t, a.GeoEqual(b), "merge is order dependent")
}

func TestMercator(t *testing.T) {
	x, y := Mercator(NewPoint(0, 0))
	assert.Zero(t, x)
	assert.InDelta(t, 0, y, 1e-12)

	_, north := Mercator(NewPoint(0, 89.9))
	_, clamped := Mercator(NewPoint(0, MaxMercatorLatitude))
	assert.Equal(t, clamped, north)

	assert.InDelta(t, 181.0, UnwrapLongitude(181, 170), 1e-12)
	assert.InDelta(t, -179.0, UnwrapLongitude(181, -170), 1e-12)
	assert.InDelta(t, 181.0, UnwrapLongitude(-179, 170), 1e-12)
	assert.InDelta(t, 10.0, UnwrapLongitude(10, 0), 1e-12)
}
