package geo

import "github.com/woozymasta/geokit/internal/geodesic"

// Contains tests point against the exterior ring; holes are ignored, see
// ContainsExcludingHoles.
//
// With errorDistance >= 0 a point within errorDistance meters of the ring
// counts as inside. With errorDistance < 0 the polygon shrinks by
// |errorDistance|: the point must be inside and farther than that from the
// ring.
func (p *Polygon) Contains(point geodesic.Point, errorDistance float64) bool {
	exterior := p.rings[0]

	if errorDistance <= 0 && !boxMayContain(exterior.box, point) {
		return false
	}

	distance := exterior.Distance(point, errorDistance)

	if errorDistance < 0 {
		return distance > -errorDistance && ringContains(exterior.points, point)
	}
	if distance > errorDistance {
		return ringContains(exterior.points, point)
	}
	return true
}

// ContainsExcludingHoles is Contains that also rejects points inside a hole.
// Hole boundaries are tested exactly, without tolerance.
func (p *Polygon) ContainsExcludingHoles(point geodesic.Point, errorDistance float64) bool {
	if !p.Contains(point, errorDistance) {
		return false
	}
	for _, hole := range p.rings[1:] {
		if ringContains(hole.points, point) {
			return false
		}
	}
	return true
}

// boxMayContain is a quick reject; boxes wider than a hemisphere may stand
// for rings that cross the antimeridian, so they never reject.
func boxMayContain(box geodesic.BoundingBox, point geodesic.Point) bool {
	if box.MaxLongitude-box.MinLongitude >= 180 {
		return true
	}
	return box.Contains(point)
}

// ringContains is a crossing-number test on the spherical Mercator
// projection of ring and point. Longitudes are unwrapped along the ring so
// rings crossing the antimeridian project contiguously. Points exactly on an
// edge may land either side.
func ringContains(ring []geodesic.Point, point geodesic.Point) bool {
	if len(ring) < 3 {
		return false
	}

	xs := make([]float64, len(ring))
	ys := make([]float64, len(ring))

	prev := ring[0].Longitude
	for i, vertex := range ring {
		lon := geodesic.UnwrapLongitude(vertex.Longitude, prev)
		prev = lon
		xs[i], ys[i] = geodesic.Mercator(geodesic.NewPoint(lon, vertex.Latitude))
	}

	x, y := geodesic.Mercator(geodesic.NewPoint(
		geodesic.UnwrapLongitude(point.Longitude, ring[0].Longitude),
		point.Latitude,
	))

	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		if (ys[i] > y) != (ys[j] > y) &&
			x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			inside = !inside
		}
	}

	return inside
}
