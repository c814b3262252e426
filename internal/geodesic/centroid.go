package geodesic

// Centroids of composites are built by a weighted merge: the running
// centroid starts at the first element's centroid and is shifted toward each
// following element's centroid by the distance between them scaled by the
// element's weight relative to the first element, halved. The merge depends on
// input order and is not a true spherical barycenter.

// CentroidPoints merges points with unit weight.
func (c Calculator) CentroidPoints(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	centroid := points[0]
	for _, p := range points[1:] {
		centroid = c.shift(centroid, p, 0.5)
	}

	return centroid
}

// CentroidLinePoints is the point half-way along the line's arc length.
func (c Calculator) CentroidLinePoints(points []Point) Point {
	switch len(points) {
	case 0:
		return Point{}
	case 1:
		return points[0]
	}

	total := c.PathLength(points)
	if total == 0 {
		return points[0]
	}

	mid := total / 2
	walked := 0.0
	last := len(points) - 2
	for i := 0; i < len(points)-1; i++ {
		step := c.Distance(points[i], points[i+1])
		if walked+step >= mid {
			last = i
			break
		}
		walked += step
	}

	// rounding may leave walked at the full length; step back onto the last segment
	if walked >= mid && last == len(points)-2 {
		walked = total - c.Distance(points[last], points[last+1])
	}

	bearing := c.InitialBearing(points[last], points[last+1])

	return c.DestinationPoint(points[last], bearing, mid-walked)
}

// CentroidLines merges line midpoints weighted by line length.
func (c Calculator) CentroidLines(lines [][]Point) Point {
	if len(lines) == 0 {
		return Point{}
	}

	centroid := c.CentroidLinePoints(lines[0])
	anchor := c.PathLength(lines[0])
	if anchor == 0 {
		return centroid
	}

	for _, line := range lines[1:] {
		weight := c.PathLength(line)
		centroid = c.shift(centroid, c.CentroidLinePoints(line), weight/anchor/2)
	}

	return centroid
}

// CentroidRing is the planar shoelace centroid of a closed ring, computed in
// a frame offset by the first vertex. It treats degrees as Euclidean
// coordinates and is an approximation. The first vertex's altitude is kept.
func (c Calculator) CentroidRing(segments []Segment) Point {
	if len(segments) == 0 {
		return Point{}
	}

	origin := segments[0].Point1

	var sum, sumX, sumY float64
	for _, s := range segments {
		x1, y1 := s.Point1.Longitude-origin.Longitude, s.Point1.Latitude-origin.Latitude
		x2, y2 := s.Point2.Longitude-origin.Longitude, s.Point2.Latitude-origin.Latitude

		cross := x1*y2 - x2*y1
		sum += cross
		sumX += (x1 + x2) * cross
		sumY += (y1 + y2) * cross
	}

	area := sum / 2
	if area == 0 {
		// collinear ring: fall back to its distinct vertices
		vertices := make([]Point, 0, len(segments))
		for _, s := range segments {
			vertices = append(vertices, s.Point1)
		}
		merged := c.CentroidPoints(vertices)
		return withAltitude(merged.Longitude, merged.Latitude, origin.Altitude)
	}

	return withAltitude(
		sumX/6/area+origin.Longitude,
		sumY/6/area+origin.Latitude,
		origin.Altitude,
	)
}

// CentroidPolygonRings is the exterior ring centroid pushed away from each
// hole's centroid by twice the hole's share of the exterior area.
func (c Calculator) CentroidPolygonRings(rings [][]Point) Point {
	if len(rings) == 0 {
		return Point{}
	}

	centroid := c.CentroidRing(Segments(rings[0]))
	mainArea := c.RingArea(rings[0])
	if mainArea == 0 {
		return centroid
	}

	for _, hole := range rings[1:] {
		holeCentroid := c.CentroidRing(Segments(hole))
		holeArea := c.RingArea(hole)

		distance := c.Distance(centroid, holeCentroid) * 2 * holeArea / mainArea
		bearing := c.InitialBearing(holeCentroid, centroid)

		centroid = c.DestinationPoint(centroid, bearing, distance)
	}

	return centroid
}

// CentroidPolygons merges polygon centroids weighted by polygon area.
func (c Calculator) CentroidPolygons(polygons [][][]Point) Point {
	if len(polygons) == 0 {
		return Point{}
	}

	centroid := c.CentroidPolygonRings(polygons[0])
	anchor := c.Area(polygons[0])
	if anchor == 0 {
		return centroid
	}

	for _, rings := range polygons[1:] {
		weight := c.Area(rings)
		centroid = c.shift(centroid, c.CentroidPolygonRings(rings), weight/anchor/2)
	}

	return centroid
}

// shift moves from toward to by fraction of the distance between them.
func (c Calculator) shift(from, to Point, fraction float64) Point {
	distance := c.Distance(from, to) * fraction
	if distance == 0 {
		return from
	}

	return c.DestinationPoint(from, c.InitialBearing(from, to), distance)
}
