package geodesic

// Segment is a pair of adjacent points of a line or ring.
type Segment struct {
	Point1 Point
	Point2 Point
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{Point1: s.Point2, Point2: s.Point1}
}

// Segments returns the len(points)-1 segments joining adjacent points.
func Segments(points []Point) []Segment {
	if len(points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, Segment{Point1: points[i-1], Point2: points[i]})
	}

	return segments
}
