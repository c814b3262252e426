package geodesic

import "math"

// EarthRadius is the WGS-84 equatorial radius in meters.
const EarthRadius = 6378137.0

// Calculator does spherical trigonometry on a sphere of a fixed radius.
// Inputs and outputs are degrees and meters; it holds no mutable state and
// is safe for concurrent use.
type Calculator struct {
	radius float64
}

// New returns a calculator for a sphere of EarthRadius.
func New() Calculator {
	return Calculator{radius: EarthRadius}
}

// NewWithRadius returns a calculator for a sphere of the given radius in meters.
func NewWithRadius(radius float64) Calculator {
	return Calculator{radius: radius}
}

// Radius returns the sphere radius in meters.
func (c Calculator) Radius() float64 { return c.radius }

// Distance is the great-circle distance between two points in meters,
// computed with the haversine formula.
func (c Calculator) Distance(point1, point2 Point) float64 {
	return c.HaversineDistance(point1, point2)
}

// HaversineDistance is accurate for distances well below a meter.
func (c Calculator) HaversineDistance(point1, point2 Point) float64 {
	lat1, lat2 := toRadians(point1.Latitude), toRadians(point2.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(point2.Longitude - point1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)

	return c.radius * 2 * math.Asin(clamp(math.Sqrt(a)))
}

// LawOfCosinesDistance loses precision below about half a meter.
func (c Calculator) LawOfCosinesDistance(point1, point2 Point) float64 {
	lat1, lat2 := toRadians(point1.Latitude), toRadians(point2.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	cosDelta := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Acos(clamp(cosDelta)) * c.radius
}

// Bearing is the raw initial bearing in degrees within (-180, 180].
func (c Calculator) Bearing(point1, point2 Point) float64 {
	lat1, lat2 := toRadians(point1.Latitude), toRadians(point2.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return toDegrees(math.Atan2(y, x))
}

// InitialBearing is the bearing at point1 toward point2 in [0, 360).
func (c Calculator) InitialBearing(point1, point2 Point) float64 {
	return math.Mod(c.Bearing(point1, point2)+360, 360)
}

// AverageBearing is the initial bearing from the midpoint to point2.
func (c Calculator) AverageBearing(point1, point2 Point) float64 {
	return c.InitialBearing(c.Midpoint(point1, point2), point2)
}

// FinalBearing is the bearing on arrival at point2 in [0, 360).
func (c Calculator) FinalBearing(point1, point2 Point) float64 {
	return math.Mod(c.Bearing(point2, point1)+180, 360)
}

// Midpoint is the half-way point along the great circle. The altitude is the
// mean when both points carry one.
func (c Calculator) Midpoint(point1, point2 Point) Point {
	lat1, lon1 := toRadians(point1.Latitude), toRadians(point1.Longitude)
	lat2, lon2 := toRadians(point2.Latitude), toRadians(point2.Longitude)

	bx := math.Cos(lat2) * math.Cos(lon2-lon1)
	by := math.Cos(lat2) * math.Sin(lon2-lon1)

	lat3 := math.Atan2(math.Sin(lat1)+math.Sin(lat2), math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by))
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	mid := NewPoint(wrapLongitude(toDegrees(lon3)), toDegrees(lat3))

	alt1, ok1 := point1.Alt()
	alt2, ok2 := point2.Alt()
	if ok1 && ok2 {
		alt := (alt1 + alt2) / 2
		mid.Altitude = &alt
	}

	return mid
}

// DestinationPoint travels distance meters from origin along bearing degrees.
// The origin's altitude is carried over unchanged.
func (c Calculator) DestinationPoint(origin Point, bearing, distance float64) Point {
	theta := toRadians(bearing)
	lat1, lon1 := toRadians(origin.Latitude), toRadians(origin.Longitude)
	delta := distance / c.radius

	lat2 := math.Asin(clamp(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)))
	lon2 := lon1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1), math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return withAltitude(wrapLongitude(toDegrees(lon2)), toDegrees(lat2), origin.Altitude)
}

// Normalize calls the package-level Normalize.
func (c Calculator) Normalize(point Point) Point {
	return Normalize(point)
}

// Normalize wraps longitude into (-180, 180] and latitude into (-90, 90].
// Normalize(Normalize(p)) == Normalize(p).
func Normalize(point Point) Point {
	return withAltitude(
		normalizeCoordinate(point.Longitude, 360),
		normalizeCoordinate(point.Latitude, 180),
		point.Altitude,
	)
}

func normalizeCoordinate(value, shift float64) float64 {
	shifted := math.Mod(value, shift)

	switch {
	case shifted > shift/2:
		return shifted - shift
	case shifted <= -shift/2:
		return shifted + shift
	default:
		return shifted
	}
}

func wrapLongitude(lon float64) float64 {
	if lon > -180 && lon <= 180 {
		return lon
	}
	return normalizeCoordinate(lon, 360)
}

// DistanceToSegment is the shortest distance in meters from point to the
// segment: cross-track when the perpendicular foot falls on the segment,
// otherwise the distance to the nearer endpoint. Both directions of the
// segment are evaluated and the smaller result wins.
func (c Calculator) DistanceToSegment(point Point, segment Segment) float64 {
	return math.Min(
		c.segmentDistance(point, segment),
		c.segmentDistance(point, segment.Reversed()),
	)
}

func (c Calculator) segmentDistance(point Point, segment Segment) float64 {
	theta12 := toRadians(c.InitialBearing(segment.Point1, segment.Point2))
	theta13 := toRadians(c.InitialBearing(segment.Point1, point))
	d13 := c.Distance(segment.Point1, point)

	// bearings live in [0, 2π); compare them as a signed angle
	dTheta := math.Remainder(theta13-theta12, 2*math.Pi)
	if math.Abs(dTheta) > math.Pi/2 {
		return d13
	}

	dXT := math.Asin(clamp(math.Sin(d13/c.radius)*math.Sin(dTheta))) * c.radius
	d12 := c.Distance(segment.Point1, segment.Point2)
	d14 := math.Acos(clamp(math.Cos(d13/c.radius)/math.Cos(dXT/c.radius))) * c.radius

	if d14 > d12 {
		return c.Distance(segment.Point2, point)
	}

	return math.Abs(dXT)
}

// Length sums the segment distances in meters.
func (c Calculator) Length(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += c.Distance(s.Point1, s.Point2)
	}
	return total
}

// PathLength is the length of the line through points.
func (c Calculator) PathLength(points []Point) float64 {
	return c.Length(Segments(points))
}

// Area of a polygon in square meters: the exterior ring's area minus the
// area of every hole. rings[0] is the exterior.
func (c Calculator) Area(rings [][]Point) float64 {
	if len(rings) == 0 {
		return 0
	}

	area := c.RingArea(rings[0])
	for _, hole := range rings[1:] {
		area -= c.RingArea(hole)
	}

	return area
}

// RingArea is the spherical area enclosed by a ring in square meters. The
// result does not depend on the winding direction.
func (c Calculator) RingArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	var sum float64
	for i := range points {
		p1 := points[len(points)-1]
		if i > 0 {
			p1 = points[i-1]
		}
		p2 := points[i]

		sum += toRadians(p2.Longitude-p1.Longitude) *
			(2 + math.Sin(toRadians(p1.Latitude)) + math.Sin(toRadians(p2.Latitude)))
	}

	return math.Abs(-sum * c.radius * c.radius / 2)
}
