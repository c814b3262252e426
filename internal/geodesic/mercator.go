package geodesic

import "math"

// MaxMercatorLatitude is where spherical Mercator stops being finite enough
// to use; latitudes beyond it are clamped.
const MaxMercatorLatitude = 85.05112878

// Mercator projects a point onto the spherical Mercator plane.
// x is longitude in radians, y is the Mercator ordinate in radians.
func Mercator(p Point) (x, y float64) {
	lat := p.Latitude
	if lat > MaxMercatorLatitude {
		lat = MaxMercatorLatitude
	} else if lat < -MaxMercatorLatitude {
		lat = -MaxMercatorLatitude
	}

	x = toRadians(p.Longitude)
	y = math.Log(math.Tan(math.Pi/4 + toRadians(lat)/2))

	return x, y
}

// UnwrapLongitude shifts lon by whole turns so it lies within 180° of ref.
// Rings crossing the antimeridian stay contiguous once projected.
func UnwrapLongitude(lon, ref float64) float64 {
	return lon - 360*math.Round((lon-ref)/360)
}
