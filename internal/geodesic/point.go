// Package geodesic implements spherical-earth geometry primitives and the
// calculator every geometry type is measured with.
package geodesic

import (
	"fmt"
	"math"
)

// Point is a longitude/latitude pair in degrees with an optional altitude in meters.
type Point struct {
	Altitude  *float64 `json:"altitude,omitempty" yaml:"altitude,omitempty"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
}

// NewPoint returns a point without altitude.
func NewPoint(longitude, latitude float64) Point {
	return Point{Longitude: longitude, Latitude: latitude}
}

// NewPointWithAltitude returns a point carrying an altitude.
func NewPointWithAltitude(longitude, latitude, altitude float64) Point {
	return Point{Longitude: longitude, Latitude: latitude, Altitude: &altitude}
}

// Alt returns the altitude and whether the point has one.
func (p Point) Alt() (float64, bool) {
	if p.Altitude == nil {
		return 0, false
	}

	return *p.Altitude, true
}

// Coordinates returns the GeoJSON position [lon, lat] or [lon, lat, alt].
func (p Point) Coordinates() []float64 {
	if p.Altitude != nil {
		return []float64{p.Longitude, p.Latitude, *p.Altitude}
	}

	return []float64{p.Longitude, p.Latitude}
}

// Equal reports raw coordinate equality, altitude included.
func (p Point) Equal(o Point) bool {
	if p.Longitude != o.Longitude || p.Latitude != o.Latitude {
		return false
	}
	if (p.Altitude == nil) != (o.Altitude == nil) {
		return false
	}

	return p.Altitude == nil || *p.Altitude == *o.Altitude
}

// GeoEqual reports whether both points are the same place once normalized.
// Altitude is ignored.
func (p Point) GeoEqual(o Point) bool {
	a, b := Normalize(p), Normalize(o)
	return a.Longitude == b.Longitude && a.Latitude == b.Latitude
}

// String formats the point as "(lon, lat)" or "(lon, lat, alt)".
func (p Point) String() string {
	if p.Altitude != nil {
		return fmt.Sprintf("(%g, %g, %g)", p.Longitude, p.Latitude, *p.Altitude)
	}

	return fmt.Sprintf("(%g, %g)", p.Longitude, p.Latitude)
}

// withAltitude builds a point with its own copy of altitude.
func withAltitude(longitude, latitude float64, altitude *float64) Point {
	if altitude == nil {
		return NewPoint(longitude, latitude)
	}

	return NewPointWithAltitude(longitude, latitude, *altitude)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// clamp keeps inverse trig inputs inside [-1, 1].
func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
