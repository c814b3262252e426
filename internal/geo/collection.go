package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/woozymasta/geokit/internal/geodesic"
)

// GeometryCollection is an ordered, possibly empty, list of geometries of
// any type, nested collections included.
type GeometryCollection struct {
	geometries []Geometry
	points     []geodesic.Point
	box        geodesic.BoundingBox
	centroid   geodesic.Point
	bounded    bool
	centered   bool
}

// NewGeometryCollection never fails; nil members, typed nil pointers
// included, are dropped.
func NewGeometryCollection(geometries []Geometry) *GeometryCollection {
	kept := make([]Geometry, 0, len(geometries))
	for _, g := range geometries {
		if !isNil(g) {
			kept = append(kept, g)
		}
	}

	var points, centroids []geodesic.Point
	for _, g := range kept {
		points = append(points, g.Points()...)
		if c, ok := g.Centroid(); ok {
			centroids = append(centroids, c)
		}
	}

	box, bounded := geodesic.Best(boxesOf(kept))

	gc := &GeometryCollection{
		geometries: kept,
		points:     points,
		box:        box,
		bounded:    bounded,
	}
	if len(centroids) > 0 {
		gc.centroid = calculator.CentroidPoints(centroids)
		gc.centered = true
	}

	return gc
}

func isNil(g Geometry) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Type returns TypeGeometryCollection.
func (gc *GeometryCollection) Type() ObjectType { return TypeGeometryCollection }

// Geometries returns the members.
func (gc *GeometryCollection) Geometries() []Geometry { return slices.Clone(gc.geometries) }

// Len is the number of members.
func (gc *GeometryCollection) Len() int { return len(gc.geometries) }

// BoundingBox is the union of the members' boxes; not ok when no member has one.
func (gc *GeometryCollection) BoundingBox() (geodesic.BoundingBox, bool) {
	return gc.box, gc.bounded
}

// Centroid is the unit-weight merge of the member centroids; not ok when no
// member has one.
func (gc *GeometryCollection) Centroid() (geodesic.Point, bool) {
	return gc.centroid, gc.centered
}

// Points flattens every member's points.
func (gc *GeometryCollection) Points() []geodesic.Point { return slices.Clone(gc.points) }

// Distance is the distance to the nearest member, +Inf when empty.
func (gc *GeometryCollection) Distance(point geodesic.Point, errorDistance float64) float64 {
	d := math.Inf(1)
	for _, g := range gc.geometries {
		d = math.Min(d, g.Distance(point, errorDistance))
	}
	return d
}

// Contains reports whether any member contains point.
func (gc *GeometryCollection) Contains(point geodesic.Point, errorDistance float64) bool {
	for _, g := range gc.geometries {
		if g.Contains(point, errorDistance) {
			return true
		}
	}
	return false
}

// GeoJSON returns the GeoJSON object with members under "geometries".
func (gc *GeometryCollection) GeoJSON() map[string]any {
	members := make([]map[string]any, len(gc.geometries))
	for i, g := range gc.geometries {
		members[i] = g.GeoJSON()
	}
	return map[string]any{"type": string(TypeGeometryCollection), "geometries": members}
}

// MarshalJSON implements json.Marshaler.
func (gc *GeometryCollection) MarshalJSON() ([]byte, error) {
	members := gc.geometries
	if members == nil {
		members = []Geometry{}
	}
	return json.Marshal(geometriesObject{Type: TypeGeometryCollection, Geometries: members})
}

func (gc *GeometryCollection) String() string {
	items := make([]string, len(gc.geometries))
	for i, g := range gc.geometries {
		items[i] = fmt.Sprintf("%d - %s", i+1, g)
	}
	return "GeometryCollection: " + describe(items)
}
