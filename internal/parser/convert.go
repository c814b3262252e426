package parser

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/woozymasta/geokit/internal/geo"
)

// Geometry converts a decoded go-geom geometry. The Z ordinate becomes the
// altitude; M is dropped.
func Geometry(g geom.T) (geo.Geometry, error) {
	switch g := g.(type) {
	case nil:
		return nil, ErrNoGeometry

	case *geom.Point:
		if g.Empty() {
			return nil, fmt.Errorf("point: %w: empty", geo.ErrInvalidCoordinate)
		}
		return checked(geo.PointFromCoordinates(coords0(g.Coords(), g.Layout())))

	case *geom.LineString:
		return checked(geo.LineStringFromCoordinates(coords1(g.Coords(), g.Layout())))

	case *geom.Polygon:
		return checked(geo.PolygonFromCoordinates(coords2(g.Coords(), g.Layout())))

	case *geom.MultiPoint:
		return checked(geo.MultiPointFromCoordinates(coords1(g.Coords(), g.Layout())))

	case *geom.MultiLineString:
		return checked(geo.MultiLineStringFromCoordinates(coords2(g.Coords(), g.Layout())))

	case *geom.MultiPolygon:
		return checked(geo.MultiPolygonFromCoordinates(coords3(g.Coords(), g.Layout())))

	case *geom.GeometryCollection:
		members := make([]geo.Geometry, 0, g.NumGeoms())
		for i, child := range g.Geoms() {
			m, err := Geometry(child)
			if err != nil {
				return nil, fmt.Errorf("geometry %d: %w", i, err)
			}
			members = append(members, m)
		}
		return geo.NewGeometryCollection(members), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, g)
	}
}

// checked keeps a failed constructor's typed nil out of the interface.
func checked[G geo.Geometry](g G, err error) (geo.Geometry, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

func coords0(c geom.Coord, layout geom.Layout) []float64 {
	if len(c) < 2 {
		return c
	}

	out := []float64{c[0], c[1]}
	if z := layout.ZIndex(); z >= 0 && z < len(c) {
		out = append(out, c[z])
	}

	return out
}

func coords1(cs []geom.Coord, layout geom.Layout) [][]float64 {
	out := make([][]float64, len(cs))
	for i, c := range cs {
		out[i] = coords0(c, layout)
	}
	return out
}

func coords2(css [][]geom.Coord, layout geom.Layout) [][][]float64 {
	out := make([][][]float64, len(css))
	for i, cs := range css {
		out[i] = coords1(cs, layout)
	}
	return out
}

func coords3(csss [][][]geom.Coord, layout geom.Layout) [][][][]float64 {
	out := make([][][][]float64, len(csss))
	for i, css := range csss {
		out[i] = coords2(css, layout)
	}
	return out
}
