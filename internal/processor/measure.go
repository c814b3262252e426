// Package processor measures geometries in bulk and writes annotated GeoJSON.
package processor

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/woozymasta/geokit/internal/geo"
	"github.com/woozymasta/geokit/internal/geodesic"
	"github.com/woozymasta/geokit/internal/parser"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Query asks every measured geometry about a single point.
type Query struct {
	Point         geodesic.Point
	ErrorDistance float64
}

// Measurement holds the values derived from one geometry.
type Measurement struct {
	Geometry   geo.Geometry   `json:"-" yaml:"-"`
	Properties map[string]any `json:"-" yaml:"-"`

	Area     *float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Length   *float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Distance *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Contains *bool    `json:"contains,omitempty" yaml:"contains,omitempty"`

	ID       string         `json:"id,omitempty" yaml:"id,omitempty"`
	Type     geo.ObjectType `json:"type,omitempty" yaml:"type,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
	BBox     []float64      `json:"bbox,omitempty" yaml:"bbox,omitempty"`
	Centroid []float64      `json:"centroid,omitempty" yaml:"centroid,omitempty"`
	Index    int            `json:"index" yaml:"index"`
	Points   int            `json:"points" yaml:"points"`
}

// Valid reports whether the geometry was built.
func (m Measurement) Valid() bool { return m.Geometry != nil }

type job struct {
	Feature *geojson.Feature
	Index   int
}

// Measure derives the measurement of g and, when q is set, its distance to
// and containment of the query point.
func Measure(g geo.Geometry, q *Query) Measurement {
	m := Measurement{
		Geometry: g,
		Type:     g.Type(),
		Points:   len(g.Points()),
	}

	if box, ok := g.BoundingBox(); ok {
		m.BBox = box.Coordinates()
	}
	if c, ok := g.Centroid(); ok {
		m.Centroid = c.Coordinates()
	}
	if a, ok := g.(geo.Areal); ok {
		area := a.Area()
		m.Area = &area
	}
	if l, ok := g.(geo.Lineal); ok {
		length := l.Length()
		m.Length = &length
	}

	if q != nil {
		// JSON has no infinity; an empty collection reports no distance
		if d := g.Distance(q.Point, q.ErrorDistance); !math.IsInf(d, 0) {
			m.Distance = &d
		}
		contains := g.Contains(q.Point, q.ErrorDistance)
		m.Contains = &contains
	}

	return m
}

// MeasureFeatures builds and measures every feature of fc with a pool of
// concurrency workers. Results keep input order. Features that fail to build
// are logged and returned with Error set. Cancelling ctx stops dispatching new
// features; the measurements finished so far are returned with ctx.Err().
func MeasureFeatures(ctx context.Context, fc *geojson.FeatureCollection, concurrency int, q *Query) ([]Measurement, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	jobs := make(chan job)
	results := make(chan Measurement, len(fc.Features))

	go func() {
		defer close(jobs)
		for i, f := range fc.Features {
			select {
			case jobs <- job{Feature: f, Index: i}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- measureFeature(j, q)
			}
		}()
	}
	wg.Wait()
	close(results)

	measurements := make([]Measurement, 0, len(fc.Features))
	for m := range results {
		measurements = append(measurements, m)
	}
	sort.Slice(measurements, func(i, j int) bool {
		return measurements[i].Index < measurements[j].Index
	})

	valid := 0
	for _, m := range measurements {
		if m.Valid() {
			valid++
		}
	}
	log.Debug().
		Int("features", len(fc.Features)).
		Int("measured", len(measurements)).
		Int("valid", valid).
		Msg("Features measured")

	return measurements, ctx.Err()
}

func measureFeature(j job, q *Query) Measurement {
	f := j.Feature
	if f == nil {
		f = &geojson.Feature{}
	}

	g, err := parser.Geometry(f.Geometry)
	if err != nil {
		log.Error().
			Err(err).
			Int("feature", j.Index).
			Str("id", f.ID).
			Msg("Feature rejected")

		return Measurement{Index: j.Index, ID: f.ID, Properties: f.Properties, Error: err.Error()}
	}

	m := Measure(g, q)
	m.Index, m.ID, m.Properties = j.Index, f.ID, f.Properties

	return m
}
