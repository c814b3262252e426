package processor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/woozymasta/geokit/internal/geo"
	"github.com/woozymasta/geokit/internal/geodesic"
	"github.com/woozymasta/geokit/internal/parser"
)

const collection = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "id": "square", "properties": {"name": "unit square"},
		 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]}},
		{"type": "Feature", "id": "open", "properties": {},
		 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,1],[1,1],[1,0]]]}},
		{"type": "Feature", "id": "route", "properties": {},
		 "geometry": {"type": "LineString", "coordinates": [[0,0],[1,0]]}},
		{"type": "Feature", "id": "nothing", "properties": {}, "geometry": null},
		{"type": "Feature", "id": "far", "properties": {},
		 "geometry": {"type": "Point", "coordinates": [10, 10]}}
	]
}`

func parseCollection(t *testing.T) *geojson.FeatureCollection {
	t.Helper()
	fc, err := parser.ParseCollection([]byte(collection))
	require.NoError(t, err)
	return fc
}

func TestMeasureFeatures(t *testing.T) {
	query := &Query{Point: geodesic.NewPoint(0.5, 0.5)}

	measurements, err := MeasureFeatures(context.Background(), parseCollection(t), 3, query)
	require.NoError(t, err)
	require.Len(t, measurements, 5)

	for i, m := range measurements {
		assert.Equal(t, i, m.Index)
	}

	square := measurements[0]
	assert.True(t, square.Valid())
	assert.Equal(t, "square", square.ID)
	assert.Equal(t, geo.TypePolygon, square.Type)
	assert.Equal(t, []float64{0, 0, 1, 1}, square.BBox)
	assert.Equal(t, 5, square.Points)
	require.NotNil(t, square.Area)
	assert.InDelta(t, 12391399902.070992, *square.Area, 1)
	assert.Nil(t, square.Length)
	require.NotNil(t, square.Contains)
	assert.True(t, *square.Contains)
	assert.Equal(t, "unit square", square.Properties["name"])

	open := measurements[1]
	assert.False(t, open.Valid())
	assert.Contains(t, open.Error, "ring not closed")

	route := measurements[2]
	require.NotNil(t, route.Length)
	assert.InDelta(t, 111319.49, *route.Length, 1e-2)
	require.NotNil(t, route.Distance)
	assert.InDelta(t, 55659.7, *route.Distance, 50)
	assert.False(t, *route.Contains)

	assert.Contains(t, measurements[3].Error, parser.ErrNoGeometry.Error())

	far := measurements[4]
	assert.True(t, far.Valid())
	assert.False(t, *far.Contains)
}

func TestMeasureFeaturesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	measurements, err := MeasureFeatures(ctx, parseCollection(t), 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, len(measurements), 5)
}

func TestMeasureWithoutQuery(t *testing.T) {
	g, err := parser.ParseWKT("POINT (1 2)")
	require.NoError(t, err)

	m := Measure(g, nil)
	assert.Nil(t, m.Distance)
	assert.Nil(t, m.Contains)
	assert.Equal(t, []float64{1, 2}, m.Centroid)
}

func TestMeasureEmptyCollection(t *testing.T) {
	m := Measure(geo.NewGeometryCollection(nil), &Query{Point: geodesic.NewPoint(0, 0)})

	assert.Nil(t, m.Distance)
	assert.Nil(t, m.BBox)
	assert.Nil(t, m.Centroid)
	require.NotNil(t, m.Contains)
	assert.False(t, *m.Contains)

	_, err := json.Marshal(m)
	assert.NoError(t, err)
}

func TestAnnotateAndSave(t *testing.T) {
	measurements, err := MeasureFeatures(context.Background(), parseCollection(t), 2, nil)
	require.NoError(t, err)

	fc := Annotate(measurements)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "square", fc.Features[0].ID)
	assert.Equal(t, "unit square", fc.Features[0].Properties["name"])
	assert.Contains(t, fc.Features[0].Properties, "measure")

	path := filepath.Join(t.TempDir(), "out", "measured.geojson")
	require.NoError(t, SaveGeoJSON(path, fc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// the annotated output is itself a valid collection
	back, err := parser.ParseCollection(data)
	require.NoError(t, err)
	require.Len(t, back.Features, 3)

	g, err := parser.Geometry(back.Features[0].Geometry)
	require.NoError(t, err)
	assert.True(t, geo.Equal(measurements[0].Geometry, g))

	measure, ok := back.Features[2].Properties["measure"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Point", measure["type"])
}

func TestMarshal(t *testing.T) {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}

	data, err := Marshal(fc, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: FeatureCollection")

	data, err = Marshal(fc, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))

	_, err = Marshal(fc, "xml")
	assert.Error(t, err)
}

func TestFetchAndLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zone.wkt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("POINT (1 2)"))
	}))
	defer srv.Close()

	ctx := context.Background()

	data, err := Fetch(ctx, srv.Client(), srv.URL+"/zone.wkt")
	require.NoError(t, err)
	assert.Equal(t, "POINT (1 2)", string(data))

	_, err = Fetch(ctx, srv.Client(), srv.URL+"/missing")
	assert.EqualError(t, err, "status 404")

	data, err = Load(ctx, srv.Client(), srv.URL+"/zone.wkt")
	require.NoError(t, err)
	assert.Equal(t, "POINT (1 2)", string(data))

	path := filepath.Join(t.TempDir(), "zone.wkt")
	require.NoError(t, os.WriteFile(path, []byte("POINT (3 4)"), 0o600))
	data, err = Load(ctx, NewClient(), path)
	require.NoError(t, err)
	assert.Equal(t, "POINT (3 4)", string(data))
}
