// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/woozymasta/geokit/internal/geodesic"
	"github.com/woozymasta/geokit/internal/parser"
	"github.com/woozymasta/geokit/internal/processor"
)

// maxBodySize caps POST /api/measure payloads.
const maxBodySize = 8 << 20

type distanceResponse struct {
	Distance *float64  `json:"distance"`
	Zone     string    `json:"zone"`
	Point    []float64 `json:"point"`
	Contains bool      `json:"contains"`
}

type containsResponse struct {
	Point []float64 `json:"point"`
	Zones []string  `json:"zones"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes registers the API on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/zones", s.HandleZonesList)
	mux.HandleFunc("GET /api/zones/{name}/distance", s.HandleZoneDistance)
	mux.HandleFunc("GET /api/contains", s.HandleContains)
	mux.HandleFunc("POST /api/measure", s.HandleMeasure)
	return mux
}

// HandleZonesList serves the precomputed zone list.
func (s *ServerContext) HandleZonesList(w http.ResponseWriter, r *http.Request) {
	if match := r.Header.Get("If-None-Match"); match == s.zonesETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", s.zonesETag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.ZonesJSON)
}

// HandleZoneDistance reports the distance from the query point to one zone.
func (s *ServerContext) HandleZoneDistance(w http.ResponseWriter, r *http.Request) {
	zone, ok := s.Resolve(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("zone %q not found", r.PathValue("name")))
		return
	}

	point, err := queryPoint(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tolerance, err := queryErrorDistance(r, zone.ErrorDistance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := distanceResponse{
		Zone:     zone.Name,
		Point:    point.Coordinates(),
		Contains: zone.Geometry.Contains(point, tolerance),
	}
	if d := zone.Geometry.Distance(point, tolerance); !math.IsInf(d, 0) {
		resp.Distance = &d
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleContains lists every zone containing the query point. An explicit
// error parameter overrides the per-zone tolerance.
func (s *ServerContext) HandleContains(w http.ResponseWriter, r *http.Request) {
	point, err := queryPoint(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := containsResponse{Point: point.Coordinates(), Zones: []string{}}
	for _, z := range s.Zones {
		tolerance, err := queryErrorDistance(r, z.ErrorDistance)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if z.Geometry.Contains(point, tolerance) {
			resp.Zones = append(resp.Zones, z.Name)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMeasure measures a GeoJSON geometry or WKT body. With lon/lat query
// parameters the point is tested against it too.
func (s *ServerContext) HandleMeasure(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, err := parser.Parse(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var query *processor.Query
	if r.URL.Query().Has("lon") || r.URL.Query().Has("lat") {
		point, err := queryPoint(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		tolerance, err := queryErrorDistance(r, s.ErrorDistance)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		query = &processor.Query{Point: point, ErrorDistance: tolerance}
	}

	writeJSON(w, http.StatusOK, processor.Measure(g, query))
}

func queryPoint(r *http.Request) (geodesic.Point, error) {
	lon, err := queryFloat(r, "lon")
	if err != nil {
		return geodesic.Point{}, err
	}
	lat, err := queryFloat(r, "lat")
	if err != nil {
		return geodesic.Point{}, err
	}

	if r.URL.Query().Has("alt") {
		alt, err := queryFloat(r, "alt")
		if err != nil {
			return geodesic.Point{}, err
		}
		return geodesic.NewPointWithAltitude(lon, lat, alt), nil
	}

	return geodesic.NewPoint(lon, lat), nil
}

func queryErrorDistance(r *http.Request, fallback float64) (float64, error) {
	if !r.URL.Query().Has("error") {
		return fallback, nil
	}
	return queryFloat(r, "error")
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %q parameter", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %q parameter: %q", name, raw)
	}

	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
