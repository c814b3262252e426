package server

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geokit/internal/config"
	"github.com/woozymasta/geokit/internal/geo"
	"github.com/woozymasta/geokit/internal/processor"
)

// Zone is a catalogue entry with its parsed geometry.
type Zone struct {
	Geometry      geo.Geometry
	Index         *int
	Name          string
	Aliases       []string
	ErrorDistance float64
}

// zoneInfo is the list entry served by /api/zones.
type zoneInfo struct {
	processor.Measurement
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases,omitempty"`
	ErrorDistance float64  `json:"error_distance"`
}

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	ZoneNameResolver map[string]string
	zones            map[string]*Zone
	Zones            []*Zone
	ZonesJSON        []byte
	zonesETag        string
	ErrorDistance    float64
}

// NewServerContext parses every configured zone and sets up the name
// resolver. Zones whose geometry fails to build are skipped.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().Int("config_zones_count", len(cfg.Zones)).Msg("Initializing server context")

	s := &ServerContext{
		ZoneNameResolver: make(map[string]string),
		zones:            make(map[string]*Zone),
		ErrorDistance:    cfg.ErrorDistance,
	}

	for _, z := range cfg.Zones {
		g, err := z.Geometry()
		if err != nil {
			log.Warn().
				Err(err).
				Str("zone", z.Name).
				Msg("Skipping zone: invalid geometry")
			continue
		}

		zone := &Zone{
			Geometry:      g,
			Index:         z.Index,
			Name:          z.Name,
			Aliases:       z.Aliases,
			ErrorDistance: z.Tolerance(cfg.ErrorDistance),
		}

		// Setup Resolver
		s.ZoneNameResolver[z.Name] = z.Name
		for _, alias := range z.Aliases {
			s.ZoneNameResolver[alias] = z.Name
		}
		s.zones[z.Name] = zone

		log.Debug().
			Str("zone", z.Name).
			Str("type", string(g.Type())).
			Float64("error_distance", zone.ErrorDistance).
			Msg("Zone validated and added to context")

		s.Zones = append(s.Zones, zone)
	}

	sort.Slice(s.Zones, func(i, j int) bool {
		idxI, idxJ := 999999, 999999
		if s.Zones[i].Index != nil {
			idxI = *s.Zones[i].Index
		}
		if s.Zones[j].Index != nil {
			idxJ = *s.Zones[j].Index
		}
		if idxI != idxJ {
			return idxI < idxJ
		}

		return s.Zones[i].Name < s.Zones[j].Name
	})

	infos := make([]zoneInfo, len(s.Zones))
	for i, z := range s.Zones {
		m := processor.Measure(z.Geometry, nil)
		m.Index = i
		infos[i] = zoneInfo{Measurement: m, Name: z.Name, Aliases: z.Aliases, ErrorDistance: z.ErrorDistance}
	}

	var err error
	if s.ZonesJSON, err = json.Marshal(infos); err != nil {
		log.Error().Err(err).Msg("Failed to encode zone list")
		s.ZonesJSON = []byte("[]")
	}

	h := fnv.New64a()
	_, _ = h.Write(s.ZonesJSON)
	s.zonesETag = fmt.Sprintf(`"%x"`, h.Sum64())

	log.Info().
		Int("valid_zones_count", len(s.Zones)).
		Msg("Server context initialized successfully")

	return s
}

// Resolve finds a zone by name or alias.
func (s *ServerContext) Resolve(name string) (*Zone, bool) {
	canonical, ok := s.ZoneNameResolver[name]
	if !ok {
		return nil, false
	}

	z, ok := s.zones[canonical]
	return z, ok
}
