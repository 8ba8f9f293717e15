package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// Point is a map coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Location describes where a venue is.
type Location struct {
	RoomName string        `json:"roomName"`
	Floor    *venues.Floor `json:"floor"`
	Location *Point        `json:"location,omitempty"`
}

// Locations maps venue identifiers to their locations.
type Locations map[string]Location

// ParseLocations decodes a venue-locations object.
func ParseLocations(data []byte) (Locations, error) {
	return ReadLocations(bytes.NewReader(data))
}

// ReadLocations decodes a venue-locations object from r.
func ReadLocations(r io.Reader) (Locations, error) {
	var locs Locations
	if err := json.NewDecoder(r).Decode(&locs); err != nil {
		return nil, fmt.Errorf("decode venue locations: %w", err)
	}
	if locs == nil {
		locs = Locations{}
	}
	return locs, nil
}

// Aliases returns the room names as a search alias map. Venues without a
// room name are left out.
func (l Locations) Aliases() venues.AliasMap {
	out := make(venues.AliasMap, len(l))
	for id, loc := range l {
		if name := strings.TrimSpace(loc.RoomName); name != "" {
			out[id] = []string{name}
		}
	}
	return out
}

// Floors returns the known floor of every venue that has one.
func (l Locations) Floors() map[string]venues.Floor {
	out := make(map[string]venues.Floor, len(l))
	for id, loc := range l {
		if loc.Floor != nil {
			out[id] = *loc.Floor
		}
	}
	return out
}
