package routes

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/venuefinder/natsort"
)

const (
	// PublicPrefix marks a public transport line.
	PublicPrefix = "PUB:"

	// PublicStyle is the style key shared by all public lines.
	PublicStyle = "PUBLIC"
)

// IsPublic reports whether route is a public transport line.
func IsPublic(route string) bool {
	return strings.HasPrefix(route, PublicPrefix)
}

// Style returns the key used to pick display styling for route: PublicStyle
// for public lines, route itself for shuttles.
func Style(route string) string {
	if IsPublic(route) {
		return PublicStyle
	}
	return route
}

// Simplify returns the display name of route, without the public prefix.
func Simplify(route string) string {
	if IsPublic(route) {
		return route[len(PublicPrefix):]
	}
	return route
}

// Public returns the route identifier for the public line named line.
func Public(line string) string {
	return PublicPrefix + line
}

// Route is a classified route identifier ready for presentation.
type Route struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Style  string `json:"style"`
	Public bool   `json:"public"`
}

// Describe classifies id.
func Describe(id string) Route {
	return Route{ID: id, Name: Simplify(id), Style: Style(id), Public: IsPublic(id)}
}

// Merge combines route lists, drops duplicates and empty identifiers, and
// orders the result: shuttles first, then public lines, each naturally
// sorted by display name.
func Merge(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range lists {
		for _, id := range l {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	slices.SortStableFunc(out, compare)
	return out
}

func compare(a, b string) int {
	pa, pb := IsPublic(a), IsPublic(b)
	if pa != pb {
		if pb {
			return -1
		}
		return 1
	}
	if c := natsort.Compare(Simplify(a), Simplify(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// ParseShuttles decodes a JSON array of internal shuttle route names.
// Names that look like public lines are rejected.
func ParseShuttles(data []byte) ([]string, error) {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decode shuttle routes: %w", err)
	}
	for _, n := range names {
		if IsPublic(n) {
			return nil, fmt.Errorf("shuttle route %q uses the public prefix %q", n, PublicPrefix)
		}
	}
	return names, nil
}
