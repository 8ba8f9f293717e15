package gtfs

import (
	"slices"

	"github.com/theoremus-urban-solutions/venuefinder/natsort"
	"github.com/theoremus-urban-solutions/venuefinder/routes"
)

// GTFS route_type values used by PublicRoutes callers.
const (
	RouteTypeTram   = 0
	RouteTypeSubway = 1
	RouteTypeRail   = 2
	RouteTypeBus    = 3
	RouteTypeFerry  = 4
)

// RouteIndex stores the GTFS route table in memory for lookups.
// It is read-only after construction and safe for concurrent use.
type RouteIndex struct {
	agencyID        string
	agencyName      string
	routeIDs        []string          // file order
	routeShortNames map[string]string // route_id -> short_name
	routeTypes      map[string]int    // route_id -> route_type (GTFS enum)
}

func newRouteIndex() *RouteIndex {
	return &RouteIndex{
		routeShortNames: map[string]string{},
		routeTypes:      map[string]int{},
	}
}

func (g *RouteIndex) GetAgencyID() string { return g.agencyID }

func (g *RouteIndex) GetAgencyName() string { return g.agencyName }

func (g *RouteIndex) GetRouteShortName(routeID string) string { return g.routeShortNames[routeID] }

// GetRouteType returns the route_type of routeID, or -1 when the route is
// unknown or has no type.
func (g *RouteIndex) GetRouteType(routeID string) int {
	if t, ok := g.routeTypes[routeID]; ok {
		return t
	}
	return -1
}

func (g *RouteIndex) HasRoute(routeID string) bool {
	_, ok := g.routeShortNames[routeID]
	return ok
}

// GetAllRoutes returns every route_id in natural order.
func (g *RouteIndex) GetAllRoutes() []string {
	keys := slices.Clone(g.routeIDs)
	slices.SortFunc(keys, natsort.Compare)
	return keys
}

// LineName returns the rider-facing name of routeID: its short name, or
// the id itself when the short name is blank.
func (g *RouteIndex) LineName(routeID string) string {
	if sn := g.routeShortNames[routeID]; sn != "" {
		return sn
	}
	return routeID
}

// PublicRoutes returns public route identifiers for the indexed routes
// whose route_type is one of types, or for all routes when types is empty.
// The result is deduplicated and merged in route order.
func (g *RouteIndex) PublicRoutes(types ...int) []string {
	var lines []string
	for _, id := range g.routeIDs {
		if len(types) > 0 && !slices.Contains(types, g.GetRouteType(id)) {
			continue
		}
		lines = append(lines, routes.Public(g.LineName(id)))
	}
	return routes.Merge(lines)
}
