package gtfsrt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/venuefinder/natsort"
	"github.com/theoremus-urban-solutions/venuefinder/routes"
)

// ErrEmptyFeed is returned by ParseFeed for zero-length input.
var ErrEmptyFeed = errors.New("gtfsrt: empty feed")

// LineNamer maps a GTFS route_id to a rider-facing line name.
// *gtfs.RouteIndex implements it.
type LineNamer interface {
	LineName(routeID string) string
}

// Feed is a decoded GTFS-RT FeedMessage reduced to the routes it mentions.
type Feed struct {
	headerTimestamp int64
	entities        int
	skipped         int
	routeIDs        map[string]struct{}
}

// ParseFeed decodes a GTFS-RT FeedMessage.
func ParseFeed(data []byte) (*Feed, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFeed
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("decode gtfs-rt feed: %w", err)
	}
	return newFeed(&fm), nil
}

func newFeed(fm *gtfsrtpb.FeedMessage) *Feed {
	f := &Feed{
		headerTimestamp: int64(fm.GetHeader().GetTimestamp()),
		entities:        len(fm.GetEntity()),
		routeIDs:        map[string]struct{}{},
	}
	for _, e := range fm.GetEntity() {
		if e.GetIsDeleted() {
			f.skipped++
			continue
		}
		found := false
		if id := e.GetTripUpdate().GetTrip().GetRouteId(); id != "" {
			f.routeIDs[id] = struct{}{}
			found = true
		}
		if id := e.GetVehicle().GetTrip().GetRouteId(); id != "" {
			f.routeIDs[id] = struct{}{}
			found = true
		}
		for _, sel := range e.GetAlert().GetInformedEntity() {
			id := sel.GetRouteId()
			if id == "" {
				id = sel.GetTrip().GetRouteId()
			}
			if id != "" {
				f.routeIDs[id] = struct{}{}
				found = true
			}
		}
		if !found {
			f.skipped++
		}
	}
	return f
}

// Timestamp returns the feed header timestamp, or the zero time when the
// header has none.
func (f *Feed) Timestamp() time.Time {
	if f.headerTimestamp == 0 {
		return time.Time{}
	}
	return time.Unix(f.headerTimestamp, 0).UTC()
}

// Entities returns the number of entities in the feed.
func (f *Feed) Entities() int { return f.entities }

// Skipped returns the number of entities that were deleted or named no
// route.
func (f *Feed) Skipped() int { return f.skipped }

// RouteIDs returns the distinct route ids in natural order.
func (f *Feed) RouteIDs() []string {
	ids := make([]string, 0, len(f.routeIDs))
	for id := range f.routeIDs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, natsort.Compare)
	return ids
}

// PublicRoutes returns a public route identifier for every route in the
// feed. Line names come from names when it is non-nil, otherwise the route
// id is used as the line name.
func (f *Feed) PublicRoutes(names LineNamer) []string {
	lines := make([]string, 0, len(f.routeIDs))
	for _, id := range f.RouteIDs() {
		line := id
		if names != nil {
			line = names.LineName(id)
		}
		lines = append(lines, routes.Public(line))
	}
	return routes.Merge(lines)
}
