package venuefinder

import (
	"slices"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder/routes"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// Finder answers ordering, search and availability queries over one
// catalog. The natural order is computed once by New.
type Finder struct {
	list     venues.OrderedList
	aliases  venues.AliasMap
	floors   map[string]venues.Floor
	filter   *venues.Filter
	dayEnd   float64
	routeIDs []string
	logger   *zap.Logger
}

// New sorts c and applies opts. c is not retained.
func New(c *venues.Catalog, opts ...Option) *Finder {
	f := &Finder{
		list:    venues.Sort(c),
		aliases: venues.AliasMap{},
		floors:  map[string]venues.Floor{},
		filter:  venues.NewFilter(venues.DefaultExcludedVenues),
		dayEnd:  venues.OperatingHoursEnd,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.routeIDs = routes.Merge(f.routeIDs)

	f.logger.Debug("finder ready",
		zap.Int("venues", len(f.list)),
		zap.Int("aliases", len(f.aliases)),
		zap.Int("floors", len(f.floors)),
		zap.Int("routes", len(f.routeIDs)),
		zap.Float64("dayEnd", f.dayEnd))
	return f
}

// Len returns the number of venues.
func (f *Finder) Len() int { return len(f.list) }

// Venues returns every venue in natural order.
func (f *Finder) Venues() venues.OrderedList {
	return slices.Clone(f.list)
}

// Search returns the venues matching every token of query, in natural
// order. A blank query returns every venue.
func (f *Finder) Search(query string) venues.OrderedList {
	return slices.Clone(venues.Search(f.list, query, f.aliases))
}

// Clamp shortens w so it ends no later than the operating day end.
func (f *Finder) Clamp(w venues.Window) venues.Window {
	return venues.ClampDuration(w, f.dayEnd)
}

// FreeVenues returns the venues with no booking during w, after clamping
// w to the operating day, in natural order. Excluded venues are never
// returned.
func (f *Finder) FreeVenues(w venues.Window) venues.OrderedList {
	return f.filter.Available(f.list, f.Clamp(w))
}

// Floor returns the display label of the floor id is on.
func (f *Finder) Floor(id string) (string, bool) {
	fl, ok := f.floors[id]
	if !ok {
		return "", false
	}
	return venues.FloorName(fl), true
}

// Aliases returns the search aliases registered for id.
func (f *Finder) Aliases(id string) []string {
	return slices.Clone(f.aliases[id])
}

// Routes returns every known route, shuttles first, each group in natural
// order of display name.
func (f *Finder) Routes() []routes.Route {
	out := make([]routes.Route, len(f.routeIDs))
	for i, id := range f.routeIDs {
		out[i] = routes.Describe(id)
	}
	return out
}
