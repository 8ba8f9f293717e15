package venuefinder

import (
	"slices"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder/catalog"
	"github.com/theoremus-urban-solutions/venuefinder/config"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// Option configures a Finder.
type Option func(*Finder)

// WithAliases adds search aliases. Aliases from repeated calls accumulate.
func WithAliases(aliases venues.AliasMap) Option {
	return func(f *Finder) {
		for id, names := range aliases {
			f.aliases[id] = append(f.aliases[id], names...)
		}
	}
}

// WithFloors records the floor of each venue.
func WithFloors(floors map[string]venues.Floor) Option {
	return func(f *Finder) {
		for id, fl := range floors {
			f.floors[id] = fl
		}
	}
}

// WithLocations uses room names as aliases and records floors.
func WithLocations(locs catalog.Locations) Option {
	return func(f *Finder) {
		WithAliases(locs.Aliases())(f)
		WithFloors(locs.Floors())(f)
	}
}

// WithExcludedVenues replaces venues.DefaultExcludedVenues as the list of
// venues never reported free.
func WithExcludedVenues(ids []string) Option {
	return func(f *Finder) { f.filter = venues.NewFilter(ids) }
}

// WithOperatingHoursEnd sets the hour free-venue windows are clamped to.
func WithOperatingHoursEnd(hour float64) Option {
	return func(f *Finder) { f.dayEnd = hour }
}

// WithRoutes adds route identifiers. Lists from repeated calls are merged.
func WithRoutes(ids ...string) Option {
	return func(f *Finder) { f.routeIDs = append(f.routeIDs, ids...) }
}

// WithLogger sets the logger used while building the Finder.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithAvailability applies the availability section of the configuration.
func WithAvailability(cfg config.AvailabilityConfig) Option {
	return func(f *Finder) {
		WithExcludedVenues(slices.Clone(cfg.ExcludedVenues))(f)
		if cfg.OperatingHoursEnd > 0 {
			f.dayEnd = cfg.OperatingHoursEnd
		}
	}
}
