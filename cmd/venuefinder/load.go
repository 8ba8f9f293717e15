package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder"
	"github.com/theoremus-urban-solutions/venuefinder/catalog"
	"github.com/theoremus-urban-solutions/venuefinder/config"
	"github.com/theoremus-urban-solutions/venuefinder/gtfs"
	"github.com/theoremus-urban-solutions/venuefinder/gtfsrt"
	"github.com/theoremus-urban-solutions/venuefinder/routes"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// loadFinder fetches every configured source and builds a Finder.
func loadFinder(ctx context.Context, cfg config.DataConfig, avail config.AvailabilityConfig, fe *fetcher, logger *zap.Logger) (*venuefinder.Finder, error) {
	c, err := loadCatalog(ctx, cfg, fe, logger)
	if err != nil {
		return nil, err
	}
	opts := []venuefinder.Option{
		venuefinder.WithAvailability(avail),
		venuefinder.WithLogger(logger),
	}

	if cfg.Locations != "" {
		data, err := fe.fetch(ctx, cfg.Locations)
		if err != nil {
			return nil, fmt.Errorf("locations: %w", err)
		}
		locs, err := catalog.ParseLocations(data)
		if err != nil {
			return nil, err
		}
		logger.Info("locations loaded", zap.Int("venues", len(locs)))
		opts = append(opts, venuefinder.WithLocations(locs))
	}

	routeOpts, err := loadRoutes(ctx, cfg, fe, logger)
	if err != nil {
		return nil, err
	}
	opts = append(opts, routeOpts...)

	return venuefinder.New(c, opts...), nil
}

func loadCatalog(ctx context.Context, cfg config.DataConfig, fe *fetcher, logger *zap.Logger) (*venues.Catalog, error) {
	data, err := fe.fetch(ctx, cfg.Venues)
	if err != nil {
		return nil, fmt.Errorf("venues: %w", err)
	}
	var c *venues.Catalog
	switch cfg.VenueFormat {
	case config.FormatNUSMods:
		c, err = catalog.ParseVenueInformation(data, catalog.WithLogger(logger))
	default:
		c, err = catalog.ParseBlocks(data, catalog.WithLogger(logger))
	}
	if err != nil {
		return nil, err
	}
	logger.Info("venues loaded", zap.String("source", cfg.Venues), zap.Int("venues", c.Len()))
	return c, nil
}

func loadRoutes(ctx context.Context, cfg config.DataConfig, fe *fetcher, logger *zap.Logger) ([]venuefinder.Option, error) {
	var opts []venuefinder.Option

	if cfg.ShuttleRoutes != "" {
		data, err := fe.fetch(ctx, cfg.ShuttleRoutes)
		if err != nil {
			return nil, fmt.Errorf("shuttle routes: %w", err)
		}
		names, err := routes.ParseShuttles(data)
		if err != nil {
			return nil, err
		}
		logger.Info("shuttle routes loaded", zap.Int("routes", len(names)))
		opts = append(opts, venuefinder.WithRoutes(names...))
	}

	var names gtfsrt.LineNamer
	if cfg.GTFSStatic != "" {
		data, err := fe.fetch(ctx, cfg.GTFSStatic)
		if err != nil {
			return nil, fmt.Errorf("gtfs static: %w", err)
		}
		index, err := gtfs.NewRouteIndexFromBytes(data)
		if err != nil {
			return nil, err
		}
		public := index.PublicRoutes(cfg.PublicRouteTypes...)
		logger.Info("gtfs routes loaded",
			zap.String("agency", index.GetAgencyName()),
			zap.Int("routes", len(index.GetAllRoutes())),
			zap.Int("public", len(public)))
		opts = append(opts, venuefinder.WithRoutes(public...))
		names = index
	}

	if cfg.GTFSRealtime != "" {
		data, err := fe.fetch(ctx, cfg.GTFSRealtime)
		if err != nil {
			return nil, fmt.Errorf("gtfs-rt: %w", err)
		}
		feed, err := gtfsrt.ParseFeed(data)
		if err != nil {
			return nil, err
		}
		if feed.Skipped() > 0 {
			logger.Warn("gtfs-rt entities without a route",
				zap.Int("skipped", feed.Skipped()),
				zap.Int("entities", feed.Entities()))
		}
		public := feed.PublicRoutes(names)
		logger.Info("gtfs-rt routes loaded",
			zap.Time("feedTimestamp", feed.Timestamp()),
			zap.Int("public", len(public)))
		opts = append(opts, venuefinder.WithRoutes(public...))
	}
	return opts, nil
}
