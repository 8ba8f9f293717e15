package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder"
	"github.com/theoremus-urban-solutions/venuefinder/config"
	"github.com/theoremus-urban-solutions/venuefinder/formatter"
	"github.com/theoremus-urban-solutions/venuefinder/internal"
	"github.com/theoremus-urban-solutions/venuefinder/utils"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config.yml")
	call := flag.String("call", "list", "list|search|free|floor|route")
	format := flag.String("format", "json", "json|text")
	query := flag.String("q", "", "search query (search)")
	day := flag.String("day", "Monday", "weekday (free)")
	start := flag.String("time", "0800", "start time HHMM (free)")
	duration := flag.Float64("duration", 1, "window length in hours (free)")
	venueID := flag.String("venue", "", "venue id (floor)")
	venuesSource := flag.String("venues", "", "venue data path or URL (overrides config)")
	withBlocks := flag.Bool("blocks", false, "include occupancy blocks in venue output")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *venuesSource != "" {
		cfg.Data.Venues = *venuesSource
	}

	logger, err := internal.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	req := request{call: *call, query: *query, day: *day, start: *start, duration: *duration, venue: *venueID, blocks: *withBlocks}
	if err := req.check(); err != nil {
		logger.Fatal("bad request", zap.Error(err))
	}

	ctx := context.Background()
	fe := newFetcher(time.Duration(cfg.Data.FetchTimeoutMS) * time.Millisecond)
	finder, err := loadFinder(ctx, cfg.Data, cfg.Availability, fe, logger)
	if err != nil {
		logger.Fatal("load data", zap.Error(err))
	}

	res, err := run(finder, req)
	if err != nil {
		logger.Fatal("query", zap.String("call", req.call), zap.Error(err))
	}

	rb := formatter.NewResponseBuilder("  ")
	var buf []byte
	switch *format {
	case "text":
		buf = rb.BuildText(res)
	default:
		buf, err = rb.BuildJSON(res)
		if err != nil {
			logger.Fatal("encode", zap.Error(err))
		}
		buf = append(buf, '\n')
	}
	_, _ = os.Stdout.Write(buf)
}

// request holds the parsed command line query.
type request struct {
	call     string
	query    string
	day      string
	start    string
	duration float64
	venue    string
	blocks   bool
}

var errUnknownVenue = errors.New("unknown venue")

func (r request) check() error {
	switch r.call {
	case "list", "search", "route":
	case "free":
		if _, err := r.window(); err != nil {
			return err
		}
	case "floor":
		if r.venue == "" {
			return errors.New("floor call needs -venue")
		}
	default:
		return fmt.Errorf("unknown call %q", r.call)
	}
	return nil
}

func (r request) window() (venues.Window, error) {
	d, ok := utils.DayIndex(r.day)
	if !ok {
		return venues.Window{}, fmt.Errorf("unknown day %q", r.day)
	}
	t, err := utils.ParseHHMM(r.start)
	if err != nil {
		return venues.Window{}, err
	}
	if t >= venues.OperatingHoursEnd {
		return venues.Window{}, fmt.Errorf("start time %s is past the end of the day", r.start)
	}
	if r.duration <= 0 {
		return venues.Window{}, fmt.Errorf("duration must be positive, got %g", r.duration)
	}
	return venues.Window{Day: d, Time: t, Duration: r.duration}, nil
}

func run(f *venuefinder.Finder, r request) (*formatter.Response, error) {
	switch r.call {
	case "list":
		return formatter.NewVenueResponse(r.call, "", f.Venues(), f, r.blocks), nil
	case "search":
		return formatter.NewVenueResponse(r.call, r.query, f.Search(r.query), f, r.blocks), nil
	case "free":
		w, err := r.window()
		if err != nil {
			return nil, err
		}
		w = f.Clamp(w)
		res := formatter.NewVenueResponse(r.call, "", f.FreeVenues(w), f, r.blocks)
		res.Window = &w
		return res, nil
	case "floor":
		for _, v := range f.Venues() {
			if v.ID == r.venue {
				return formatter.NewVenueResponse(r.call, r.venue, venues.OrderedList{v}, f, r.blocks), nil
			}
		}
		return nil, fmt.Errorf("%w: %s", errUnknownVenue, r.venue)
	case "route":
		return formatter.NewRouteResponse(r.call, f.Routes()), nil
	}
	return nil, fmt.Errorf("unknown call %q", r.call)
}
