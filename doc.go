/*
Package venuefinder answers venue questions over a fixed catalog: in what
order venues are listed, which venues match a free-text query, and which
venues are free during a window of the week.

A Finder is built once from a venues.Catalog and is immutable afterwards,
so it is safe for concurrent use:

	c, err := catalog.ParseBlocks(data)
	if err != nil {
	    log.Fatal(err)
	}
	locs, _ := catalog.ParseLocations(locationData)

	f := venuefinder.New(c, venuefinder.WithLocations(locs))

	f.Search("lt 17")
	f.FreeVenues(venues.Window{Day: 0, Time: 10, Duration: 2})
	f.Floor("LT17") // "the ground floor", true

The building blocks live in subpackages: natsort for identifier ordering,
venues for search, availability and floor labels, routes for transit route
classification, and catalog, gtfs and gtfsrt for decoding source data.
*/
package venuefinder
