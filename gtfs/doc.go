/*
Package gtfs reads the route table of a GTFS static feed.

The package is data-source agnostic: it accepts raw zip bytes or an
io.ReaderAt and builds an in-memory index. It does not download anything
or open files.

# Basic Usage

	zipBytes := fetchGTFSFromYourSource()

	index, err := gtfs.NewRouteIndexFromBytes(zipBytes)
	if err != nil {
	    log.Fatal(err)
	}

	name := index.GetRouteShortName("10")
	buses := index.PublicRoutes(gtfs.RouteTypeBus)

Load from an open file:

	file, _ := os.Open("gtfs.zip")
	defer file.Close()
	stat, _ := file.Stat()

	index, err := gtfs.NewRouteIndexFromReader(file, stat.Size())

# Public routes

PublicRoutes turns each route into a public route identifier (see package
routes) named after its route_short_name, or its route_id when the short
name is blank. Only routes.txt and agency.txt are read.
*/
package gtfs
