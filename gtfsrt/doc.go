// Package gtfsrt decodes GTFS-Realtime protobuf feeds and reports which
// routes are currently in service.
//
// Trip updates, vehicle positions and service alerts all name routes; a
// Feed collects the route ids from whichever of them the message carries.
// Feeds are decoded from raw bytes. Fetching is left to the caller.
package gtfsrt
