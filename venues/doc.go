/*
Package venues is the search and availability engine for a catalog of
bookable venues.

It is a set of pure functions over caller-supplied data. Nothing is cached
between calls and inputs are never modified, so every function is safe for
concurrent use as long as callers do not mutate the inputs during a call.

# Ordering

A Catalog keeps venues in the order they were added. Sort turns it into an
OrderedList using natural, case-insensitive ordering of identifiers (see
package natsort). Build the OrderedList once and pass it to every query so
results stay consistent:

	list := venues.Sort(catalog)

# Search

Search filters a list by a free-text query. Every whitespace-separated token
must appear somewhere in the venue identifier or in one of its aliases:

	venues.Search(list, "lt 17", nil)          // LT17
	venues.Search(list, "seminar room", aliases)

# Availability

Available returns the venues with no occupancy overlapping a window. A
Filter carries the exclusion list of venues that are never offered:

	f := venues.NewFilter([]string{"AS6-0333"})
	free := f.Available(list, venues.Window{Day: 0, Time: 9, Duration: 2})

Clamp the requested duration to the operating day first when it comes from
user input:

	w = venues.ClampClassDuration(w)

# Contract violations

Blocks with StartHour >= EndHour never overlap any window and so never make
a venue busy. Callers are expected to validate data on import (package
catalog does).
*/
package venues
