/*
Package catalog imports venue data into the plain structures package venues
works on.

This package is data-source agnostic: it accepts raw bytes or an io.Reader
and never opens files or URLs itself.

# Formats

Block format, one object keyed by venue with its occupancy blocks. Fields
other than day, startHour and endHour are kept as block metadata:

	{
	  "LT17": [{"day": 0, "startHour": 10, "endHour": 12, "moduleCode": "CS1010S"}],
	  "LT1":  []
	}

Venue-information format, as published by the NUSMods API, with lessons
grouped by weekday name and times written as "HHMM":

	{
	  "LT17": [
	    {"day": "Monday", "classes": [{"startTime": "1000", "endTime": "1200", "moduleCode": "CS1010S"}]}
	  ]
	}

Venue locations, giving each venue a room name (used as a search alias) and
a floor:

	{"AS2-0201": {"roomName": "Gamelan Instrument Room (Studio)", "floor": 2}}

# Ordering and validation

Venue order in the source object is kept, so ties in natural ordering are
broken by source order. Every block is validated on import (day in 0..6,
0 <= startHour < endHour <= 24); a bad block fails the whole import with
ErrInvalidBlock. Repeated venue keys fail with ErrDuplicateVenue.
*/
package catalog
