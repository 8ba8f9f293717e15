package formatter

import (
	"github.com/theoremus-urban-solutions/venuefinder/routes"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// Response is the envelope written for every call.
type Response struct {
	Call   string         `json:"call"`
	Query  string         `json:"query,omitempty"`
	Window *venues.Window `json:"window,omitempty"`
	Count  int            `json:"count"`
	Venues []VenueResult  `json:"venues,omitempty"`
	Routes []routes.Route `json:"routes,omitempty"`
}

// VenueResult describes one venue in a response.
type VenueResult struct {
	ID      string         `json:"id"`
	Floor   string         `json:"floor,omitempty"`
	Aliases []string       `json:"aliases,omitempty"`
	Blocks  []venues.Block `json:"blocks,omitempty"`
}

// VenueDescriber supplies the display details of a venue.
type VenueDescriber interface {
	Floor(id string) (string, bool)
	Aliases(id string) []string
}

// VenueResults describes every venue in list. Blocks are included only
// when withBlocks is set. d may be nil.
func VenueResults(list venues.OrderedList, d VenueDescriber, withBlocks bool) []VenueResult {
	out := make([]VenueResult, 0, len(list))
	for _, v := range list {
		r := VenueResult{ID: v.ID}
		if d != nil {
			r.Floor, _ = d.Floor(v.ID)
			r.Aliases = d.Aliases(v.ID)
		}
		if withBlocks {
			r.Blocks = v.Blocks
		}
		out = append(out, r)
	}
	return out
}

// NewVenueResponse builds the response for a venue listing call.
func NewVenueResponse(call, query string, list venues.OrderedList, d VenueDescriber, withBlocks bool) *Response {
	rs := VenueResults(list, d, withBlocks)
	return &Response{Call: call, Query: query, Count: len(rs), Venues: rs}
}

// NewRouteResponse builds the response for a route listing call.
func NewRouteResponse(call string, rs []routes.Route) *Response {
	return &Response{Call: call, Count: len(rs), Routes: rs}
}
