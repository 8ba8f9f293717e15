package venues

import (
	"slices"

	"github.com/theoremus-urban-solutions/venuefinder/natsort"
)

// Sort returns the catalog's venues in natural, case-insensitive order of
// their identifiers. Identifiers that compare equal keep catalog order.
// A nil or empty catalog yields an empty, non-nil list.
func Sort(c *Catalog) OrderedList {
	list := OrderedList(c.Venues())
	if list == nil {
		return OrderedList{}
	}
	slices.SortStableFunc(list, func(a, b Venue) int {
		return natsort.Compare(a.ID, b.ID)
	})
	return list
}
