package venues

// DefaultExcludedVenues lists venues reserved for non-bookable use. They
// never appear in free-venue results.
var DefaultExcludedVenues = []string{
	"AS6-0333",
}

var defaultFilter = NewFilter(DefaultExcludedVenues)

// Filter finds venues that are unoccupied during a window. It holds a fixed
// exclusion list and is safe for concurrent use.
type Filter struct {
	excluded map[string]struct{}
}

// NewFilter returns a Filter that never reports the given venue
// identifiers as available. Identifiers match exactly.
func NewFilter(excluded []string) *Filter {
	f := &Filter{excluded: make(map[string]struct{}, len(excluded))}
	for _, id := range excluded {
		f.excluded[id] = struct{}{}
	}
	return f
}

// Excludes reports whether id is on the exclusion list.
func (f *Filter) Excludes(id string) bool {
	_, ok := f.excluded[id]
	return ok
}

// Available returns the venues of list that have no block on w.Day
// overlapping [w.Time, w.Time+w.Duration), in list order. Venues without
// blocks are always available unless excluded.
func (f *Filter) Available(list OrderedList, w Window) OrderedList {
	out := make(OrderedList, 0, len(list))
	for _, v := range list {
		if f.Excludes(v.ID) {
			continue
		}
		if isFree(v.Blocks, w) {
			out = append(out, v)
		}
	}
	return out
}

// FilterAvailability is Available with DefaultExcludedVenues.
func FilterAvailability(list OrderedList, w Window) OrderedList {
	return defaultFilter.Available(list, w)
}

func isFree(blocks []Block, w Window) bool {
	for _, b := range blocks {
		if b.Overlaps(w) {
			return false
		}
	}
	return true
}
