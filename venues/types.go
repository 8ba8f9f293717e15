package venues

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrIncompleteBlock is returned when decoding a block that lacks one of
// day, startHour or endHour.
var ErrIncompleteBlock = errors.New("venues: block requires day, startHour and endHour")

// Block is a scheduled interval during which a venue is in use.
//
// Hours are plain hour-of-day numbers (8.5 is 08:30) with StartHour < EndHour.
// Meta carries any extra fields from the source data untouched.
type Block struct {
	Day       int                        `json:"day"` // 0 = Monday
	StartHour float64                    `json:"startHour"`
	EndHour   float64                    `json:"endHour"`
	Meta      map[string]json.RawMessage `json:"-"`
}

var blockFields = map[string]struct{}{"day": {}, "startHour": {}, "endHour": {}}

// UnmarshalJSON decodes the three known fields and keeps the rest in Meta.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var known struct {
		Day       *int     `json:"day"`
		StartHour *float64 `json:"startHour"`
		EndHour   *float64 `json:"endHour"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	if known.Day == nil || known.StartHour == nil || known.EndHour == nil {
		return ErrIncompleteBlock
	}

	*b = Block{Day: *known.Day, StartHour: *known.StartHour, EndHour: *known.EndHour}
	for k, v := range raw {
		if _, ok := blockFields[k]; ok {
			continue
		}
		if b.Meta == nil {
			b.Meta = make(map[string]json.RawMessage, len(raw)-len(blockFields))
		}
		b.Meta[k] = v
	}
	return nil
}

// MarshalJSON writes the known fields followed by Meta in key order.
func (b Block) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"day":%d,"startHour":%s,"endHour":%s`,
		b.Day, formatHour(b.StartHour), formatHour(b.EndHour))

	keys := make([]string, 0, len(b.Meta))
	for k := range b.Meta {
		if _, ok := blockFields[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		name, _ := json.Marshal(k)
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(b.Meta[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func formatHour(h float64) string {
	out, _ := json.Marshal(h)
	return string(out)
}

// Overlaps reports whether the block occupies any part of w.
//
// A block with StartHour >= EndHour violates the Block contract and is
// treated as never overlapping.
func (b Block) Overlaps(w Window) bool {
	if b.StartHour >= b.EndHour || b.Day != w.Day {
		return false
	}
	return b.EndHour > w.Time && b.StartHour < w.End()
}

// Venue pairs a venue identifier with its occupancy blocks.
type Venue struct {
	ID     string  `json:"id"`
	Blocks []Block `json:"blocks"`
}

// OrderedList is the canonical, naturally ordered form of a Catalog that
// all queries operate on. Build it once with Sort.
type OrderedList []Venue

// IDs returns the venue identifiers in list order.
func (l OrderedList) IDs() []string {
	ids := make([]string, len(l))
	for i, v := range l {
		ids[i] = v.ID
	}
	return ids
}

// AliasMap maps a venue identifier to free-text names that widen search
// matching, such as a room's human-readable name. A nil map is valid.
type AliasMap map[string][]string

// Window is a requested availability interval [Time, Time+Duration) on Day.
type Window struct {
	Day      int     `json:"day"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
}

// End returns the exclusive end hour of the window.
func (w Window) End() float64 { return w.Time + w.Duration }

// Catalog is an insertion-ordered set of venues keyed by identifier.
// The zero value is an empty catalog ready for use.
type Catalog struct {
	entries []Venue
	index   map[string]int
}

// NewCatalog returns an empty catalog with room for n venues.
func NewCatalog(n int) *Catalog {
	return &Catalog{entries: make([]Venue, 0, n), index: make(map[string]int, n)}
}

// CatalogFromMap builds a catalog from a plain map. Map iteration order is
// random, so entries are inserted in byte order of their identifiers.
func CatalogFromMap(m map[string][]Block) *Catalog {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	c := NewCatalog(len(ids))
	for _, id := range ids {
		c.Add(id, m[id])
	}
	return c
}

// Add appends a venue. It returns false and leaves the catalog unchanged
// when id is already present.
func (c *Catalog) Add(id string, blocks []Block) bool {
	if c.index == nil {
		c.index = map[string]int{}
	}
	if _, ok := c.index[id]; ok {
		return false
	}
	c.index[id] = len(c.entries)
	c.entries = append(c.entries, Venue{ID: id, Blocks: blocks})
	return true
}

// Len returns the number of venues.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Blocks returns the occupancy blocks registered for id.
func (c *Catalog) Blocks(id string) ([]Block, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.entries[i].Blocks, true
}

// Venues returns the venues in insertion order. The returned slice is a
// copy; the block slices are shared with the catalog.
func (c *Catalog) Venues() []Venue {
	if c == nil {
		return nil
	}
	out := make([]Venue, len(c.entries))
	copy(out, c.entries)
	return out
}
