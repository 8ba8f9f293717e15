package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder/utils"
	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// SlotHours is the length of one availability slot in the venue-information
// format.
const SlotHours = 0.5

const occupied = "occupied"

type dayAvailability struct {
	Day          string                       `json:"day"`
	Classes      []map[string]json.RawMessage `json:"classes"`
	Availability map[string]string            `json:"availability"`
}

// ParseVenueInformation decodes a catalog in venue-information format.
func ParseVenueInformation(data []byte, opts ...Option) (*venues.Catalog, error) {
	return ReadVenueInformation(bytes.NewReader(data), opts...)
}

// ReadVenueInformation decodes a catalog in venue-information format from r.
//
// Each class becomes one block; fields other than day, startTime and endTime
// are kept as block metadata. A day without classes falls back to its
// availability map, merging consecutive occupied slots into blocks.
func ReadVenueInformation(r io.Reader, opts ...Option) (*venues.Catalog, error) {
	o := newOptions(opts)
	dec := json.NewDecoder(r)
	c := venues.NewCatalog(0)
	blockCount := 0

	err := decodeObject(dec, func(id string) error {
		var days []dayAvailability
		if err := dec.Decode(&days); err != nil {
			return fmt.Errorf("venue %q: %w", id, err)
		}
		var blocks []venues.Block
		for _, d := range days {
			day, ok := utils.DayIndex(d.Day)
			if !ok {
				return fmt.Errorf("venue %q: unknown day %q: %w", id, d.Day, ErrInvalidBlock)
			}
			var dayBlocks []venues.Block
			var err error
			if len(d.Classes) > 0 {
				dayBlocks, err = classBlocks(day, d.Classes)
			} else {
				dayBlocks, err = slotBlocks(day, d.Availability)
			}
			if err != nil {
				return fmt.Errorf("venue %q %s: %w", id, d.Day, err)
			}
			blocks = append(blocks, dayBlocks...)
		}
		if err := validateVenue(id, blocks); err != nil {
			return err
		}
		if !c.Add(id, blocks) {
			return fmt.Errorf("venue %q: %w", id, ErrDuplicateVenue)
		}
		blockCount += len(blocks)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode venue information: %w", err)
	}

	o.logger.Debug("catalog imported",
		zap.String("format", "venue-information"),
		zap.Int("venues", c.Len()),
		zap.Int("blocks", blockCount))
	return c, nil
}

func classBlocks(day int, classes []map[string]json.RawMessage) ([]venues.Block, error) {
	blocks := make([]venues.Block, 0, len(classes))
	for i, cls := range classes {
		start, err := hhmmField(cls, "startTime")
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		end, err := hhmmField(cls, "endTime")
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		b := venues.Block{Day: day, StartHour: start, EndHour: end}
		for k, v := range cls {
			switch k {
			case "startTime", "endTime", "day":
				continue
			}
			if b.Meta == nil {
				b.Meta = map[string]json.RawMessage{}
			}
			b.Meta[k] = v
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func hhmmField(cls map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := cls[key]
	if !ok {
		return 0, fmt.Errorf("missing %s: %w", key, ErrInvalidBlock)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	h, err := utils.ParseHHMM(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", key, err, ErrInvalidBlock)
	}
	return h, nil
}

// slotBlocks merges consecutive occupied slots into blocks.
func slotBlocks(day int, availability map[string]string) ([]venues.Block, error) {
	starts := make([]float64, 0, len(availability))
	for k, state := range availability {
		if state != occupied {
			continue
		}
		h, err := utils.ParseHHMM(k)
		if err != nil {
			return nil, fmt.Errorf("slot: %v: %w", err, ErrInvalidBlock)
		}
		starts = append(starts, h)
	}
	sort.Float64s(starts)

	var blocks []venues.Block
	for _, s := range starts {
		if n := len(blocks); n > 0 && blocks[n-1].EndHour >= s {
			blocks[n-1].EndHour = max(blocks[n-1].EndHour, s+SlotHours)
			continue
		}
		blocks = append(blocks, venues.Block{Day: day, StartHour: s, EndHour: s + SlotHours})
	}
	return blocks, nil
}
