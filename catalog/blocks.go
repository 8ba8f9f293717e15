package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// ParseBlocks decodes a catalog in block format.
func ParseBlocks(data []byte, opts ...Option) (*venues.Catalog, error) {
	return ReadBlocks(bytes.NewReader(data), opts...)
}

// ReadBlocks decodes a catalog in block format from r.
func ReadBlocks(r io.Reader, opts ...Option) (*venues.Catalog, error) {
	o := newOptions(opts)
	dec := json.NewDecoder(r)
	c := venues.NewCatalog(0)
	blockCount := 0

	err := decodeObject(dec, func(id string) error {
		var blocks []venues.Block
		if err := dec.Decode(&blocks); err != nil {
			return fmt.Errorf("venue %q: %w", id, err)
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
		return nil, fmt.Errorf("decode venue blocks: %w", err)
	}

	o.logger.Debug("catalog imported",
		zap.String("format", "blocks"),
		zap.Int("venues", c.Len()),
		zap.Int("blocks", blockCount))
	return c, nil
}
