package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

var (
	// ErrInvalidBlock marks a block that breaks the occupancy contract.
	ErrInvalidBlock = errors.New("invalid occupancy block")

	// ErrDuplicateVenue marks a venue key that appears twice.
	ErrDuplicateVenue = errors.New("duplicate venue")
)

// blockRule mirrors venues.Block for struct-tag validation.
type blockRule struct {
	Day       int     `validate:"gte=0,lte=6"`
	StartHour float64 `validate:"gte=0,ltfield=EndHour"`
	EndHour   float64 `validate:"lte=24"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateBlock checks b against the occupancy contract.
func ValidateBlock(b venues.Block) error {
	r := blockRule{Day: b.Day, StartHour: b.StartHour, EndHour: b.EndHour}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: day=%d start=%g end=%g: %v", ErrInvalidBlock, b.Day, b.StartHour, b.EndHour, err)
	}
	return nil
}

func validateVenue(id string, blocks []venues.Block) error {
	for i, b := range blocks {
		if err := ValidateBlock(b); err != nil {
			return fmt.Errorf("venue %q block %d: %w", id, i, err)
		}
	}
	return nil
}
