package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

// Default returns the configuration used for keys a file leaves out.
// Data.Venues has no default and must be set.
func Default() AppConfig {
	return AppConfig{
		Data: DataConfig{
			VenueFormat:    FormatBlocks,
			FetchTimeoutMS: 10000,
		},
		Availability: AvailabilityConfig{
			ExcludedVenues:    slices.Clone(venues.DefaultExcludedVenues),
			OperatingHoursEnd: venues.OperatingHoursEnd,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return AppConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks every section against its struct tags.
func (c AppConfig) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
