package config

// Venue catalog formats accepted in DataConfig.VenueFormat.
const (
	FormatBlocks  = "blocks"
	FormatNUSMods = "nusmods"
)

// DataConfig names the data sources. Each source is a file path or an
// http(s) URL; empty sources are skipped.
type DataConfig struct {
	Venues           string `yaml:"venues" validate:"required"`
	VenueFormat      string `yaml:"venueFormat" validate:"omitempty,oneof=blocks nusmods"`
	Locations        string `yaml:"locations"`
	ShuttleRoutes    string `yaml:"shuttleRoutes"`
	GTFSStatic       string `yaml:"gtfsStatic"`
	GTFSRealtime     string `yaml:"gtfsRealtime"`
	PublicRouteTypes []int  `yaml:"publicRouteTypes" validate:"dive,gte=0"`
	FetchTimeoutMS   int    `yaml:"fetchTimeoutMS" validate:"gte=0"`
}

// AvailabilityConfig tunes free-venue queries.
type AvailabilityConfig struct {
	ExcludedVenues    []string `yaml:"excludedVenues" validate:"dive,required"`
	OperatingHoursEnd float64  `yaml:"operatingHoursEnd" validate:"gt=0,lte=24"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data         DataConfig         `yaml:"data" validate:"required"`
	Availability AvailabilityConfig `yaml:"availability"`
	Logging      LoggingConfig      `yaml:"logging"`
}
