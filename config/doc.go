// Package config handles application configuration loading and validation.
//
// Configuration is read from a YAML file and validated using struct tags.
// Values missing from the file keep the defaults returned by Default.
package config
