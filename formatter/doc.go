// Package formatter renders venue and route query results.
//
// This package is organized into:
//   - response.go: the Response envelope and helpers that fill it
//   - json.go: JSON serialization
//   - text.go: tab-separated plain text for terminals
package formatter
