// Package utils provides internal utility functions for venuefinder.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Hour-of-day conversion between "HHMM" strings and fractional hours
//   - Weekday name and index conversion (Monday = 0)
package utils
