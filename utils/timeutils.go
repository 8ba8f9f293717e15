package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weekdays lists day names by index, Monday first.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndex returns the index of a weekday name (Monday = 0). Full names and
// three-letter abbreviations are accepted in any case.
func DayIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for i, d := range Weekdays {
		full := strings.ToLower(d)
		if name == full || name == full[:3] {
			return i, true
		}
	}
	return 0, false
}

// DayName returns the weekday name for index i, or "" when i is outside 0..6.
func DayName(i int) string {
	if i < 0 || i >= len(Weekdays) {
		return ""
	}
	return Weekdays[i]
}

// ParseHHMM converts a 24-hour "HHMM" string such as "0830" into fractional
// hours (8.5). "2400" is accepted as the end of the day.
func ParseHHMM(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, fmt.Errorf("time %q: want 4 digits HHMM", s)
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh < 0 {
		return 0, fmt.Errorf("time %q: bad hour", s)
	}
	mm, err := strconv.Atoi(s[2:])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time %q: bad minute", s)
	}
	if hh > 24 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("time %q: out of range", s)
	}
	return float64(hh) + float64(mm)/60, nil
}

// FormatHHMM converts fractional hours to "HHMM", rounding to the nearest
// minute. Values outside [0, 24] are clamped.
func FormatHHMM(hours float64) string {
	hours = math.Max(0, math.Min(24, hours))
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d%02d", total/60, total%60)
}

// FormatHour renders fractional hours for people: 8.5 becomes "08:30".
func FormatHour(hours float64) string {
	s := FormatHHMM(hours)
	return s[:2] + ":" + s[2:]
}
