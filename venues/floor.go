package venues

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Floor identifies a storey either by level number (0 is ground,
// negative is basement) or by name, such as "Mezzanine".
// The zero value is the ground floor.
type Floor struct {
	level int
	name  string
	named bool
}

// Level returns a numbered floor.
func Level(n int) Floor { return Floor{level: n} }

// Named returns a floor identified by name.
func Named(name string) Floor { return Floor{name: name, named: true} }

// IsNamed reports whether f was identified by name.
func (f Floor) IsNamed() bool { return f.named }

// Level returns the level number; it is 0 for named floors.
func (f Floor) Level() int { return f.level }

// Name returns the floor name; it is empty for numbered floors.
func (f Floor) Name() string { return f.name }

// String returns FloorName(f).
func (f Floor) String() string { return FloorName(f) }

// FloorName formats f for display:
//
//	Level(0)          "the ground floor"
//	Level(-2)         "floor B2"
//	Level(5)          "floor 5"
//	Named("Mezzanine") "mezzanine floor"
func FloorName(f Floor) string {
	switch {
	case f.named:
		return strings.ToLower(f.name) + " floor"
	case f.level == 0:
		return "the ground floor"
	case f.level < 0:
		return "floor B" + strconv.Itoa(-f.level)
	default:
		return "floor " + strconv.Itoa(f.level)
	}
}

// UnmarshalJSON accepts an integer level or a floor name. JSON null leaves
// f unchanged.
func (f *Floor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*f = Named(name)
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("venues: floor must be an integer or a name, got %s", data)
	}
	*f = Level(n)
	return nil
}

// MarshalJSON writes a level as a number and a name as a string.
func (f Floor) MarshalJSON() ([]byte, error) {
	if f.named {
		return json.Marshal(f.name)
	}
	return []byte(strconv.Itoa(f.level)), nil
}
