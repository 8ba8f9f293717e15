package venues_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

func TestFloorName(t *testing.T) {
	tests := []struct {
		floor venues.Floor
		want  string
	}{
		{venues.Level(0), "the ground floor"},
		{venues.Floor{}, "the ground floor"},
		{venues.Level(-1), "floor B1"},
		{venues.Level(-2), "floor B2"},
		{venues.Level(-5), "floor B5"},
		{venues.Level(1), "floor 1"},
		{venues.Level(2), "floor 2"},
		{venues.Level(5), "floor 5"},
		{venues.Named("Ground"), "ground floor"},
		{venues.Named("Mezzanine"), "mezzanine floor"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, venues.FloorName(tt.floor))
			assert.Equal(t, tt.want, tt.floor.String())
		})
	}
}

func TestFloor_JSON(t *testing.T) {
	var loc struct {
		Floor *venues.Floor `json:"floor"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"floor": -2}`), &loc))
	require.NotNil(t, loc.Floor)
	assert.Equal(t, venues.Level(-2), *loc.Floor)

	loc.Floor = nil
	require.NoError(t, json.Unmarshal([]byte(`{"floor": "Mezzanine"}`), &loc))
	require.NotNil(t, loc.Floor)
	assert.True(t, loc.Floor.IsNamed())
	assert.Equal(t, "Mezzanine", loc.Floor.Name())

	loc.Floor = nil
	require.NoError(t, json.Unmarshal([]byte(`{"floor": null}`), &loc))
	assert.Nil(t, loc.Floor)

	var f venues.Floor
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))

	out, err := json.Marshal([]venues.Floor{venues.Level(3), venues.Named("Roof")})
	require.NoError(t, err)
	assert.JSONEq(t, `[3, "Roof"]`, string(out))
}
