package venues_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/venuefinder/venues"
)

func TestBlock_JSONKeepsMetadata(t *testing.T) {
	in := `{"day":2,"startHour":8.5,"endHour":10,"moduleCode":"CS1010S","weeks":[1,2,3]}`

	var b venues.Block
	require.NoError(t, json.Unmarshal([]byte(in), &b))
	assert.Equal(t, 2, b.Day)
	assert.Equal(t, 8.5, b.StartHour)
	assert.Equal(t, 10.0, b.EndHour)
	assert.JSONEq(t, `"CS1010S"`, string(b.Meta["moduleCode"]))
	assert.JSONEq(t, `[1,2,3]`, string(b.Meta["weeks"]))

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestBlock_JSONRequiresCoreFields(t *testing.T) {
	var b venues.Block
	err := json.Unmarshal([]byte(`{"day":2,"startHour":8}`), &b)
	assert.ErrorIs(t, err, venues.ErrIncompleteBlock)

	err = json.Unmarshal([]byte(`{"day":"Monday","startHour":8,"endHour":9}`), &b)
	assert.Error(t, err)
}

func TestBlock_JSONWithoutMetadata(t *testing.T) {
	out, err := json.Marshal(venues.Block{Day: 0, StartHour: 9, EndHour: 11})
	require.NoError(t, err)
	assert.Equal(t, `{"day":0,"startHour":9,"endHour":11}`, string(out))
}
