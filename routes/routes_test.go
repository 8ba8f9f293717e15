package routes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/venuefinder/routes"
)

func loadShuttles(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "bus-routes.json"))
	require.NoError(t, err)
	names, err := routes.ParseShuttles(data)
	require.NoError(t, err)
	require.NotEmpty(t, names)
	return names
}

func TestIsPublic(t *testing.T) {
	for _, r := range []string{"PUB:10", "PUB:95", "PUB:201"} {
		assert.True(t, routes.IsPublic(r), r)
	}
	for _, r := range loadShuttles(t) {
		assert.False(t, routes.IsPublic(r), r)
	}
	assert.False(t, routes.IsPublic("pub:10"), "prefix is case sensitive")
	assert.False(t, routes.IsPublic("PUB"))
	assert.False(t, routes.IsPublic(""))
}

func TestStyle(t *testing.T) {
	for _, r := range []string{"PUB:10", "PUB:95", "PUB:201"} {
		assert.Equal(t, routes.PublicStyle, routes.Style(r), r)
	}
	for _, r := range loadShuttles(t) {
		assert.Equal(t, r, routes.Style(r))
	}
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, "10", routes.Simplify("PUB:10"))
	assert.Equal(t, "95", routes.Simplify("PUB:95"))
	assert.Equal(t, "201", routes.Simplify("PUB:201"))
	assert.Equal(t, "", routes.Simplify("PUB:"))
	for _, r := range loadShuttles(t) {
		assert.Equal(t, r, routes.Simplify(r))
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, routes.Route{ID: "PUB:95", Name: "95", Style: "PUBLIC", Public: true}, routes.Describe("PUB:95"))
	assert.Equal(t, routes.Route{ID: "D2", Name: "D2", Style: "D2"}, routes.Describe("D2"))
	assert.Equal(t, "PUB:151", routes.Public("151"))
	assert.True(t, routes.IsPublic(routes.Public("151")))
}

func TestMerge(t *testing.T) {
	got := routes.Merge(
		[]string{"D2", "A1", "BTC", "A2"},
		[]string{"PUB:95", "PUB:10", "PUB:151"},
		[]string{"PUB:10", "", "A1"},
	)
	assert.Equal(t, []string{"A1", "A2", "BTC", "D2", "PUB:10", "PUB:95", "PUB:151"}, got)
	assert.Empty(t, routes.Merge())
}

func TestParseShuttles_Errors(t *testing.T) {
	_, err := routes.ParseShuttles([]byte(`{"A1": true}`))
	assert.Error(t, err)

	_, err = routes.ParseShuttles([]byte(`["A1", "PUB:95"]`))
	assert.ErrorContains(t, err, "PUB:95")
}
