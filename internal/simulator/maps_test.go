package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
)

func TestStandardMapCatalog(t *testing.T) {
	catalog := NewMapCatalog()
	names := catalog.AllNames()
	assert.Len(t, names, 10)

	ascent, ok := catalog.Lookup("Ascent")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"A", "B"}, ascent.Sites)

	haven, ok := catalog.Lookup("Haven")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, haven.Sites)
}

func TestMapLookupIsCaseInsensitive(t *testing.T) {
	catalog := NewMapCatalog()
	_, ok := catalog.Lookup("ascent")
	assert.True(t, ok)
	_, ok = catalog.Lookup("ASCENT")
	assert.True(t, ok)
}

func TestLookupOrFallback(t *testing.T) {
	catalog := NewMapCatalog()

	layout, usedFallback := catalog.LookupOrFallback("Ascent")
	assert.False(t, usedFallback)
	assert.Equal(t, "Ascent", layout.Name)

	layout, usedFallback = catalog.LookupOrFallback("Atlantis")
	assert.True(t, usedFallback)
	assert.Equal(t, "Atlantis", layout.Name)
	assert.NotEmpty(t, layout.Sites)
	assert.NotZero(t, layout.AttackerSpawn)
	assert.NotZero(t, layout.DefenderSpawn)
}

func TestAddCustomMap(t *testing.T) {
	catalog := NewMapCatalog()
	custom := FallbackLayout("Custom Arena")
	catalog.Add(custom)

	got, ok := catalog.Lookup("Custom Arena")
	require.True(t, ok)
	assert.Equal(t, custom.Name, got.Name)
	assert.Len(t, catalog.AllNames(), 11)
}

func TestMapID(t *testing.T) {
	assert.Equal(t, "ascent", MapID("Ascent"))
	assert.Equal(t, "custom_arena", MapID("Custom Arena"))
}

func TestEveryStandardMapHasSpawnsAndSites(t *testing.T) {
	catalog := NewMapCatalog()
	for _, layout := range catalog.All() {
		assert.NotEmpty(t, layout.Sites, layout.Name)
		for _, site := range layout.Sites {
			_, ok := layout.SiteCallout(site)
			assert.True(t, ok, "%s missing callout for site %s", layout.Name, site)
		}

		spawnTypes := layout.CalloutsOfType(models.AreaAttackerSpawn, models.AreaDefenderSpawn)
		assert.Len(t, spawnTypes, 2, layout.Name)
	}
}
