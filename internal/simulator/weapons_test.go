package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
)

func TestWeaponCatalogContents(t *testing.T) {
	catalog := NewWeaponCatalog()
	names := catalog.Names()
	assert.Len(t, names, 18)

	cases := []struct {
		name string
		typ  models.WeaponType
		cost int
	}{
		{"Classic", models.WeaponSidearm, 0},
		{"Sheriff", models.WeaponSidearm, 800},
		{"Spectre", models.WeaponSMG, 1600},
		{"Vandal", models.WeaponRifle, 2900},
		{"Phantom", models.WeaponRifle, 2900},
		{"Operator", models.WeaponSniper, 4700},
		{"Outlaw", models.WeaponSniper, 2400},
		{"Judge", models.WeaponShotgun, 1850},
		{"Odin", models.WeaponHeavy, 3200},
	}
	for _, tc := range cases {
		w := catalog.Lookup(tc.name)
		assert.Equal(t, tc.typ, w.Type, tc.name)
		assert.Equal(t, tc.cost, w.Cost, tc.name)
	}
}

func TestWeaponCatalogRangeMultipliersComplete(t *testing.T) {
	catalog := NewWeaponCatalog()
	for _, name := range catalog.Names() {
		w := catalog.Lookup(name)
		for _, band := range models.RangeBands {
			mult, ok := w.RangeMultipliers[band]
			require.True(t, ok, "%s missing %s multiplier", name, band)
			assert.Greater(t, mult, 0.0)
		}
		assert.GreaterOrEqual(t, w.ArmorPenetration, 0.0)
		assert.LessOrEqual(t, w.ArmorPenetration, 1.0)
	}
}

func TestWeaponLookupPanicsOnUnknown(t *testing.T) {
	catalog := NewWeaponCatalog()
	assert.Panics(t, func() { catalog.Lookup("Bazooka") })
}

func TestSniperProfile(t *testing.T) {
	catalog := NewWeaponCatalog()
	op := catalog.Lookup("Operator")

	// The catalog carries a flat profile for snipers; the long-range
	// edge is a positional bonus in the duel resolver.
	for _, band := range []models.RangeBand{models.RangeClose, models.RangeMedium, models.RangeLong} {
		assert.Equal(t, 1.0, op.RangeMultipliers[band])
	}

	sniper := duelist(80, 60, "Operator", true)
	rifle := duelist(80, 60, "Vandal", true)
	winsLong := countAttackerWins(t, sniper, rifle, models.RangeLong, 200)
	winsClose := countAttackerWins(t, sniper, rifle, models.RangeClose, 200)
	assert.Greater(t, winsLong, winsClose, "sniper bonus should only apply at long range")

	spectre := catalog.Lookup("Spectre")
	assert.Greater(t, spectre.RangeMultipliers[models.RangeClose], spectre.RangeMultipliers[models.RangeLong],
		"SMGs should favor close range")
}
