package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valorsim/valorsim/internal/models"
)

func duelist(aim, movement float64, weapon string, armor bool) Duelist {
	catalog := NewWeaponCatalog()
	return Duelist{
		Player: testPlayer("d", models.RoleDuelist, aim, movement),
		Weapon: catalog.Lookup(weapon),
		Armor:  armor,
	}
}

func countAttackerWins(t *testing.T, attacker, defender Duelist, r models.RangeBand, trials int) int {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	wins := 0
	for i := 0; i < trials; i++ {
		if ResolveDuel(rng, attacker, defender, r) {
			wins++
		}
	}
	return wins
}

func TestOperatorDominatesAtLongRange(t *testing.T) {
	sniper := duelist(85, 60, "Operator", true)
	smg := duelist(85, 60, "Spectre", true)

	wins := countAttackerWins(t, sniper, smg, models.RangeLong, 100)
	assert.GreaterOrEqual(t, wins, 55, "sniper should win most long range duels against an SMG")
}

func TestSMGHoldsCloseRange(t *testing.T) {
	smg := duelist(75, 80, "Spectre", true)
	rifle := duelist(75, 80, "Guardian", true)

	// Defender bonus applies to the SMG side, so put it on defense.
	wins := countAttackerWins(t, rifle, smg, models.RangeClose, 100)
	assert.Less(t, wins, 50, "defender SMG bonus should tip close range duels")
}

func TestArmorMattersAgainstLowPenetration(t *testing.T) {
	attacker := duelist(80, 70, "Stinger", false)
	naked := duelist(80, 70, "Stinger", false)
	armored := duelist(80, 70, "Stinger", true)

	winsVsNaked := countAttackerWins(t, attacker, naked, models.RangeMedium, 200)
	winsVsArmored := countAttackerWins(t, attacker, armored, models.RangeMedium, 200)
	assert.Greater(t, winsVsNaked, winsVsArmored, "armor should cost the attacker wins")
}

func TestDuelIsDeterministicForASeed(t *testing.T) {
	a := duelist(82, 75, "Vandal", true)
	b := duelist(78, 70, "Phantom", true)

	first := make([]bool, 50)
	rng := rand.New(rand.NewSource(42))
	for i := range first {
		first[i] = ResolveDuel(rng, a, b, models.RangeMedium)
	}

	rng = rand.New(rand.NewSource(42))
	for i := range first {
		assert.Equal(t, first[i], ResolveDuel(rng, a, b, models.RangeMedium), "trial %d", i)
	}
}

func TestModifierShiftsTheOdds(t *testing.T) {
	a := duelist(75, 70, "Vandal", true)
	b := duelist(75, 70, "Vandal", true)

	rng := rand.New(rand.NewSource(9))
	boosted := 0
	for i := 0; i < 300; i++ {
		if ResolveDuelWithModifier(rng, a, b, models.RangeMedium, 0.15) {
			boosted++
		}
	}

	rng = rand.New(rand.NewSource(9))
	flat := 0
	for i := 0; i < 300; i++ {
		if ResolveDuelWithModifier(rng, a, b, models.RangeMedium, 0) {
			flat++
		}
	}

	assert.Greater(t, boosted, flat)
}
