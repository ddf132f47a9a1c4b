package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valorsim/valorsim/internal/models"
)

func TestClassifyRound(t *testing.T) {
	cases := []struct {
		name       string
		round      int
		economy    int
		lossStreak int
		want       RoundType
	}{
		{"first pistol", 0, 4000, 0, RoundPistol},
		{"second pistol", 12, 20000, 0, RoundPistol},
		{"rich team full buys", 3, 20000, 0, RoundFullBuy},
		{"exactly at full buy threshold", 3, 4000, 0, RoundFullBuy},
		{"mid economy forces", 3, 3000, 0, RoundForce},
		{"long streak forces even when broke", 3, 1000, 2, RoundForce},
		{"broke team ecos", 3, 1500, 1, RoundEco},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyRound(tc.round, tc.economy, tc.lossStreak))
		})
	}
}

func TestPistolBuyPrefersSheriffForEliteAim(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	p := testPlayer("p1", models.RoleDuelist, 91, 70)

	decision := advisor.Decide(p, 800, RoundPistol)
	assert.Equal(t, "Sheriff", decision.Weapon)
	assert.False(t, decision.Armor, "sheriff leaves nothing for pistol armor")
	assert.Equal(t, 800, decision.TotalSpend)
}

func TestPistolBuyTree(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	cases := []struct {
		name    string
		aim     float64
		move    float64
		role    models.Role
		credits int
		want    string
	}{
		{"good aim takes ghost", 80, 60, models.RoleInitiator, 800, "Ghost"},
		{"duelist frenzy", 60, 60, models.RoleDuelist, 460, "Frenzy"},
		{"sentinel shorty", 60, 60, models.RoleSentinel, 300, "Shorty"},
		{"initiator falls back to classic", 60, 60, models.RoleInitiator, 300, "Classic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer("p", tc.role, tc.aim, tc.move)
			decision := advisor.Decide(p, tc.credits, RoundPistol)
			assert.Equal(t, tc.want, decision.Weapon)
		})
	}
}

func TestEcoBuySkipsArmorUnlessOnClassic(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())

	// Sheriff eco: no armor even with credits left over.
	p := testPlayer("p", models.RoleInitiator, 85, 60)
	decision := advisor.Decide(p, 2000, RoundEco)
	assert.Equal(t, "Sheriff", decision.Weapon)
	assert.False(t, decision.Armor)

	// Classic eco with spare credits picks up armor.
	broke := testPlayer("q", models.RoleInitiator, 50, 50)
	decision = advisor.Decide(broke, 1200, RoundEco)
	assert.Equal(t, "Classic", decision.Weapon)
	assert.True(t, decision.Armor)
	assert.Equal(t, armorCostFull, decision.TotalSpend)
}

func TestForceBuyPrefersSpectre(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	p := testPlayer("p", models.RoleController, 70, 60)

	decision := advisor.Decide(p, 2800, RoundForce)
	assert.Equal(t, "Spectre", decision.Weapon)
	assert.True(t, decision.Armor)
	assert.Equal(t, 1600+armorCostFull, decision.TotalSpend)
}

func TestFullBuyRifleChoice(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())

	aimHeavy := testPlayer("p", models.RoleInitiator, 84, 60)
	aimHeavy.CoreStats.UtilityUsage = 50
	decision := advisor.Decide(aimHeavy, 3500, RoundFullBuy)
	assert.Equal(t, "Vandal", decision.Weapon)

	moveHeavy := testPlayer("q", models.RoleInitiator, 60, 90)
	moveHeavy.CoreStats.UtilityUsage = 50
	decision = advisor.Decide(moveHeavy, 3500, RoundFullBuy)
	assert.Equal(t, "Phantom", decision.Weapon)
}

func TestFullBuyOperatorForEliteAim(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	p := testPlayer("p", models.RoleSentinel, 88, 60)

	decision := advisor.Decide(p, 6000, RoundFullBuy)
	assert.Equal(t, "Operator", decision.Weapon)
	assert.True(t, decision.Armor)
	assert.Equal(t, 4700+armorCostFull, decision.TotalSpend)
}

func TestFullBuyDegradesWithCredits(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	p := testPlayer("p", models.RoleInitiator, 70, 60)

	// Not enough for a rifle, falls through to the cheaper trees.
	decision := advisor.Decide(p, 1700, RoundFullBuy)
	assert.Equal(t, "Spectre", decision.Weapon)
	assert.False(t, decision.Armor)
}

func TestDecideNeverOverspends(t *testing.T) {
	advisor := NewBuyAdvisor(NewWeaponCatalog())
	roles := []models.Role{models.RoleDuelist, models.RoleController, models.RoleSentinel, models.RoleInitiator}
	types := []RoundType{RoundPistol, RoundEco, RoundForce, RoundHalfBuy, RoundFullBuy}

	for credits := 0; credits <= 9000; credits += 250 {
		for _, role := range roles {
			for _, rt := range types {
				p := testPlayer("p", role, 85, 85)
				decision := advisor.Decide(p, credits, rt)
				assert.LessOrEqual(t, decision.TotalSpend, credits,
					"credits=%d role=%s type=%s weapon=%s", credits, role, rt, decision.Weapon)
			}
		}
	}
}
