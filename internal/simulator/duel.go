package simulator

import (
	"math/rand"

	"github.com/valorsim/valorsim/internal/models"
)

// Duelist bundles one side of an engagement.
type Duelist struct {
	Player *models.Player
	Weapon models.Weapon
	Armor  bool
}

// ResolveDuel decides a one-on-one engagement. It is stateless; all
// randomness flows through the supplied source so seeded simulations
// stay reproducible. Returns true when the attacker wins.
func ResolveDuel(rng *rand.Rand, attacker, defender Duelist, r models.RangeBand) bool {
	return ResolveDuelWithModifier(rng, attacker, defender, r, 0)
}

// ResolveDuelWithModifier applies a round-level nudge to the attacker's
// effective rating. Strategy and ability usage feed through here as a
// small multiplier rather than any hard branch on the outcome.
func ResolveDuelWithModifier(rng *rand.Rand, attacker, defender Duelist, r models.RangeBand, mod float64) bool {
	attackerRating := duelRating(attacker.Player, attacker.Weapon, r)
	defenderRating := duelRating(defender.Player, defender.Weapon, r)

	// Positional bonuses
	if attacker.Weapon.Type == models.WeaponSniper && r == models.RangeLong {
		attackerRating *= 1.5
	}
	if defender.Weapon.Type == models.WeaponSMG && r == models.RangeClose {
		defenderRating *= 1.2
	}

	// Armor dampens the opponent's effective rating through armor
	// penetration.
	if defender.Armor {
		attackerRating *= 1 - (1-attacker.Weapon.ArmorPenetration)*0.5
	}
	if attacker.Armor {
		defenderRating *= 1 - (1-defender.Weapon.ArmorPenetration)*0.5
	}

	attackerRating *= 1 + mod

	attackerRating *= jitter(rng)
	defenderRating *= jitter(rng)

	return attackerRating > defenderRating
}

func duelRating(p *models.Player, w models.Weapon, r models.RangeBand) float64 {
	rating := 0.4*p.CoreStats.Aim*w.Accuracy +
		0.3*p.CoreStats.Movement*w.MovementAccuracy +
		0.3*p.CoreStats.GameSense
	return rating * w.RangeMultipliers[r]
}

func jitter(rng *rand.Rand) float64 {
	return 0.8 + rng.Float64()*0.4
}
