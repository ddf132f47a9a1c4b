package simulator

import (
	"fmt"

	"github.com/valorsim/valorsim/internal/models"
)

// Economy constants.
const (
	MaxMoney           = 9000
	MinMoney           = 2000
	WinReward          = 3000
	PlantBonus         = 300
	StartingCredits    = 800
	InitialTeamEconomy = 4000
)

// lossBonusTable is indexed by min(lossStreak, 4).
var lossBonusTable = [5]int{1900, 2400, 2900, 3400, 3900}

// LossBonus returns the per-player loser reward for a loss streak.
func LossBonus(streak int) int {
	if streak > 4 {
		streak = 4
	}
	if streak < 0 {
		streak = 0
	}
	return lossBonusTable[streak]
}

// InvariantError reports a post-round bookkeeping violation. These
// are programming bugs; the match aborts when one surfaces.
type InvariantError struct {
	Round int
	Field string
	Value int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("economy invariant violated in round %d: %s=%d", e.Round, e.Field, e.Value)
}

// EconomyEngine tracks per-player credits and per-team loss streaks
// across a match. One instance belongs to exactly one simulation.
type EconomyEngine struct {
	credits     map[string]int
	teamOf      map[string]string
	lossStreaks map[string]int
}

// NewEconomyEngine seeds every player with pistol-round credits.
func NewEconomyEngine(teamA, teamB []*models.Player) *EconomyEngine {
	e := &EconomyEngine{
		credits:     make(map[string]int, len(teamA)+len(teamB)),
		teamOf:      make(map[string]string, len(teamA)+len(teamB)),
		lossStreaks: map[string]int{models.TeamA: 0, models.TeamB: 0},
	}
	for _, p := range teamA {
		e.credits[p.ID] = StartingCredits
		e.teamOf[p.ID] = models.TeamA
	}
	for _, p := range teamB {
		e.credits[p.ID] = StartingCredits
		e.teamOf[p.ID] = models.TeamB
	}
	return e
}

// Credits returns a player's current balance.
func (e *EconomyEngine) Credits(playerID string) int {
	return e.credits[playerID]
}

// AllCredits returns a copy of the full balance map.
func (e *EconomyEngine) AllCredits() map[string]int {
	out := make(map[string]int, len(e.credits))
	for id, c := range e.credits {
		out[id] = c
	}
	return out
}

// TeamEconomy sums a side's player credits.
func (e *EconomyEngine) TeamEconomy(team string) int {
	total := 0
	for id, c := range e.credits {
		if e.teamOf[id] == team {
			total += c
		}
	}
	return total
}

// LossStreak returns a side's current streak.
func (e *EconomyEngine) LossStreak(team string) int {
	return e.lossStreaks[team]
}

// Spend deducts a buy from a player's balance.
func (e *EconomyEngine) Spend(playerID string, amount int) {
	e.credits[playerID] -= amount
}

// RoundRewards describes the per-player payouts applied at round end.
type RoundRewards struct {
	WinnerReward int
	LoserReward  int
	PlantSide    string
	PlantBonus   int
}

// ApplyRoundEnd pays both sides, updates loss streaks, and returns
// the reward breakdown for the economy log. plantSide is empty when
// the spike never went down.
func (e *EconomyEngine) ApplyRoundEnd(winner string, spikePlanted bool, plantSide string) RoundRewards {
	loser := models.OtherTeam(winner)
	loserReward := LossBonus(e.lossStreaks[loser])

	rewards := RoundRewards{
		WinnerReward: WinReward,
		LoserReward:  loserReward,
	}

	for id, team := range e.teamOf {
		if team == winner {
			e.credits[id] = clampMax(e.credits[id] + WinReward)
		} else {
			e.credits[id] = clamp(e.credits[id] + loserReward)
		}
	}

	if spikePlanted && plantSide != "" {
		rewards.PlantSide = plantSide
		rewards.PlantBonus = PlantBonus
		for id, team := range e.teamOf {
			if team == plantSide {
				e.credits[id] = clampMax(e.credits[id] + PlantBonus)
			}
		}
	}

	e.lossStreaks[winner] = 0
	e.lossStreaks[loser]++

	return rewards
}

// ResetForPistol puts every player back on pistol-round credits at a
// half boundary.
func (e *EconomyEngine) ResetForPistol() {
	for id := range e.credits {
		e.credits[id] = StartingCredits
	}
}

// CheckInvariants verifies every balance sits inside the legal band
// and loss streaks did not desync after the given round.
func (e *EconomyEngine) CheckInvariants(roundNumber int, winner string) error {
	for id, c := range e.credits {
		if c < MinMoney || c > MaxMoney {
			return &InvariantError{Round: roundNumber, Field: "credits[" + id + "]", Value: c}
		}
	}
	if e.lossStreaks[winner] != 0 {
		return &InvariantError{Round: roundNumber, Field: "loss_streak[" + winner + "]", Value: e.lossStreaks[winner]}
	}
	return nil
}

func clampMax(c int) int {
	if c > MaxMoney {
		return MaxMoney
	}
	return c
}

func clamp(c int) int {
	if c > MaxMoney {
		return MaxMoney
	}
	if c < MinMoney {
		return MinMoney
	}
	return c
}
