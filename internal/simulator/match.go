package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/valorsim/valorsim/internal/models"
)

const (
	// WinningScore ends the match. No overtime is modeled; the first
	// side to reach it takes the match outright.
	WinningScore = 13

	// RosterSize is the required number of players per side.
	RosterSize = 5

	buyPhaseSeconds = 30
)

// Options tunes a single match simulation.
type Options struct {
	// Seed drives every random draw in the match. Zero means seed
	// from the wall clock, which makes the run non-reproducible.
	Seed int64

	// AgentOverrides pins specific players to agents before the
	// automatic composition pass runs, keyed by player ID.
	AgentOverrides map[string]string

	// OnRound, when set, is called with each finished round before
	// the next one starts. Useful for streaming progress.
	OnRound func(models.RoundResult)
}

// Simulator runs full matches against a shared weapon and map catalog.
// It is safe to reuse across matches; all per-match state lives in the
// call.
type Simulator struct {
	weapons *WeaponCatalog
	maps    *MapCatalog
}

func NewSimulator(maps *MapCatalog) *Simulator {
	return &Simulator{
		weapons: NewWeaponCatalog(),
		maps:    maps,
	}
}

// SimulateMatch plays a first-to-13 match between two five-player
// rosters on the named map. Unknown maps fall back to a generic
// two-site layout rather than failing the simulation.
func (s *Simulator) SimulateMatch(teamA, teamB []*models.Player, mapName string, opts Options) (*models.MatchResult, error) {
	if len(teamA) != RosterSize {
		return nil, fmt.Errorf("simulator: team_a has %d players, want %d", len(teamA), RosterSize)
	}
	if len(teamB) != RosterSize {
		return nil, fmt.Errorf("simulator: team_b has %d players, want %d", len(teamB), RosterSize)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	layout, usedFallback := s.maps.LookupOrFallback(mapName)

	agents := AssignAgents(teamA, opts.AgentOverrides)
	for id, agent := range AssignAgents(teamB, opts.AgentOverrides) {
		agents[id] = agent
	}

	economy := NewEconomyEngine(teamA, teamB)
	rs := &roundSimulator{
		rng:     rng,
		weapons: s.weapons,
		advisor: NewBuyAdvisor(s.weapons),
		economy: economy,
		layout:  layout,
	}

	performances := make(map[string]*models.PlayerPerformance, len(teamA)+len(teamB))
	for _, p := range teamA {
		performances[p.ID] = &models.PlayerPerformance{PlayerID: p.ID, PlayerName: p.Name(), Team: models.TeamA}
	}
	for _, p := range teamB {
		performances[p.ID] = &models.PlayerPerformance{PlayerID: p.ID, PlayerName: p.Name(), Team: models.TeamB}
	}

	result := &models.MatchResult{
		Map:          layout.Name,
		PlayerAgents: agents,
		Performances: performances,
	}

	elapsedSeconds := 0.0
	previousWinner := ""

	for round := 0; result.Score.TeamA < WinningScore && result.Score.TeamB < WinningScore; round++ {
		log := models.EconomyLog{RoundNumber: round}
		if round == 0 {
			log.Notes = append(log.Notes, "Match start")
			if usedFallback {
				log.Notes = append(log.Notes, fmt.Sprintf("Unknown map %q, using fallback layout", mapName))
			}
		}
		if round == 12 {
			economy.ResetForPistol()
			log.Notes = append(log.Notes, "Side swap, economies reset")
		}
		log.TeamAStart = economy.TeamEconomy(models.TeamA)
		log.TeamBStart = economy.TeamEconomy(models.TeamB)

		outcome := rs.simulateRound(teamA, teamB, agents, round, previousWinner)
		winner := outcome.result.Winner

		rewards := economy.ApplyRoundEnd(winner, outcome.result.SpikePlanted, outcome.plantSide)
		if err := economy.CheckInvariants(round, winner); err != nil {
			return nil, err
		}
		// Snapshot balances after rewards so the round reports values
		// inside the clamp bounds, not mid-round post-buy ones.
		outcome.result.PlayerCredits = economy.AllCredits()

		log.TeamASpend = outcome.spends[models.TeamA]
		log.TeamBSpend = outcome.spends[models.TeamB]
		log.TeamAReward = rewardFor(models.TeamA, winner, rewards)
		log.TeamBReward = rewardFor(models.TeamB, winner, rewards)
		log.TeamAEnd = economy.TeamEconomy(models.TeamA)
		log.TeamBEnd = economy.TeamEconomy(models.TeamB)
		log.Winner = winner
		log.SpikePlanted = outcome.result.SpikePlanted
		if outcome.result.IsPistolRound {
			log.Notes = append(log.Notes, "Pistol round")
		}
		if outcome.result.SpikePlanted {
			log.Notes = append(log.Notes, fmt.Sprintf("Spike planted by %s (+%d)", outcome.plantSide, PlantBonus))
		}
		result.EconomyLogs = append(result.EconomyLogs, log)

		if winner == models.TeamA {
			result.Score.TeamA++
		} else {
			result.Score.TeamB++
		}
		result.Rounds = append(result.Rounds, outcome.result)

		accumulatePerformance(performances, outcome)
		elapsedSeconds += outcome.elapsed + buyPhaseSeconds
		previousWinner = winner

		if opts.OnRound != nil {
			opts.OnRound(outcome.result)
		}
	}

	result.Duration = elapsedSeconds / 60
	result.MVP = pickMVP(teamA, teamB)
	result.Analytics = computeAnalytics(result)
	return result, nil
}

func rewardFor(team, winner string, rewards RoundRewards) int {
	reward := rewards.LoserReward
	if team == winner {
		reward = rewards.WinnerReward
	}
	if rewards.PlantSide == team {
		reward += rewards.PlantBonus
	}
	return reward
}

func accumulatePerformance(performances map[string]*models.PlayerPerformance, outcome roundOutcome) {
	for _, perf := range performances {
		perf.RoundsPlayed++
	}
	firstKill := true
	for _, ev := range outcome.result.MapData.Events {
		if ev.Type != "kill" {
			continue
		}
		if killer, ok := performances[ev.PlayerID]; ok {
			killer.Kills++
			if firstKill {
				killer.FirstBloods++
			}
		}
		if victim, ok := performances[ev.VictimID]; ok {
			victim.Deaths++
		}
		firstKill = false
	}
	for id, n := range outcome.plantCount {
		if perf, ok := performances[id]; ok {
			perf.Plants += n
		}
	}
	if outcome.result.ClutchPlayer != nil {
		if perf, ok := performances[*outcome.result.ClutchPlayer]; ok {
			perf.Clutches++
		}
	}
	for _, teamLoadouts := range outcome.result.PlayerLoadouts {
		for id, loadout := range teamLoadouts {
			if perf, ok := performances[id]; ok {
				perf.MoneySpent += loadout.TotalSpend
			}
		}
	}
}

// pickMVP scores every player on career numbers carried into the
// match, not on what happened during it. Ties keep the earlier player
// in roster order.
func pickMVP(teamA, teamB []*models.Player) string {
	best := ""
	bestScore := -1.0
	for _, p := range append(append([]*models.Player{}, teamA...), teamB...) {
		score := 0.4*p.CareerStats.KDRatio +
			0.3*p.CareerStats.ClutchRate +
			0.3*p.CareerStats.FirstBloodRate
		if score > bestScore {
			bestScore = score
			best = p.ID
		}
	}
	return best
}
