package simulator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/valorsim/valorsim/internal/models"
)

// computeAnalytics derives post-match summary numbers from the round
// log. Spend statistics run over per-round team spends, both sides.
func computeAnalytics(result *models.MatchResult) *models.MatchAnalytics {
	analytics := &models.MatchAnalytics{}
	if len(result.Rounds) == 0 {
		return analytics
	}

	spends := make([]float64, 0, len(result.EconomyLogs)*2)
	for _, log := range result.EconomyLogs {
		spends = append(spends, float64(log.TeamASpend), float64(log.TeamBSpend))
	}
	analytics.SpendMean = stat.Mean(spends, nil)
	analytics.SpendStdDev = stat.StdDev(spends, nil)

	kills := 0
	for _, round := range result.Rounds {
		for _, ev := range round.MapData.Events {
			if ev.Type == "kill" {
				kills++
			}
		}
		if round.SpikePlanted {
			analytics.TotalPlants++
		}
		if round.ClutchPlayer != nil {
			analytics.TotalClutches++
		}
		if round.IsPistolRound {
			if round.Winner == models.TeamA {
				analytics.PistolRoundsWonA++
			} else {
				analytics.PistolRoundsWonB++
			}
		}
	}
	analytics.AvgKillsPerRound = float64(kills) / float64(len(result.Rounds))
	return analytics
}
