package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/playergen"
	"github.com/valorsim/valorsim/internal/simulator"
)

var (
	simMap     string
	simMatches int
	simVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one or more matches between two generated teams",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simMap, "map", "Ascent", "map to play on")
	simulateCmd.Flags().IntVar(&simMatches, "matches", 1, "number of matches in the series")
	simulateCmd.Flags().BoolVar(&simVerbose, "verbose", false, "print the round-by-round economy log")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simMatches < 1 {
		return fmt.Errorf("matches must be at least 1")
	}

	s := resolveSeed()
	gen := playergen.NewGenerator(newRand(s))
	teamA, err := gen.GenerateRoster(simulator.RosterSize, playergen.Options{})
	if err != nil {
		return fmt.Errorf("generate team A: %w", err)
	}
	teamB, err := gen.GenerateRoster(simulator.RosterSize, playergen.Options{})
	if err != nil {
		return fmt.Errorf("generate team B: %w", err)
	}

	sim := simulator.NewSimulator(simulator.NewMapCatalog())
	fmt.Fprintf(os.Stdout, "Seed: %d  Map: %s\n", s, simMap)

	winsA, winsB := 0, 0
	for i := 0; i < simMatches; i++ {
		result, err := sim.SimulateMatch(teamA, teamB, simMap, simulator.Options{Seed: s + int64(i)})
		if err != nil {
			return fmt.Errorf("simulate match %d: %w", i+1, err)
		}

		if result.Winner() == models.TeamA {
			winsA++
		} else {
			winsB++
		}

		fmt.Fprintf(os.Stdout, "\nMatch %d: Team A %d – %d Team B  (%.0f min, MVP %s)\n",
			i+1, result.Score.TeamA, result.Score.TeamB, result.Duration, mvpName(result, teamA, teamB))
		printPerformanceTable(os.Stdout, result)
		if simVerbose {
			printEconomyTable(os.Stdout, result.EconomyLogs)
		}
		if result.Analytics != nil {
			a := result.Analytics
			fmt.Fprintf(os.Stdout, "Avg kills/round %.2f  Spend mean %.0f (stddev %.0f)  Plants %d  Clutches %d\n",
				a.AvgKillsPerRound, a.SpendMean, a.SpendStdDev, a.TotalPlants, a.TotalClutches)
		}
	}

	if simMatches > 1 {
		fmt.Fprintf(os.Stdout, "\nSeries: Team A %d – %d Team B\n", winsA, winsB)
	}
	return nil
}

func mvpName(result *models.MatchResult, teamA, teamB []*models.Player) string {
	for _, p := range append(append([]*models.Player{}, teamA...), teamB...) {
		if p.ID == result.MVP {
			return p.Name()
		}
	}
	return result.MVP
}
