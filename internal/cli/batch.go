package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/playergen"
	"github.com/valorsim/valorsim/internal/simulator"
)

var (
	batchMap     string
	batchMatches int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a batch of matches and print aggregate results per map",
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchMap, "map", "", "restrict the batch to one map (default: all maps)")
	batchCmd.Flags().IntVar(&batchMatches, "matches", 10, "matches per map")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchMatches < 1 {
		return fmt.Errorf("matches must be at least 1")
	}

	catalog := simulator.NewMapCatalog()
	maps := catalog.AllNames()
	if batchMap != "" {
		if _, ok := catalog.Lookup(batchMap); !ok {
			return fmt.Errorf("unknown map %q", batchMap)
		}
		maps = []string{batchMap}
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

	sim := simulator.NewSimulator(catalog)
	fmt.Fprintf(os.Stdout, "Seed: %d  Matches per map: %d\n", s, batchMatches)

	table := newTable(os.Stdout)
	table.Header("MAP", "MATCHES", "A WINS", "B WINS", "AVG ROUNDS", "AVG K/ROUND")

	offset := int64(0)
	for _, name := range maps {
		winsA, winsB, rounds := 0, 0, 0
		kills := 0.0
		for i := 0; i < batchMatches; i++ {
			result, err := sim.SimulateMatch(teamA, teamB, name, simulator.Options{Seed: s + offset})
			offset++
			if err != nil {
				return fmt.Errorf("simulate on %s: %w", name, err)
			}
			if result.Winner() == models.TeamA {
				winsA++
			} else {
				winsB++
			}
			rounds += len(result.Rounds)
			if result.Analytics != nil {
				kills += result.Analytics.AvgKillsPerRound
			}
		}
		table.Append(
			name,
			strconv.Itoa(batchMatches),
			strconv.Itoa(winsA),
			strconv.Itoa(winsB),
			fmt.Sprintf("%.1f", float64(rounds)/float64(batchMatches)),
			fmt.Sprintf("%.2f", kills/float64(batchMatches)),
		)
	}
	table.Render()
	return nil
}
