package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/playergen"
)

var (
	genCount     int
	genRoster    bool
	genRegion    string
	genRole      string
	genMinRating float64
	genMaxRating float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic players or a full roster",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genCount, "count", 5, "number of players to generate")
	generateCmd.Flags().BoolVar(&genRoster, "roster", false, "generate a roster with core roles covered")
	generateCmd.Flags().StringVar(&genRegion, "region", "", "restrict to a region (NA, EU, APAC, BR, LATAM)")
	generateCmd.Flags().StringVar(&genRole, "role", "", "restrict to a role class")
	generateCmd.Flags().Float64Var(&genMinRating, "min-rating", 0, "minimum core stat rating")
	generateCmd.Flags().Float64Var(&genMaxRating, "max-rating", 0, "maximum core stat rating")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s := resolveSeed()
	gen := playergen.NewGenerator(newRand(s))
	opts := playergen.Options{
		Region:    genRegion,
		Role:      models.Role(genRole),
		MinRating: genMinRating,
		MaxRating: genMaxRating,
	}

	var players []*models.Player
	if genRoster {
		roster, err := gen.GenerateRoster(genCount, opts)
		if err != nil {
			return fmt.Errorf("generate roster: %w", err)
		}
		players = roster
	} else {
		for i := 0; i < genCount; i++ {
			p, err := gen.GeneratePlayer(opts)
			if err != nil {
				return fmt.Errorf("generate player: %w", err)
			}
			players = append(players, p)
		}
	}

	fmt.Fprintf(os.Stdout, "Seed: %d\n\n", s)
	printPlayerTable(os.Stdout, players)
	return nil
}
