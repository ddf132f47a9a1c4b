package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var seed int64

var rootCmd = &cobra.Command{
	Use:   "valorsim",
	Short: "Tactical shooter match simulator",
	Long:  "Generate synthetic rosters and run seeded 5v5 match simulations.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
}

// resolveSeed turns the flag into a concrete seed so a run can always
// be replayed.
func resolveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
