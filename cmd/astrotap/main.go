// astrotap is a terminal game: tap the falling asteroid before it escapes.
//
// Usage:
//
//	astrotap play     - Play in the current terminal
//	astrotap serve    - Start SSH server for remote play
//	astrotap stats    - Show the last run's result and saved settings
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.astrotap/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrotap",
	Short: "Astrotap - tap the asteroid before it escapes",
	Long: `Astrotap is a terminal arcade game. A single asteroid falls through
the play area; click it before it leaves the screen. Speed ramps up with
the difficulty level and, optionally, with elapsed time.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  stats    - Show the last run's result and saved settings

Examples:
  astrotap play
  astrotap play --config ./my-classic.yaml
  astrotap serve --ssh :2222
  astrotap stats`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.astrotap/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
