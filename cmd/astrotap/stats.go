package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrotap/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the last run's result and saved settings",
	Long: `Print the persisted result of the most recent run and the saved
gameplay settings.

Examples:
  astrotap stats
  astrotap stats --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	result, ok, err := storage.LoadLastResult(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading last result: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("No runs recorded yet. Play one with: astrotap play")
	} else {
		fmt.Println("Last run:")
		fmt.Printf("  Score:      %d\n", result.Score)
		fmt.Printf("  Hits:       %d\n", result.Hits)
		fmt.Printf("  Misses:     %d\n", result.Misses)
		fmt.Printf("  Escaped:    %d\n", result.Escaped)
		fmt.Printf("  Spawned:    %d\n", result.Spawned)
		fmt.Printf("  Difficulty: x%.1f\n", result.DifficultyMultiplier)
		fmt.Printf("  Duration:   %.1fs\n", float64(result.TimeMs)/1000)
	}

	settings, ok, err := storage.LoadSettings(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("Saved settings:")
		fmt.Printf("  Speed level: %d\n", settings.SpeedLevel)
		fmt.Printf("  Ramp:        %v\n", settings.DifficultyProgression)
		fmt.Printf("  UI opacity:  %.1f\n", settings.UIOpacity)
	}
}
