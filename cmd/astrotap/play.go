package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrotap/internal/config"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/game/classic"
	"github.com/vovakirdan/astrotap/internal/platform/tui"
	"github.com/vovakirdan/astrotap/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session in the current terminal.

Controls:
  Enter/Space  - Start (from the start screen or after a run)
  Mouse click  - Tap the asteroid
  P/Esc        - Pause
  +/-          - Speed level up/down
  G            - Toggle difficulty ramp
  Q            - End the current run
  Ctrl+C       - Exit

Examples:
  astrotap play
  astrotap play --seed 42
  astrotap play --config ./my-classic.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: astrotap play requires a terminal")
		os.Exit(1)
	}

	cfg, err := config.LoadClassic(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "astrotap"})

	// Open the results store; a failure degrades to in-memory so the game
	// still runs.
	primary, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		primary = nil
	}
	store := storage.NewResilient(primary, logger)
	defer store.Close()

	eng := engine.New(engine.Options{
		Mode:   classic.New(cfg),
		Store:  store,
		Seed:   flagSeed,
		Logger: logger,
	})

	if err := tui.Run(eng, cfg, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
