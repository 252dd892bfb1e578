package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/savelyev-an/tiltbeam/internal/config"
	"github.com/savelyev-an/tiltbeam/internal/core"
	"github.com/savelyev-an/tiltbeam/internal/games/beam"
	"github.com/savelyev-an/tiltbeam/internal/platform/tui"
	"github.com/savelyev-an/tiltbeam/internal/registry"
	"github.com/savelyev-an/tiltbeam/internal/sensor"
	"github.com/savelyev-an/tiltbeam/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoBell     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the keyboard-driven tilt emulator",
	Long: `Start a round against the tilt emulator. Left/right keys nudge the
virtual device angle; a single nudge is a flick big enough to register
as a gesture.

Controls:
  Any key    - Start the round
  Left/A     - Tilt left
  Right/D    - Tilt right
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower beam
  normal - Default tuning
  hard   - Fewer lives, faster beam

Examples:
  tiltbeam play
  tiltbeam play --difficulty easy
  tiltbeam play --config ./my-beam.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable terminal bell feedback")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate a custom config before anything renders, so a bad path
	// fails with a readable error instead of silent defaults.
	tuning, err := config.LoadBeam(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	beam.SetConfigPath(flagConfig)
	beam.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("beam")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	src := sensor.NewEmulator(tuning.Sensor.RateHz, tuning.Sensor.NudgeDeg)

	runGame(game, src)
}

// runGame wires up terminal size, storage and haptics, then runs the
// game loop against the given sensor source.
func runGame(game registry.Game, src sensor.Source) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var haptics tui.Haptics = tui.NewBellHaptics()
	if flagNoBell {
		haptics = tui.NoopHaptics{}
	}

	runErr := tui.Run(game, store, cfg, src, haptics)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
