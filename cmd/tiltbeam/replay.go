package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/savelyev-an/tiltbeam/internal/games/beam"
	"github.com/savelyev-an/tiltbeam/internal/registry"
	"github.com/savelyev-an/tiltbeam/internal/sensor"
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace>",
	Short: "Replay a recorded sensor trace",
	Long: `Play a round driven by a recorded orientation trace instead of the
keyboard emulator. The trace is a YAML file of timestamped beta angles:

  samples:
    - at_ms: 0
      beta: 0
    - at_ms: 450
      beta: 14.5
    - at_ms: 700    # A sample without a beta is delivered as invalid
    - at_ms: 900
      beta: 2.0

The same trace against the same --fps and tuning always produces the
same run.

Examples:
  tiltbeam replay traces/perfect-run.yaml
  tiltbeam replay traces/jittery.yaml --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	replayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runReplay(cmd *cobra.Command, args []string) {
	tracePath := args[0]

	// Fail fast on a broken trace before the UI comes up.
	if _, err := sensor.LoadTrace(tracePath); err != nil {
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

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "replay",
	})
	src := sensor.NewReplay(tracePath, logger)

	runGame(game, src)
}
