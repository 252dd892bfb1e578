// tiltbeam is a terminal rendition of a tilt-to-tap reaction game: a
// beam sweeps around a dial and the player flicks the (emulated)
// device exactly while the beam crosses the top arc.
//
// Usage:
//
//	tiltbeam play              - Play with the keyboard-driven tilt emulator
//	tiltbeam replay <trace>    - Replay a recorded sensor trace
//	tiltbeam list              - List available games
//	tiltbeam scores            - Show run history
//	tiltbeam serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tiltbeam/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/savelyev-an/tiltbeam/internal/games/beam"
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
	Use:   "tiltbeam",
	Short: "Tilt Beam - catch the beam with a flick of your wrist",
	Long: `Tilt Beam is a terminal reaction game. A beam rotates around a dial,
speeding up as you score; flick the emulated device tilt at the right
moment to catch it in the target arc at the top.

Available commands:
  play     - Play with the keyboard-driven tilt emulator
  replay   - Replay a recorded sensor trace
  list     - Show all available games
  scores   - View run history and stats
  serve    - Start SSH server for remote play

Examples:
  tiltbeam play
  tiltbeam play --difficulty hard
  tiltbeam replay traces/perfect-run.yaml
  tiltbeam scores --tui
  tiltbeam serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiltbeam/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
