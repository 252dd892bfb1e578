package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/savelyev-an/tiltbeam/internal/platform/tui"
	"github.com/savelyev-an/tiltbeam/internal/registry"
	"github.com/savelyev-an/tiltbeam/internal/storage"
)

var (
	flagScoresTUI bool
	flagRecent    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the top recorded runs: points, outcome, and how long the
round lasted.

Examples:
  tiltbeam scores
  tiltbeam scores --recent
  tiltbeam scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of points")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "beam"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, tuiErr := tui.RunScoreboard(store, gameID, width, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	title := gameID
	if info, infoErr := registry.Info(gameID); infoErr == nil {
		title = info.Title
	}

	var runs []storage.RunEntry
	if flagRecent {
		runs, err = store.RecentRuns(gameID, 10)
	} else {
		runs, err = store.TopRuns(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tiltbeam play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Points", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "------", "------", "----", "----")

	for i, entry := range runs {
		result := "LOSS"
		if entry.Won {
			result = "WIN"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %3ds   %s\n", i+1, entry.Points, result, entry.DurationSecs, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestPoints(gameID); bestErr == nil {
		fmt.Printf("Best: %d", best)
		if wins, winsErr := store.WinCount(gameID); winsErr == nil {
			fmt.Printf("   Wins: %d", wins)
		}
		fmt.Println()
	}
}
