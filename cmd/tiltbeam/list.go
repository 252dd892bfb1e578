package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savelyev-an/tiltbeam/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-12s  %s\n", g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Play with 'tiltbeam play'.")
}
