package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long:  `Shows the registered game modes and the campaign levels of the current configuration.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}

	levels := match3.Levels()
	fmt.Println()
	fmt.Printf("Campaign (%dx%d board):\n", gameCfg.Board.Rows, gameCfg.Board.Cols)
	fmt.Println()
	fmt.Printf("  %3s  %-16s  %6s  %5s  %6s\n", "#", "Name", "Target", "Moves", "Colors")
	for _, l := range levels {
		fmt.Printf("  %3d  %-16s  %6d  %5d  %6d\n", l.ID, l.Name, l.TargetScore, l.MoveLimit, l.Colors)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --level <n>' to start at a level.")
}
