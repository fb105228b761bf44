package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a game mode (default: match3, the campaign).

Examples:
  match3 scores
  match3 scores match3_endless --limit 20
  match3 scores match3_endless --clear
  match3 scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show summary stats for every mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := match3.CampaignID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresAll {
		printAllStats(store)
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Moves", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, e := range scores {
		level := "-"
		if e.Level > 0 {
			level = fmt.Sprintf("%d", e.Level)
			if e.Won {
				level += "*"
			}
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5s  %-12s  %s\n",
			i+1, e.Score, e.Moves, level, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Last played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02"))
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-15s  %5s  %4s  %7s  %8s  %s\n", "Mode", "Games", "Wins", "Best", "Average", "Last played")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-15s  %5d  %4d  %7d  %8.1f  %s\n",
			info.ID, st.GamesCount, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
