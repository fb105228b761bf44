package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagMode  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game. Without --mode or --level a menu lets you pick the
campaign, endless play, a starting level or the high score table. After a
game you return to the menu.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Pick a tile, then a neighbour to swap
  Esc/B            - Cancel pick (back to menu when paused or over)
  U                - Undo last swap
  ?                - Hint (costs points)
  R                - Restart
  P                - Pause
  Tab              - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  match3 play
  match3 play --mode endless
  match3 play --level 4 --difficulty easy
  match3 play --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu: campaign or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Skip the menu and start the campaign at this level (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameLog, closeLog := fileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sessionID := storage.NewSessionID()

	width, height := 80, 24
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

	if flagMode != "" || flagLevel > 0 {
		sel, selErr := directSelection()
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if _, runErr := playOnce(sel, store, cfg, gameLog, sessionID); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		printSessionSummary(store, sessionID)
		return
	}
	defer printSessionSummary(store, sessionID)

	for {
		menuResult, menuErr := tui.RunMenu(match3.Levels(), cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue
		}

		backToMenu, runErr := playOnce(*menuResult.Selection, store, cfg, gameLog, sessionID)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !backToMenu {
			return
		}
	}
}

// directSelection turns --mode and --level into a menu selection.
func directSelection() (tui.MenuSelection, error) {
	switch match3.Mode(flagMode) {
	case "", match3.ModeCampaign:
		levels := match3.Levels()
		if flagLevel < 0 || flagLevel > len(levels) {
			return tui.MenuSelection{}, fmt.Errorf("level must be between 1 and %d", len(levels))
		}
		return tui.MenuSelection{GameID: match3.CampaignID, Level: flagLevel}, nil
	case match3.ModeEndless:
		if flagLevel > 0 {
			return tui.MenuSelection{}, fmt.Errorf("--level only applies to campaign mode")
		}
		return tui.MenuSelection{GameID: match3.EndlessID}, nil
	default:
		return tui.MenuSelection{}, fmt.Errorf("unknown mode %q (want campaign or endless)", flagMode)
	}
}

// playOnce runs one game and reports whether the player went back to the menu.
func playOnce(sel tui.MenuSelection, store *storage.Store, cfg core.RuntimeConfig, gameLog *log.Logger, sessionID string) (bool, error) {
	match3.SetStartLevel(sel.Level)

	game, err := registry.Create(sel.GameID)
	if err != nil {
		return false, err
	}

	gameLog.Info("starting game", "game", sel.GameID, "level", sel.Level, "seed", cfg.Seed)
	return tui.Run(game, store, cfg, tui.RunOptions{Logger: gameLog, SessionID: sessionID})
}

// printSessionSummary lists the games recorded during this run.
func printSessionSummary(store *storage.Store, sessionID string) {
	if store == nil {
		return
	}
	scores, err := store.SessionScores(sessionID)
	if err != nil {
		logger.Warn("could not read session scores", "error", err)
		return
	}
	if len(scores) == 0 {
		return
	}

	fmt.Println("This session:")
	for _, e := range scores {
		result := fmt.Sprintf("%d moves", e.Moves)
		if e.Level > 0 {
			result += fmt.Sprintf(", level %d", e.Level)
		}
		if e.Won {
			result += ", campaign complete"
		}
		fmt.Printf("  %-15s %6d  (%s)\n", e.GameID, e.Score, result)
	}
}
