// match3 is a terminal match-3 puzzle: swap neighbouring tiles to line up
// three or more of a kind, then watch the board cascade.
//
// Usage:
//
//	match3 play              - Play (menu, or --mode/--level to skip it)
//	match3 list              - List game modes
//	match3 scores [mode]     - Show high scores
//	match3 serve             - Start SSH server for remote play
//	match3 simulate          - Autoplay games headlessly and report stats
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Load board, scoring and levels from YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool

	// gameCfg is the loaded configuration after the difficulty preset.
	gameCfg config.Match3Config
	logger  *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a tile-swapping puzzle for your terminal",
	Long: `Match-3 is a terminal puzzle: swap two neighbouring tiles to line up
three or more of the same kind. Matched tiles disappear, the tiles above
fall down and new ones drop in, sometimes setting off chain reactions.

Available commands:
  play      - Play in the terminal
  list      - Show game modes
  scores    - View high scores
  serve     - Start SSH server for remote play
  simulate  - Autoplay games headlessly

Examples:
  match3 play
  match3 play --mode endless --seed 42
  match3 play --level 3 --difficulty hard
  match3 serve --ssh :2222
  match3 simulate --games 100`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads the configuration shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	gameCfg = cfg
	match3.SetConfig(cfg)
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols),
		"colors", cfg.Board.Colors,
		"levels", len(cfg.Levels),
		"difficulty", preset)
	return nil
}

// fileLogger returns a logger writing to ~/.match3/match3.log, for commands
// that own the terminal. Falls back to a discarding logger.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".match3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "match3"})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l, func() { f.Close() }
}
