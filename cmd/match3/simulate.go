package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var (
	flagSimGames int
	flagSimMoves int
	flagSimMode  string
	flagSimShow  bool
	flagSimCheck bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay games headlessly and report stats",
	Long: `Plays games without a terminal UI, always taking the first available
swap. Useful to tune level targets and to check that cascades settle.

In campaign mode each game runs until the campaign is won or a level runs
out of moves. In endless mode each game stops after --moves swaps.

Examples:
  match3 simulate --games 100
  match3 simulate --mode endless --moves 500 --seed 1 --show
  match3 simulate --difficulty hard --check`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagSimGames, "games", "n", 10, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Swaps per endless game")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", string(match3.ModeCampaign), "campaign or endless")
	simulateCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
	simulateCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final board of every game")
	simulateCmd.Flags().BoolVar(&flagSimCheck, "check", false, "Replay every game and verify it is deterministic")
}

// simResult summarizes one autoplayed game.
type simResult struct {
	Seed       int64
	Score      int
	Moves      int
	Level      int
	Won        bool
	MaxPasses  int
	Capped     int
	Reshuffles int
	Final      match3.Snapshot
	Board      string
}

func runSimulate(_ *cobra.Command, _ []string) {
	mode := match3.Mode(flagSimMode)
	if mode != match3.ModeCampaign && mode != match3.ModeEndless {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want campaign or endless)\n", flagSimMode)
		os.Exit(1)
	}
	if flagSimGames <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --games must be positive")
		os.Exit(1)
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	results := make([]simResult, 0, flagSimGames)
	for i := range flagSimGames {
		seed := baseSeed + int64(i)
		res := simulateGame(mode, seed)

		if flagSimCheck {
			again := simulateGame(mode, seed)
			if !slices.Equal(res.Final.Board, again.Final.Board) || res.Score != again.Score {
				logger.Error("replay diverged", "seed", seed, "score", res.Score, "replay", again.Score)
				os.Exit(1)
			}
		}

		logger.Info("game finished",
			"game", i+1,
			"seed", seed,
			"score", res.Score,
			"moves", res.Moves,
			"level", res.Level,
			"won", res.Won,
			"max_chain", res.MaxPasses,
			"reshuffles", res.Reshuffles)
		if res.Capped > 0 {
			logger.Warn("cascade hit the pass cap", "seed", seed, "times", res.Capped)
		}
		if flagSimShow {
			fmt.Println(res.Board)
		}
		results = append(results, res)
	}

	printSummary(mode, results)
}

// simulateGame plays one game with hint-driven autoplay.
func simulateGame(mode match3.Mode, seed int64) simResult {
	level := 0
	if mode == match3.ModeCampaign {
		level = flagLevel
	}
	g := match3.NewGame(mode, gameCfg, level)

	rt := platformcore.DefaultConfig()
	rt.Seed = seed
	// No terminal: any configured board must fit.
	rt.ScreenW, rt.ScreenH = 1<<12, 1<<12
	g.Reset(rt)

	res := simResult{Seed: seed}
	selectFrame := platformcore.NewInputFrame()
	selectFrame.Set(platformcore.ActionSelect)

	for swaps := 0; ; {
		snap := g.Snapshot()
		switch snap.State {
		case match3.StateGameOver, match3.StateWin:
			return finish(g, res)
		case match3.StateLevelCleared:
			g.Step(selectFrame)
			continue
		}
		if mode == match3.ModeEndless && swaps >= flagSimMoves {
			return finish(g, res)
		}

		mv, ok := core.Hint(g.Session().Snapshot())
		if !ok {
			// Only tiny boards can end up here; a reshuffle is attempted after every swap.
			return finish(g, res)
		}
		if err := g.Swap(mv.A, mv.B); err != nil {
			logger.Error("hinted swap rejected", "seed", seed, "swap", mv, "error", err)
			return finish(g, res)
		}
		swaps++
		res.Moves++

		last := g.LastSwap()
		res.MaxPasses = max(res.MaxPasses, last.Passes)
		if last.Capped {
			res.Capped++
		}
		if last.Reshuffled {
			res.Reshuffles++
		}
	}
}

func finish(g *match3.Game, res simResult) simResult {
	state := g.State()
	res.Score = state.Score
	res.Level = state.Level
	res.Won = state.Won
	res.Final = g.Snapshot()
	res.Board = core.RenderASCII(g.Session())
	return res
}

func printSummary(mode match3.Mode, results []simResult) {
	var total, best, wins, capped, reshuffles, maxChain int
	levels := make(map[int]int)
	for _, r := range results {
		total += r.Score
		best = max(best, r.Score)
		capped += r.Capped
		reshuffles += r.Reshuffles
		maxChain = max(maxChain, r.MaxPasses)
		if r.Won {
			wins++
		}
		levels[r.Level]++
	}

	fmt.Println()
	fmt.Printf("Simulated %d %s games\n", len(results), mode)
	fmt.Printf("  Average score: %.1f\n", float64(total)/float64(len(results)))
	fmt.Printf("  Best score:    %d\n", best)
	fmt.Printf("  Longest chain: %d passes\n", maxChain)
	fmt.Printf("  Reshuffles:    %d\n", reshuffles)
	fmt.Printf("  Capped:        %d\n", capped)

	if mode == match3.ModeCampaign {
		fmt.Printf("  Campaign wins: %d\n", wins)
		fmt.Println("  Reached level:")
		for _, lvl := range match3.LevelsFromConfig(gameCfg) {
			if n := levels[lvl.ID]; n > 0 {
				fmt.Printf("    %2d %-16s %d\n", lvl.ID, lvl.Name, n)
			}
		}
	}
}
