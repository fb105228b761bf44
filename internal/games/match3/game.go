// Package match3 adapts the match-3 engine to the platform: a cursor-driven
// board with campaign and endless modes.
package match3

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registered game IDs.
const (
	CampaignID = "match3"
	EndlessID  = "match3_endless"
)

// ErrNotAccepting is returned by Swap once the game is over or a cleared
// level is waiting to be continued.
var ErrNotAccepting = errors.New("match3: game not accepting moves")

const (
	hintTicks    = 60 // how long a hint stays highlighted
	messageTicks = 90
)

// Game implements the match-3 puzzle for the platform.
type Game struct {
	mode       Mode
	cfg        config.Match3Config
	levels     []Level
	startLevel int

	session    *core.Session
	seed       int64
	levelIndex int
	totalScore int // campaign: points banked from cleared levels

	cursor   core.Coord
	selected core.Coord
	hasSel   bool
	hint     core.Swap
	hintLeft int
	message  string
	msgLeft  int
	lastSwap core.SwapResult
	tick     uint64
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
	cleared  bool // campaign level target reached, waiting for Select
	gameOver bool
	won      bool
}

func init() {
	registry.Register(CampaignID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}

// New creates a campaign game from the package configuration.
func New() *Game {
	return NewGame(ModeCampaign, Config(), StartLevel())
}

// NewEndless creates an endless game from the package configuration.
func NewEndless() *Game {
	return NewGame(ModeEndless, Config(), 0)
}

// NewGame creates a game with an explicit configuration. startLevel is
// 1-based; 0 starts at the first level.
func NewGame(mode Mode, cfg config.Match3Config, startLevel int) *Game {
	return &Game{
		mode:       mode,
		cfg:        cfg,
		levels:     LevelsFromConfig(cfg),
		startLevel: startLevel,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Swap tiles forever; play until you quit"
	}
	return fmt.Sprintf("Reach the target score within the move limit (%d levels)", len(g.levels))
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.totalScore = 0
	g.paused = false
	g.gameOver = false
	g.won = false

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= len(g.levels) {
		g.levelIndex = g.startLevel - 1
	}

	g.startBoard(g.seed)
	g.checkScreenSize()
}

// sessionOptions maps the configuration onto engine options.
func (g *Game) sessionOptions(seed int64) core.Options {
	colors := g.cfg.Board.Colors
	if lvl := g.currentLevel(); lvl != nil {
		colors = lvl.Colors
	}
	return core.Options{
		Rows:   g.cfg.Board.Rows,
		Cols:   g.cfg.Board.Cols,
		Colors: colors,
		Seed:   seed,
		Scorer: core.TieredScorer{
			Three: g.cfg.Scoring.Three,
			Four:  g.cfg.Scoring.Four,
			Five:  g.cfg.Scoring.Five,
			Six:   g.cfg.Scoring.Six,
		},
		MaxPasses:    g.cfg.Cascade.MaxPasses,
		HistoryLimit: g.cfg.Session.HistoryLimit,
		HintPenalty:  g.cfg.Session.HintPenalty,
	}
}

// startBoard creates a fresh session for the current level.
func (g *Game) startBoard(seed int64) {
	g.session = core.NewSession(g.sessionOptions(seed))
	g.cursor = core.At(g.session.Rows()/2, g.session.Cols()/2)
	g.hasSel = false
	g.hintLeft = 0
	g.cleared = false
	g.lastSwap = core.SwapResult{}
	g.message = ""
	g.msgLeft = 0
	if lvl := g.currentLevel(); lvl != nil {
		g.say(fmt.Sprintf("Level %d: %s - reach %d in %d moves", lvl.ID, lvl.Name, lvl.TargetScore, lvl.MoveLimit))
	}
}

// currentLevel returns the active campaign level, or nil in endless mode.
func (g *Game) currentLevel() *Level {
	if g.mode != ModeCampaign || g.levelIndex >= len(g.levels) {
		return nil
	}
	return &g.levels[g.levelIndex]
}

// Resize adapts to a new terminal size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.hintLeft > 0 {
		g.hintLeft--
	}
	if g.msgLeft > 0 {
		g.msgLeft--
		if g.msgLeft == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// After game over the platform owns restart.
	if g.gameOver {
		return g.result()
	}

	if in.Has(platformcore.ActionRestart) {
		g.restartLevel()
		return g.result()
	}

	if g.cleared {
		if in.Has(platformcore.ActionSelect) || in.Has(platformcore.ActionConfirm) {
			g.advanceLevel()
		}
		return g.result()
	}

	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionSelect) || in.Has(platformcore.ActionConfirm):
		g.selectAtCursor()
	case in.Has(platformcore.ActionBack):
		g.hasSel = false
	case in.Has(platformcore.ActionUndo):
		g.undo()
	case in.Has(platformcore.ActionHint):
		g.showHint()
	}

	return g.result()
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	c := g.cursor
	switch {
	case in.Has(platformcore.ActionUp):
		c = c.Add(-1, 0)
	case in.Has(platformcore.ActionDown):
		c = c.Add(1, 0)
	case in.Has(platformcore.ActionLeft):
		c = c.Add(0, -1)
	case in.Has(platformcore.ActionRight):
		c = c.Add(0, 1)
	}
	c.Row = platformcore.Clamp(c.Row, 0, g.session.Rows()-1)
	c.Col = platformcore.Clamp(c.Col, 0, g.session.Cols()-1)
	g.cursor = c
}

// selectAtCursor picks the tile under the cursor, or swaps it with the
// already picked one when they are neighbours.
func (g *Game) selectAtCursor() {
	switch {
	case !g.hasSel:
		g.selected = g.cursor
		g.hasSel = true
	case g.selected == g.cursor:
		g.hasSel = false
	case g.selected.Adjacent(g.cursor):
		g.hasSel = false
		g.swap(g.selected, g.cursor)
	default:
		g.selected = g.cursor
	}
}

// Swap requests a swap directly, bypassing the cursor. Used by tests and
// autoplay.
func (g *Game) Swap(a, b core.Coord) error {
	if g.gameOver || g.cleared {
		return ErrNotAccepting
	}
	return g.swap(a, b)
}

func (g *Game) swap(a, b core.Coord) error {
	res, err := g.session.RequestSwap(a, b)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNoEffect):
			g.say("No match - swap reverted")
		default:
			g.say(err.Error())
		}
		return err
	}

	g.lastSwap = res
	g.hintLeft = 0

	msg := fmt.Sprintf("+%d", res.ScoreDelta)
	if res.Passes > 1 {
		msg += fmt.Sprintf("  chain x%d", res.Passes)
	}
	if res.Reshuffled {
		msg += "  no moves left - board reshuffled"
	}
	g.say(msg)

	g.checkLevelEnd()
	if res.Deadlocked && !g.gameOver && !g.cleared {
		g.gameOver = true
		g.say(msg + "  no moves left")
	}
	return nil
}

// checkLevelEnd applies campaign win/lose rules after an accepted swap.
func (g *Game) checkLevelEnd() {
	lvl := g.currentLevel()
	if lvl == nil {
		return
	}
	switch {
	case g.session.CurrentScore() >= lvl.TargetScore:
		g.totalScore += g.session.CurrentScore()
		if g.levelIndex >= len(g.levels)-1 {
			g.won = true
			g.gameOver = true
			return
		}
		g.cleared = true
	case g.session.MoveCount() >= lvl.MoveLimit:
		g.gameOver = true
	}
}

// advanceLevel moves to the next campaign level with a fresh board.
func (g *Game) advanceLevel() {
	g.levelIndex++
	g.startBoard(g.seed + int64(g.levelIndex))
}

// restartLevel throws away the current board and starts the level again.
func (g *Game) restartLevel() {
	g.startBoard(g.seed + int64(g.levelIndex) + int64(g.tick))
	g.say("Board restarted")
}

func (g *Game) undo() {
	if err := g.session.Undo(); err != nil {
		g.say("Nothing to undo")
		return
	}
	g.hasSel = false
	g.say(fmt.Sprintf("Undone - %d left", g.session.UndoDepth()))
}

func (g *Game) showHint() {
	mv, ok := g.session.Hint()
	if !ok {
		g.say("No moves available")
		return
	}
	g.hint = mv
	g.hintLeft = hintTicks
	g.cursor = mv.A
	if g.cfg.Session.HintPenalty > 0 {
		g.say(fmt.Sprintf("Hint: %v (-%d)", mv, g.cfg.Session.HintPenalty))
	} else {
		g.say(fmt.Sprintf("Hint: %v", mv))
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.msgLeft = messageTicks
}

// Score returns the score that counts for storage: banked campaign levels
// plus the current board.
func (g *Game) Score() int {
	if g.mode == ModeCampaign && (g.won || g.cleared) {
		return g.totalScore
	}
	return g.totalScore + g.session.CurrentScore()
}

// Session exposes the underlying engine session.
func (g *Game) Session() *core.Session {
	return g.session
}

// LastSwap returns the outcome of the most recent accepted swap.
func (g *Game) LastSwap() core.SwapResult {
	return g.lastSwap
}

// Cursor returns the cursor position.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Selection returns the picked tile, if any.
func (g *Game) Selection() (core.Coord, bool) {
	return g.selected, g.hasSel
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Message: g.message}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	moves := 0
	if g.session != nil {
		moves = g.session.MoveCount()
	}
	score := 0
	if g.session != nil {
		score = g.Score()
	}
	return platformcore.GameState{
		Score:    score,
		Moves:    moves,
		Level:    level,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.cleared,
		Mode:     string(g.mode),
	}
}
