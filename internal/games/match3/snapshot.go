package match3

// StateType names the phase a game is in.
type StateType string

const (
	StatePlaying      StateType = "playing"
	StateLevelCleared StateType = "level_cleared"
	StateGameOver     StateType = "game_over"
	StateWin          StateType = "win"
	StatePaused       StateType = "paused"
	StatePausedSmall  StateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and the simulate
// command.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-based, 0 for endless
	Target    int
	MoveLimit int
	Score     int // current board
	Total     int // storage score
	Moves     int
	Board     []string
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.cleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Score: g.session.CurrentScore(),
		Total: g.Score(),
		Moves: g.session.MoveCount(),
		Board: g.session.Snapshot().Lines(),
		State: state,
	}
	if lvl := g.currentLevel(); lvl != nil {
		snap.Level = lvl.ID
		snap.Target = lvl.TargetScore
		snap.MoveLimit = lvl.MoveLimit
	}
	return snap
}
