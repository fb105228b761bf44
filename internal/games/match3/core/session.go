package core

import "fmt"

// Options configures a Session.
type Options struct {
	Rows         int
	Cols         int
	Colors       int
	Seed         int64
	MaxPasses    int
	Scorer       Scorer
	HistoryLimit int // snapshots kept for Undo; 0 disables undo
	HintPenalty  int // points removed per Hint
}

// DefaultOptions returns an 8x8, five-color session with undo enabled.
func DefaultOptions() Options {
	return Options{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Colors:       5,
		MaxPasses:    DefaultMaxPasses,
		Scorer:       DefaultScorer(),
		HistoryLimit: 20,
		HintPenalty:  1,
	}
}

// SwapResult is the outcome of one RequestSwap.
type SwapResult struct {
	Accepted   bool
	ScoreDelta int
	Cleared    int
	Passes     int
	Groups     int
	Capped     bool
	Reshuffled bool
	Deadlocked bool // no move left and reshuffling could not produce one
}

// snapshot is one undo entry.
type snapshot struct {
	grid    *Grid
	score   int
	moves   int
	charged int
}

// Session owns one board for one player. It is not safe for concurrent use:
// each swap is validated, applied and fully cascaded before the next.
type Session struct {
	opts     Options
	rng      Rand
	grid     *Grid
	score    Score
	resolver *Resolver
	history  []snapshot
	moves    int
	hints    int
	charged  int // points removed by hints so far
	shuffles int
}

// NewSession creates a session with a freshly generated, stable board.
func NewSession(opts Options) *Session {
	return NewSessionWithRand(opts, NewRand(opts.Seed))
}

// NewSessionWithRand is NewSession with an explicit randomness source.
func NewSessionWithRand(opts Options, rng Rand) *Session {
	s := newSession(opts, rng)
	s.Reset()
	return s
}

// NewSessionFromGrid starts a session on a caller-supplied board. The board
// is used as-is, runs included; it is copied, not shared. No randomness is
// consumed until the first accepted swap.
func NewSessionFromGrid(g *Grid, opts Options, rng Rand) *Session {
	s := newSession(opts, rng)
	s.grid = g.Clone()
	return s
}

func newSession(opts Options, rng Rand) *Session {
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}
	if opts.Colors == 0 {
		opts.Colors = 5
	}
	if opts.Scorer == nil {
		opts.Scorer = DefaultScorer()
	}

	return &Session{
		opts: opts,
		rng:  rng,
		resolver: &Resolver{
			Finder:    RunFinder{},
			Scorer:    opts.Scorer,
			Rand:      rng,
			MaxPasses: opts.MaxPasses,
		},
	}
}

// Reset regenerates the board and clears score, history and counters.
func (s *Session) Reset() {
	s.grid = NewStableGrid(s.opts.Rows, s.opts.Cols, NewPalette(s.opts.Colors), s.rng)
	s.score.Reset()
	s.history = nil
	s.moves = 0
	s.hints = 0
	s.charged = 0
	s.shuffles = 0
}

// RequestSwap is the only mutating move entry point. Out-of-bounds and
// non-adjacent requests fail without touching the board. A legal swap that
// creates no run is reverted and reported as ErrNoEffect with Accepted=false.
func (s *Session) RequestSwap(a, b Coord) (SwapResult, error) {
	if err := Validate(s.grid, a, b); err != nil {
		return SwapResult{}, err
	}

	before := s.capture()
	if _, err := TrySwap(s.grid, s.resolver.Finder, a, b); err != nil {
		return SwapResult{}, err
	}

	s.pushHistory(before)
	s.moves++

	cascade := s.resolver.Resolve(s.grid, &s.score)
	result := SwapResult{
		Accepted:   true,
		ScoreDelta: cascade.ScoreDelta,
		Cleared:    cascade.Cleared,
		Passes:     len(cascade.Passes),
		Groups:     cascade.Groups(),
		Capped:     cascade.Capped,
	}

	if !HasMoves(s.grid) {
		if Shuffle(s.grid, s.rng) {
			s.shuffles++
			result.Reshuffled = true
		} else {
			result.Deadlocked = true
		}
	}

	return result, nil
}

// Hint returns a swap that would match, charging the configured penalty.
func (s *Session) Hint() (Swap, bool) {
	mv, ok := Hint(s.grid)
	if !ok {
		return Swap{}, false
	}
	s.hints++
	s.charged += s.score.Subtract(s.opts.HintPenalty)
	return mv, true
}

// Undo restores the board, score and move count from before the last
// accepted swap. Hint charges taken since then stay paid.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.grid = last.grid
	s.score.Set(last.score)
	s.score.Subtract(s.charged - last.charged)
	s.moves = last.moves
	return nil
}

func (s *Session) capture() snapshot {
	return snapshot{grid: s.grid.Clone(), score: s.score.Value(), moves: s.moves, charged: s.charged}
}

func (s *Session) pushHistory(snap snapshot) {
	if s.opts.HistoryLimit <= 0 {
		return
	}
	s.history = append(s.history, snap)
	if over := len(s.history) - s.opts.HistoryLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

// Snapshot returns a copy of the board for rendering.
func (s *Session) Snapshot() *Grid {
	return s.grid.Clone()
}

// At returns the tile at c on the live board (Empty if out of bounds).
func (s *Session) At(c Coord) Tile {
	return s.grid.At(c)
}

// Rows returns the board height.
func (s *Session) Rows() int {
	return s.grid.Rows()
}

// Cols returns the board width.
func (s *Session) Cols() int {
	return s.grid.Cols()
}

// CurrentScore returns the running total.
func (s *Session) CurrentScore() int {
	return s.score.Value()
}

// MoveCount returns the number of accepted swaps (undone swaps excluded).
func (s *Session) MoveCount() int {
	return s.moves
}

// UndoDepth returns how many swaps can currently be undone.
func (s *Session) UndoDepth() int {
	return len(s.history)
}

// HintsUsed returns how many hints were handed out.
func (s *Session) HintsUsed() int {
	return s.hints
}

// Shuffles returns how many deadlocked boards were reshuffled.
func (s *Session) Shuffles() int {
	return s.shuffles
}

// String returns a one-line summary, handy in logs.
func (s *Session) String() string {
	return fmt.Sprintf("match3 %dx%d score=%d moves=%d", s.grid.Rows(), s.grid.Cols(), s.score.Value(), s.moves)
}
