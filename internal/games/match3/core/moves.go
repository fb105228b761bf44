package core

// generateAttempts bounds board generation and reshuffling retries.
const generateAttempts = 200

// runThrough reports whether the tile at c is part of a run of MinRun or more
// along either axis.
func runThrough(g *Grid, c Coord) bool {
	t := g.At(c)
	if t == Empty {
		return false
	}

	count := func(dr, dc int) int {
		n := 0
		for p := c.Add(dr, dc); g.InBounds(p) && g.At(p) == t; p = p.Add(dr, dc) {
			n++
		}
		return n
	}

	if 1+count(0, -1)+count(0, 1) >= MinRun {
		return true
	}
	return 1+count(-1, 0)+count(1, 0) >= MinRun
}

// createsRun reports whether swapping a and b would put either tile in a run.
// The grid is restored before returning.
func createsRun(g *Grid, a, b Coord) bool {
	if g.At(a) == g.At(b) {
		return false
	}
	g.swapUnchecked(a, b)
	ok := runThrough(g, a) || runThrough(g, b)
	g.swapUnchecked(a, b)
	return ok
}

// FindMoves lists every adjacent swap that would create a run, in row-major
// order of the first cell (right neighbour before lower neighbour).
func FindMoves(g *Grid) []Swap {
	var moves []Swap
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			a := At(row, col)
			for _, b := range []Coord{a.Add(0, 1), a.Add(1, 0)} {
				if g.InBounds(b) && createsRun(g, a, b) {
					moves = append(moves, Swap{A: a, B: b})
				}
			}
		}
	}
	return moves
}

// HasMoves reports whether at least one swap would create a run.
func HasMoves(g *Grid) bool {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			a := At(row, col)
			for _, b := range []Coord{a.Add(0, 1), a.Add(1, 0)} {
				if g.InBounds(b) && createsRun(g, a, b) {
					return true
				}
			}
		}
	}
	return false
}

// Hint returns the first available move, if any.
func Hint(g *Grid) (Swap, bool) {
	moves := FindMoves(g)
	if len(moves) == 0 {
		return Swap{}, false
	}
	return moves[0], true
}

// fillStable assigns every cell a palette tile that does not complete a run
// with the two cells to its left or the two above. Returns false when some
// cell had no legal color (possible only with a two-color palette).
func fillStable(g *Grid, rng Rand) bool {
	candidates := make([]Tile, 0, len(g.palette))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			candidates = candidates[:0]
			for _, t := range g.palette {
				if col >= 2 && g.At(At(row, col-1)) == t && g.At(At(row, col-2)) == t {
					continue
				}
				if row >= 2 && g.At(At(row-1, col)) == t && g.At(At(row-2, col)) == t {
					continue
				}
				candidates = append(candidates, t)
			}
			if len(candidates) == 0 {
				return false
			}
			g.cells[g.index(At(row, col))] = candidates[rng.Intn(len(candidates))]
		}
	}
	return true
}

// NewStableGrid generates a board with no runs and at least one available
// move. If no such board turns up within the retry budget (tiny grids), the
// last run-free board is returned even if it has no moves.
func NewStableGrid(rows, cols int, palette Palette, rng Rand) *Grid {
	g := NewGrid(rows, cols, palette)
	var fallback *Grid
	for attempt := 0; attempt < generateAttempts; attempt++ {
		if !fillStable(g, rng) {
			continue
		}
		if HasMoves(g) {
			return g
		}
		if fallback == nil {
			fallback = g.Clone()
		}
	}
	if fallback != nil {
		return fallback
	}
	g.RefillEmpties(rng)
	return g
}

// Shuffle rearranges the existing tiles (Fisher-Yates) until the board has no
// runs and at least one move. If shuffling the same tiles cannot get there it
// regenerates the board from the palette. Returns false only if neither
// approach produced a playable board.
func Shuffle(g *Grid, rng Rand) bool {
	for attempt := 0; attempt < generateAttempts; attempt++ {
		for i := len(g.cells) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
		}
		if !HasRuns(g) && HasMoves(g) {
			return true
		}
	}

	fresh := NewStableGrid(g.rows, g.cols, g.palette, rng)
	g.CopyFrom(fresh)
	return !HasRuns(g) && HasMoves(g)
}
