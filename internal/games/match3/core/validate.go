package core

// Validate checks that a swap between a and b is allowed on g:
// both coordinates in bounds and exactly one orthogonal step apart.
// It never mutates the grid.
func Validate(g *Grid, a, b Coord) error {
	if !g.InBounds(a) {
		return outOfBounds(a, g.rows, g.cols)
	}
	if !g.InBounds(b) {
		return outOfBounds(b, g.rows, g.cols)
	}
	if !a.Adjacent(b) {
		return notAdjacent(a, b)
	}
	return nil
}

// TrySwap performs a validated swap and keeps it only if one of the two moved
// tiles ends up in a run. Runs elsewhere on the board do not count. A swap
// that matches nothing is swapped back and reported as ErrNoEffect. On
// success every run on the board after the swap is returned.
func TrySwap(g *Grid, finder MatchFinder, a, b Coord) ([]MatchGroup, error) {
	if err := Validate(g, a, b); err != nil {
		return nil, err
	}
	if !createsRun(g, a, b) {
		return nil, ErrNoEffect
	}

	g.swapUnchecked(a, b)
	return finder.FindRuns(g), nil
}
