package core

import (
	"errors"
	"fmt"
)

// Move errors. All of them are local to a single requested move and leave the
// grid exactly as it was before the request.
var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotAdjacent is returned when two swap targets are not 4-neighbours.
	ErrNotAdjacent = errors.New("cells are not adjacent")

	// ErrNoEffect is returned for a legal swap that produced no run.
	// The swap has already been reverted when this is reported.
	ErrNoEffect = errors.New("swap produced no match")

	// ErrNothingToUndo is returned by Session.Undo with an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
)

func outOfBounds(c Coord, rows, cols int) error {
	return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, rows, cols)
}

func notAdjacent(a, b Coord) error {
	return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
}
