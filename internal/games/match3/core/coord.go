package core

import "fmt"

// Coord addresses a grid cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether other is one of the four orthogonal neighbours.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Swap is an unordered pair of adjacent coordinates.
type Swap struct {
	A Coord
	B Coord
}

// String returns a string representation of the swap.
func (s Swap) String() string {
	return fmt.Sprintf("%v<->%v", s.A, s.B)
}
