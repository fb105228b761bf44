package core

import (
	"fmt"
	"strings"
)

// DefaultRows and DefaultCols are the standard board dimensions.
const (
	DefaultRows = 8
	DefaultCols = 8
)

// Grid is the game board: a fixed rows x cols rectangle of tiles.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows    int
	cols    int
	cells   []Tile
	palette Palette
}

// NewGrid creates an all-empty grid that refills from the given palette.
func NewGrid(rows, cols int, palette Palette) *Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("match3: invalid grid size %dx%d", rows, cols))
	}
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]Tile, rows*cols),
		palette: palette,
	}
}

// ParseGrid builds a grid from text rows such as "AAB.C".
// All rows must have the same length. The palette defaults to A..E.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("match3: empty grid")
	}
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, fmt.Errorf("match3: empty grid row")
	}

	g := NewGrid(len(lines), cols, DefaultPalette())
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("match3: row %d has %d cells, want %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			t, ok := ParseTile(ch)
			if !ok {
				return nil, fmt.Errorf("match3: invalid tile %q at %v", ch, At(r, c))
			}
			g.cells[g.index(At(r, c))] = t
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on error. Intended for tests and
// fixed fixtures.
func MustParseGrid(lines ...string) *Grid {
	g, err := ParseGrid(lines...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Palette returns the colors used for refills.
func (g *Grid) Palette() Palette {
	return g.palette
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the tile at c, or ErrOutOfBounds.
func (g *Grid) Get(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Empty, outOfBounds(c, g.rows, g.cols)
	}
	return g.cells[g.index(c)], nil
}

// At returns the tile at c without an error. Out-of-bounds reads return Empty.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[g.index(c)]
}

// Set replaces the tile at c. Out-of-bounds writes are a programming error.
func (g *Grid) Set(c Coord, t Tile) {
	g.mustInBounds(c)
	g.cells[g.index(c)] = t
}

func (g *Grid) mustInBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("match3: %v outside %dx%d grid", c, g.rows, g.cols))
	}
}

// Swap exchanges two adjacent tiles. The grid is untouched on error.
func (g *Grid) Swap(a, b Coord) error {
	if err := Validate(g, a, b); err != nil {
		return err
	}
	g.swapUnchecked(a, b)
	return nil
}

func (g *Grid) swapUnchecked(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Clear empties every listed coordinate. Already-empty cells are left alone.
// Passing an out-of-bounds coordinate panics.
func (g *Grid) Clear(coords []Coord) {
	for _, c := range coords {
		g.mustInBounds(c)
		g.cells[g.index(c)] = Empty
	}
}

// ShiftColumnDown applies gravity: in every column non-empty tiles sink toward
// the highest row index keeping their relative order, empties rise to the top.
// Returns the number of tiles that moved.
func (g *Grid) ShiftColumnDown() int {
	moved := 0
	for col := 0; col < g.cols; col++ {
		write := g.rows - 1
		for row := g.rows - 1; row >= 0; row-- {
			t := g.cells[g.index(At(row, col))]
			if t == Empty {
				continue
			}
			if write != row {
				g.cells[g.index(At(write, col))] = t
				g.cells[g.index(At(row, col))] = Empty
				moved++
			}
			write--
		}
	}
	return moved
}

// RefillEmpties assigns a random palette tile to every empty cell and returns
// how many cells were filled. Cells are visited in row-major order so a fixed
// seed always produces the same board.
func (g *Grid) RefillEmpties(rng Rand) int {
	filled := 0
	for i, t := range g.cells {
		if t == Empty {
			g.cells[i] = g.palette.Pick(rng)
			filled++
		}
	}
	return filled
}

// Column returns a copy of one column, top to bottom.
func (g *Grid) Column(col int) []Tile {
	out := make([]Tile, g.rows)
	for row := range out {
		out[row] = g.At(At(row, col))
	}
	return out
}

// Row returns a copy of one row, left to right.
func (g *Grid) Row(row int) []Tile {
	out := make([]Tile, g.cols)
	copy(out, g.cells[row*g.cols:(row+1)*g.cols])
	return out
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, t := range g.cells {
		if t == Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		cells:   cells,
		palette: g.palette,
	}
}

// CopyFrom overwrites this grid's tiles with other's. Dimensions must match.
func (g *Grid) CopyFrom(other *Grid) {
	if g.rows != other.rows || g.cols != other.cols {
		panic("match3: CopyFrom with mismatched dimensions")
	}
	copy(g.cells, other.cells)
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines returns the grid as text rows, one character per tile.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.Reset()
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[g.index(At(row, col))].Char())
		}
		lines[row] = sb.String()
	}
	return lines
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
