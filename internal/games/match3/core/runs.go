package core

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// Axis is the scan direction a run was found on.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// MatchGroup is one maximal axis-aligned run of equal tiles, length >= MinRun.
// Coords are in scan order (left to right, or top to bottom).
type MatchGroup struct {
	Tile   Tile
	Axis   Axis
	Coords []Coord
}

// Len returns the run length.
func (m MatchGroup) Len() int {
	return len(m.Coords)
}

// MatchFinder locates runs on a grid.
type MatchFinder interface {
	FindRuns(g *Grid) []MatchGroup
}

// RunFinder is the standard MatchFinder: independent row and column scans.
type RunFinder struct{}

// FindRuns returns every maximal run of length >= MinRun.
// All row groups come first (rows top to bottom), then all column groups
// (columns left to right). A cell may appear in both a row and a column group.
func (RunFinder) FindRuns(g *Grid) []MatchGroup {
	var groups []MatchGroup

	for row := 0; row < g.rows; row++ {
		groups = scanLine(g, groups, AxisRow, g.cols, func(i int) Coord { return At(row, i) })
	}
	for col := 0; col < g.cols; col++ {
		groups = scanLine(g, groups, AxisColumn, g.rows, func(i int) Coord { return At(i, col) })
	}

	return groups
}

// scanLine walks one row or column, appending each closed run that is long
// enough. The run still open when the line ends is closed explicitly.
func scanLine(g *Grid, groups []MatchGroup, axis Axis, length int, coordAt func(int) Coord) []MatchGroup {
	start := 0
	for i := 1; i <= length; i++ {
		if i < length && g.At(coordAt(i)).Matches(g.At(coordAt(start))) {
			continue
		}

		// Run [start, i) closed by a different tile or by the line end.
		if t := g.At(coordAt(start)); t != Empty && i-start >= MinRun {
			coords := make([]Coord, 0, i-start)
			for j := start; j < i; j++ {
				coords = append(coords, coordAt(j))
			}
			groups = append(groups, MatchGroup{Tile: t, Axis: axis, Coords: coords})
		}
		start = i
	}
	return groups
}

// FindRuns runs the standard RunFinder over g.
func FindRuns(g *Grid) []MatchGroup {
	return RunFinder{}.FindRuns(g)
}

// HasRuns reports whether g contains any run of length >= MinRun.
func HasRuns(g *Grid) bool {
	return len(FindRuns(g)) > 0
}

// ClearSet unions the coordinates of all groups, dropping duplicates.
// Order follows first appearance.
func ClearSet(groups []MatchGroup) []Coord {
	seen := make(map[Coord]struct{})
	var out []Coord
	for _, grp := range groups {
		for _, c := range grp.Coords {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
