package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestParseGrid(t *testing.T) {
	g, err := core.ParseGrid(
		"AB.",
		"cde",
	)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("expected 2x3 grid, got %dx%d", g.Rows(), g.Cols())
	}

	testCases := []struct {
		coord core.Coord
		tile  core.Tile
	}{
		{core.At(0, 0), core.TileA},
		{core.At(0, 1), core.TileB},
		{core.At(0, 2), core.Empty},
		{core.At(1, 0), core.TileC},
		{core.At(1, 2), core.TileE},
	}
	for _, tc := range testCases {
		if got := g.At(tc.coord); got != tc.tile {
			t.Errorf("At(%v) = %v, expected %v", tc.coord, got, tc.tile)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"AB", "A"}},
		{"bad tile", []string{"AZ"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseGrid(tc.lines...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := core.NewGrid(3, 3, nil)

	for _, c := range []core.Coord{core.At(-1, 0), core.At(0, -1), core.At(3, 0), core.At(0, 3)} {
		if _, err := g.Get(c); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
		if got := g.At(c); got != core.Empty {
			t.Errorf("At(%v) = %v, expected empty", c, got)
		}
	}
}

func TestGridSetPanicsOutOfBounds(t *testing.T) {
	g := core.NewGrid(2, 2, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-bounds Set")
		}
	}()
	g.Set(core.At(2, 0), core.TileA)
}

func TestShiftColumnDownCompacts(t *testing.T) {
	// [A, EMPTY, A, EMPTY, A] -> [EMPTY, EMPTY, A, A, A]
	g := core.MustParseGrid("A", ".", "A", ".", "A")

	moved := g.ShiftColumnDown()

	want := []core.Tile{core.Empty, core.Empty, core.TileA, core.TileA, core.TileA}
	if diff := cmp.Diff(want, g.Column(0)); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}
	if moved != 2 {
		t.Errorf("moved = %d, expected 2", moved)
	}
}

func TestShiftColumnDownIsStable(t *testing.T) {
	g := core.MustParseGrid(
		"AD",
		"B.",
		".E",
		"C.",
	)

	g.ShiftColumnDown()

	want := []string{
		"..",
		"A.",
		"BD",
		"CE",
	}
	if diff := cmp.Diff(want, g.Lines()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftColumnDownNoEmpties(t *testing.T) {
	g := core.MustParseGrid("AB", "CD")
	before := g.Clone()

	if moved := g.ShiftColumnDown(); moved != 0 {
		t.Errorf("moved = %d, expected 0", moved)
	}
	if !g.Equal(before) {
		t.Error("full grid should not change")
	}
}

func TestRefillEmptiesDeterministic(t *testing.T) {
	build := func() *core.Grid {
		g := core.MustParseGrid(
			"A..B",
			"....",
			"C..D",
		)
		g.RefillEmpties(core.NewRand(42))
		return g
	}

	a, b := build(), build()
	if diff := cmp.Diff(a.Lines(), b.Lines()); diff != "" {
		t.Errorf("same seed produced different boards (-a +b):\n%s", diff)
	}
	if a.EmptyCount() != 0 {
		t.Errorf("EmptyCount = %d after refill, expected 0", a.EmptyCount())
	}
	for row := 0; row < a.Rows(); row++ {
		for _, tile := range a.Row(row) {
			if !a.Palette().Contains(tile) {
				t.Errorf("refilled tile %v not in palette", tile)
			}
		}
	}
}

func TestRefillEmptiesRowMajor(t *testing.T) {
	g := core.MustParseGrid(
		"A.",
		".B",
	)

	filled := g.RefillEmpties(script(2, 3))

	if filled != 2 {
		t.Errorf("filled = %d, expected 2", filled)
	}
	want := []string{"AC", "DB"}
	if diff := cmp.Diff(want, g.Lines()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridSwapIsSelfInverse(t *testing.T) {
	g := core.NewStableGrid(6, 6, core.DefaultPalette(), core.NewRand(3))
	before := g.Clone()

	pairs := []core.Swap{
		{A: core.At(0, 0), B: core.At(0, 1)},
		{A: core.At(2, 3), B: core.At(3, 3)},
		{A: core.At(5, 5), B: core.At(5, 4)},
	}
	for _, p := range pairs {
		if err := g.Swap(p.A, p.B); err != nil {
			t.Fatalf("Swap(%v) failed: %v", p, err)
		}
		if err := g.Swap(p.A, p.B); err != nil {
			t.Fatalf("second Swap(%v) failed: %v", p, err)
		}
		if !g.Equal(before) {
			t.Errorf("swapping %v twice changed the grid", p)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.MustParseGrid("AB", "CD")
	c := g.Clone()
	c.Set(core.At(0, 0), core.TileE)

	if g.At(core.At(0, 0)) != core.TileA {
		t.Error("modifying clone changed the original")
	}
}
