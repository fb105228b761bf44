package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestValidate(t *testing.T) {
	g := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(1))

	testCases := []struct {
		name string
		a, b core.Coord
		err  error
	}{
		{"right neighbour", core.At(0, 0), core.At(0, 1), nil},
		{"lower neighbour", core.At(3, 3), core.At(4, 3), nil},
		{"diagonal", core.At(0, 0), core.At(1, 1), core.ErrNotAdjacent},
		{"far", core.At(0, 0), core.At(2, 2), core.ErrNotAdjacent},
		{"same cell", core.At(2, 2), core.At(2, 2), core.ErrNotAdjacent},
		{"first outside", core.At(-1, 0), core.At(0, 0), core.ErrOutOfBounds},
		{"second outside", core.At(7, 7), core.At(7, 8), core.ErrOutOfBounds},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(g, tc.a, tc.b)
			if tc.err == nil && err != nil {
				t.Errorf("Validate = %v, expected nil", err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("Validate = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestSwapNotAdjacentLeavesGrid(t *testing.T) {
	g := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(1))
	before := g.Clone()

	err := g.Swap(core.At(0, 0), core.At(2, 2))

	if !errors.Is(err, core.ErrNotAdjacent) {
		t.Errorf("Swap error = %v, expected ErrNotAdjacent", err)
	}
	if !g.Equal(before) {
		t.Error("rejected swap changed the grid")
	}
}

func TestTrySwapNoEffectReverts(t *testing.T) {
	g := core.MustParseGrid(
		"AABC",
		"DEAF",
		"BCDE",
	)
	before := g.Clone()

	_, err := core.TrySwap(g, core.RunFinder{}, core.At(2, 0), core.At(2, 1))

	if !errors.Is(err, core.ErrNoEffect) {
		t.Errorf("TrySwap error = %v, expected ErrNoEffect", err)
	}
	if !g.Equal(before) {
		t.Errorf("grid not restored:\n%s", g)
	}
}

func TestTrySwapIgnoresRunsElsewhere(t *testing.T) {
	// Row 0 already holds a run; the swap on row 2 lines up nothing.
	g := core.MustParseGrid(
		"AAAB",
		"CDEC",
		"DCDE",
	)
	before := g.Clone()

	_, err := core.TrySwap(g, core.RunFinder{}, core.At(2, 0), core.At(2, 1))

	if !errors.Is(err, core.ErrNoEffect) {
		t.Errorf("TrySwap error = %v, expected ErrNoEffect", err)
	}
	if !g.Equal(before) {
		t.Errorf("grid not restored:\n%s", g)
	}
}

func TestTrySwapEqualTiles(t *testing.T) {
	g := core.MustParseGrid(
		"AAAB",
		"CDEC",
	)

	_, err := core.TrySwap(g, core.RunFinder{}, core.At(0, 0), core.At(0, 1))

	if !errors.Is(err, core.ErrNoEffect) {
		t.Errorf("TrySwap error = %v, expected ErrNoEffect", err)
	}
}

func TestTrySwapKeepsMatchingSwap(t *testing.T) {
	g := core.MustParseGrid(
		"AABC",
		"DEAF",
		"BCDE",
	)

	groups, err := core.TrySwap(g, core.RunFinder{}, core.At(0, 2), core.At(1, 2))

	if err != nil {
		t.Fatalf("TrySwap failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Tile != core.TileA {
		t.Errorf("expected one A group, got %+v", groups)
	}
	if g.At(core.At(0, 2)) != core.TileA || g.At(core.At(1, 2)) != core.TileB {
		t.Errorf("swap not applied:\n%s", g)
	}
}

func TestFindMoves(t *testing.T) {
	g := core.MustParseGrid(
		"AABC",
		"DEAF",
		"BCDE",
	)

	moves := core.FindMoves(g)

	want := []core.Swap{{A: core.At(0, 2), B: core.At(1, 2)}}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
	if !core.HasMoves(g) {
		t.Error("HasMoves = false, expected true")
	}
	hint, ok := core.Hint(g)
	if !ok || hint != want[0] {
		t.Errorf("Hint = %v, %v; expected %v", hint, ok, want[0])
	}
}

func TestFindMovesDoesNotMutate(t *testing.T) {
	g := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(5))
	before := g.Clone()

	core.FindMoves(g)

	if !g.Equal(before) {
		t.Error("FindMoves changed the grid")
	}
}

func TestHasMovesDeadlock(t *testing.T) {
	g := core.MustParseGrid(
		"AB",
		"BA",
	)
	if core.HasMoves(g) {
		t.Error("2x2 board cannot have moves")
	}
	if _, ok := core.Hint(g); ok {
		t.Error("Hint returned a move on a deadlocked board")
	}
}

func TestNewStableGrid(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(seed))

		if core.HasRuns(g) {
			t.Errorf("seed %d: new board has runs:\n%s", seed, g)
		}
		if !core.HasMoves(g) {
			t.Errorf("seed %d: new board has no moves:\n%s", seed, g)
		}
		if g.EmptyCount() != 0 {
			t.Errorf("seed %d: new board has empty cells", seed)
		}
	}
}

func TestNewStableGridDeterministic(t *testing.T) {
	a := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(11))
	b := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(11))
	if diff := cmp.Diff(a.Lines(), b.Lines()); diff != "" {
		t.Errorf("same seed produced different boards (-a +b):\n%s", diff)
	}
}

func TestShuffle(t *testing.T) {
	g := core.NewStableGrid(8, 8, core.DefaultPalette(), core.NewRand(4))
	rng := core.NewRand(8)

	if !core.Shuffle(g, rng) {
		t.Fatal("Shuffle failed on an 8x8 board")
	}
	if core.HasRuns(g) {
		t.Errorf("shuffled board has runs:\n%s", g)
	}
	if !core.HasMoves(g) {
		t.Errorf("shuffled board has no moves:\n%s", g)
	}
}
