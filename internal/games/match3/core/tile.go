// Package core provides the match-3 board engine: run detection, scoring and
// cascade resolution. It is UI-agnostic and deterministic for a given RNG seed.
package core

import "strings"

// Tile is the content of a single grid cell.
// The zero value is Empty; every other value is a color from the palette.
type Tile uint8

const (
	Empty Tile = iota
	TileA
	TileB
	TileC
	TileD
	TileE
	TileF
	tileSentinel
)

// MaxColors is the largest palette the engine supports.
const MaxColors = int(tileSentinel - 1)

// MinColors is the smallest palette that still makes a playable board.
const MinColors = 2

// IsEmpty reports whether the tile is the Empty marker.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Matches reports whether two tiles can be part of the same run.
// Empty never matches anything, itself included.
func (t Tile) Matches(other Tile) bool {
	return t != Empty && t == other
}

// Char returns the single-character form used by ASCII rendering and parsing.
func (t Tile) Char() rune {
	switch t {
	case Empty:
		return '.'
	case TileA:
		return 'A'
	case TileB:
		return 'B'
	case TileC:
		return 'C'
	case TileD:
		return 'D'
	case TileE:
		return 'E'
	case TileF:
		return 'F'
	default:
		return '?'
	}
}

// String returns the string representation of a tile.
func (t Tile) String() string {
	if t == Empty {
		return "empty"
	}
	return string(t.Char())
}

// ParseTile converts a character back to a Tile.
// '.', '_' and ' ' are all read as Empty.
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case '.', '_', ' ':
		return Empty, true
	}
	up := strings.ToUpper(string(r))
	if len(up) != 1 {
		return Empty, false
	}
	c := up[0]
	if c < 'A' || c >= 'A'+byte(MaxColors) {
		return Empty, false
	}
	return Tile(c-'A') + TileA, true
}

// Palette is the set of non-empty tiles available for random generation.
type Palette []Tile

// NewPalette returns a palette of the first n colors, clamped to
// [MinColors, MaxColors].
func NewPalette(n int) Palette {
	if n < MinColors {
		n = MinColors
	}
	if n > MaxColors {
		n = MaxColors
	}
	p := make(Palette, n)
	for i := range p {
		p[i] = TileA + Tile(i)
	}
	return p
}

// DefaultPalette returns the five-color palette A..E.
func DefaultPalette() Palette {
	return NewPalette(5)
}

// Contains reports whether t is part of the palette.
func (p Palette) Contains(t Tile) bool {
	for _, c := range p {
		if c == t {
			return true
		}
	}
	return false
}

// Pick draws a tile uniformly from the palette.
func (p Palette) Pick(rng Rand) Tile {
	return p[rng.Intn(len(p))]
}
