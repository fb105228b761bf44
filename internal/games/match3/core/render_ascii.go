package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates a text view of a session for debugging, golden tests
// and the simulate command.
//
// Format:
//   - Header with score, accepted moves and undo depth
//   - Column indices, then one row per line prefixed by its row index
//   - Tiles as 'A'..'F', empty cells as '.'
func RenderASCII(s *Session) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d | Moves: %d | Undo: %d\n",
		s.CurrentScore(), s.MoveCount(), s.UndoDepth()))
	sb.WriteString(RenderGrid(s.grid))
	return sb.String()
}

// RenderGrid draws the board with row and column indices.
func RenderGrid(g *Grid) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < g.cols; col++ {
		sb.WriteString(fmt.Sprintf("%d", col%10))
	}
	sb.WriteString("\n")

	for row := 0; row < g.rows; row++ {
		sb.WriteString(fmt.Sprintf("%2d ", row))
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.At(At(row, col)).Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCompact returns just the tile rows, no indices.
func RenderCompact(g *Grid) string {
	return g.String() + "\n"
}
