package match3

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth = 3 // "[●]" with cursor brackets
	hudHeight = 3
	footerH   = 3
)

// tileGlyphs gives every color its own shape so the board reads without color.
var tileGlyphs = map[core.Tile]rune{
	core.TileA: '●',
	core.TileB: '■',
	core.TileC: '▲',
	core.TileD: '◆',
	core.TileE: '★',
	core.TileF: '♥',
}

// TileGlyph returns the rune used to draw a tile.
func TileGlyph(t core.Tile) rune {
	if r, ok := tileGlyphs[t]; ok {
		return r
	}
	return '·'
}

// TileColor returns the screen color for a tile.
func TileColor(t core.Tile) platformcore.Color {
	i := int(t) - int(core.TileA)
	if i < 0 || i >= len(platformcore.TileColors) {
		return platformcore.ColorGray
	}
	return platformcore.TileColors[i]
}

func (g *Game) minScreenSize() (int, int) {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	return platformcore.Max(cols*cellWidth+2, 40), rows + 2 + hudHeight + footerH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.session.Cols()*cellWidth + 2
	boardH := g.session.Rows() + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, boardW, boardH)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws title, score and level progress.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.Score()))

	var info string
	if lvl := g.currentLevel(); lvl != nil {
		info = fmt.Sprintf("L%d %d/%d  Moves %d/%d", lvl.ID, g.session.CurrentScore(), lvl.TargetScore,
			g.session.MoveCount(), lvl.MoveLimit)
	} else {
		info = fmt.Sprintf("Moves: %d", g.session.MoveCount())
	}
	infoX := platformcore.Max(boardX, boardX+boardW-len(info))
	dst.DrawText(infoX, 1, info)

	if lvl := g.currentLevel(); lvl != nil {
		dst.DrawTextCentered(2, lvl.Name)
	}
}

// renderBoard draws the frame and every tile with cursor, selection and hint
// markers.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	dst.DrawBoxColored(platformcore.NewRect(boardX, boardY, boardW, boardH), platformcore.ColorGray)

	hintOn := g.hintLeft > 0
	for row := 0; row < g.session.Rows(); row++ {
		for col := 0; col < g.session.Cols(); col++ {
			c := core.At(row, col)
			t := g.session.At(c)
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row

			dst.SetColored(x+1, y, TileGlyph(t), TileColor(t))

			left, right := ' ', ' '
			markColor := platformcore.ColorBrightWhite
			switch {
			case g.hasSel && c == g.selected:
				left, right = '(', ')'
				markColor = platformcore.ColorOrange
			case c == g.cursor:
				left, right = '[', ']'
			case hintOn && (c == g.hint.A || c == g.hint.B):
				left, right = '<', '>'
				markColor = platformcore.ColorYellow
			}
			dst.SetColored(x, y, left, markColor)
			dst.SetColored(x+2, y, right, markColor)
		}
	}
}

// renderFooter draws the status message and the undo counter.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
	if g.cfg.Session.HistoryLimit > 0 {
		dst.DrawTextCentered(y+1, fmt.Sprintf("Undo available: %d", g.session.UndoDepth()))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!",
			fmt.Sprintf("Final score: %d", g.Score()), "Press R to restart")
	case g.cleared:
		lvl := g.currentLevel()
		g.drawOverlay(dst, centerX, centerY, fmt.Sprintf("Level %d cleared!", lvl.ID),
			fmt.Sprintf("Next: %s", g.levels[g.levelIndex+1].Name), "Press Space to continue")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "OUT OF MOVES",
			fmt.Sprintf("Score: %d", g.Score()), "Press R to restart")
	}
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, len(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
