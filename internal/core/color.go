package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. Tile colors come first so a game can index them directly.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// TileColors is the palette order used to draw match-3 tiles A..F.
var TileColors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan}
