package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors at render time.
type Color uint8

// Predefined colors for board elements. Number1..Number8 follow the
// classic minesweeper palette (blue 1, green 2, red 3, ...).
const (
	ColorDefault Color = iota
	ColorNumber1
	ColorNumber2
	ColorNumber3
	ColorNumber4
	ColorNumber5
	ColorNumber6
	ColorNumber7
	ColorNumber8
	ColorMine
	ColorExploded
	ColorFlag
	ColorWrongFlag
	ColorHidden
	ColorCursor
	ColorHUD
	ColorGray
)

// NumberColor returns the color for an adjacency count 1..8.
// Counts outside that range get the default color.
func NumberColor(n int) Color {
	if n < 1 || n > 8 {
		return ColorDefault
	}
	return ColorNumber1 + Color(n-1)
}
