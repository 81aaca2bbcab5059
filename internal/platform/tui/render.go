package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Numbers follow the
// classic minesweeper palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorNumber1:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorNumber2:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorNumber3:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorNumber4:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorNumber5:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorNumber6:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorNumber7:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorNumber8:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	core.ColorMine:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorExploded:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
	core.ColorFlag:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWrongFlag: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	core.ColorHidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
