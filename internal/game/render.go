package game

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

const helpText = "move: arrows/wasd  reveal: space  f: flag  c: chord  p: pause  q: quit"

// Render draws the HUD, the board and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW = dst.Width()
		g.screenH = dst.Height()
		g.layout()
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	dst.DrawText(1, dst.Height()-1, helpText)

	switch {
	case g.board.Status() == minefield.Won:
		g.renderOverlay(dst, "You win!", g.winSubtitle())
	case g.board.Status() == minefield.Lost:
		g.renderOverlay(dst, "Boom!", "press r to play again, b for menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "press p to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s", g.Title())
	right := fmt.Sprintf("Mines %3d   Time %s ", g.board.MinesLeft(), formatTime(g.elapsed()))

	dst.DrawTextColored(0, 0, left, core.ColorHUD)
	if x := dst.Width() - len(right); x > len(left) {
		dst.DrawTextColored(x, 0, right, core.ColorHUD)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *core.Screen) {
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			cell, _ := g.board.Cell(x, y)
			r, color := cellGlyph(cell)
			if x == g.cursorX && y == g.cursorY && !g.board.Status().Finished() {
				color = core.ColorCursor
			}
			dst.SetCell(g.boardOffsetX+x*cellSpacing, g.boardOffsetY+y, r, color)
		}
	}

	// Bracket the cursor cell so it reads without color support too.
	if !g.board.Status().Finished() {
		cx := g.boardOffsetX + g.cursorX*cellSpacing
		cy := g.boardOffsetY + g.cursorY
		dst.SetCell(cx-1, cy, '[', core.ColorCursor)
		dst.SetCell(cx+1, cy, ']', core.ColorCursor)
	}
}

// cellGlyph picks the rune and color for a cell.
func cellGlyph(cell minefield.Cell) (rune, core.Color) {
	switch cell.State {
	case minefield.Flagged:
		if cell.WrongFlag {
			return '✗', core.ColorWrongFlag
		}
		return '⚑', core.ColorFlag
	case minefield.Revealed:
		switch {
		case cell.Exploded:
			return '@', core.ColorExploded
		case cell.Mine:
			return '*', core.ColorMine
		case cell.Adjacent == 0:
			return ' ', core.ColorDefault
		default:
			return rune('0' + cell.Adjacent), core.NumberColor(cell.Adjacent)
		}
	default:
		return '·', core.ColorHidden
	}
}

// winSubtitle summarizes the finished time against the recorded best.
func (g *Game) winSubtitle() string {
	elapsed := formatTime(g.elapsed())
	switch {
	case g.bestSeconds > 0 && g.elapsed() < g.bestSeconds:
		return fmt.Sprintf("New best %s (was %s) - press r to play again", elapsed, formatTime(g.bestSeconds))
	case g.bestSeconds > 0:
		return fmt.Sprintf("Time %s (best %s) - press r to play again", elapsed, formatTime(g.bestSeconds))
	default:
		return fmt.Sprintf("Time %s - press r to play again", elapsed)
	}
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d for %s",
		(g.board.Width()-1)*cellSpacing+3, g.board.Height()+g.hudHeight+2, g.difficulty))
}

// formatTime renders whole seconds as m:ss.
func formatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
