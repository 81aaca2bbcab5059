package game

import "github.com/vovakirdan/tui-minesweeper/internal/minefield"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Status         minefield.Status
	CursorX        int
	CursorY        int
	MinesLeft      int
	Flags          int
	Revealed       int
	ElapsedSeconds int
	Paused         bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	revealed := 0
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if c, _ := g.board.Cell(x, y); c.State == minefield.Revealed {
				revealed++
			}
		}
	}
	return Snapshot{
		Tick:           g.tick,
		Status:         g.board.Status(),
		CursorX:        g.cursorX,
		CursorY:        g.cursorY,
		MinesLeft:      g.board.MinesLeft(),
		Flags:          g.board.Flags(),
		Revealed:       revealed,
		ElapsedSeconds: g.elapsed(),
		Paused:         g.paused,
	}
}
