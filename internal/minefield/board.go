package minefield

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidConfig is returned when board dimensions and mine count cannot
// produce a playable field with a guaranteed safe opening.
var ErrInvalidConfig = errors.New("minefield: invalid configuration")

// safeZone is the first-revealed cell plus its up-to-8 neighbors, which are
// excluded from mine placement.
const safeZone = 9

// Board is a width x height grid of cells with a fixed mine count.
// Mines are placed lazily on the first Reveal so that the first revealed
// cell and its neighbors are never mines.
type Board struct {
	width  int
	height int
	mines  int

	cells    [][]Cell
	rng      *rand.Rand
	placed   bool
	status   Status
	seedOnly bool // Protect only the seed cell on first reveal, not its neighbors

	revealedSafe int // Revealed non-mine cells, for the win check
	flags        int
}

// New validates the configuration and allocates an ungenerated board.
// The rng drives mine placement; pass a seeded source for determinism.
func New(width, height, mines int, rng *rand.Rand) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: board %dx%d has no cells", ErrInvalidConfig, width, height)
	}
	if mines < 1 {
		return nil, fmt.Errorf("%w: mine count %d must be positive", ErrInvalidConfig, mines)
	}
	if mines >= width*height-safeZone {
		return nil, fmt.Errorf("%w: %d mines leave no safe opening on a %dx%d board",
			ErrInvalidConfig, mines, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Board{
		width:  width,
		height: height,
		mines:  mines,
		cells:  cells,
		rng:    rng,
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Mines returns the total mine count.
func (b *Board) Mines() int { return b.mines }

// Status returns the current board status.
func (b *Board) Status() Status { return b.status }

// Flags returns the number of currently placed flags.
func (b *Board) Flags() int { return b.flags }

// MinesLeft returns the mine count minus placed flags. It can go negative
// when the player over-flags.
func (b *Board) MinesLeft() int { return b.mines - b.flags }

// SetSafeNeighborhood controls whether the first reveal protects the seed's
// neighbors in addition to the seed itself. Defaults to on; only meaningful
// before mines are placed.
func (b *Board) SetSafeNeighborhood(on bool) {
	if !b.placed {
		b.seedOnly = !on
	}
}

// Cell returns a copy of the cell at (x, y). The second return value is
// false for out-of-bounds coordinates.
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.in(x, y) {
		return Cell{}, false
	}
	return b.cells[y][x], true
}

// in reports whether (x, y) is on the board.
func (b *Board) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// forEachNeighbor calls fn for every in-bounds 8-neighbor of (x, y).
func (b *Board) forEachNeighbor(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.in(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// generate places mines uniformly at random over all cells except the safe
// seed and its neighbors, then computes adjacency counts.
func (b *Board) generate(safeX, safeY int) {
	candidates := make([][2]int, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.seedOnly {
				if x == safeX && y == safeY {
					continue
				}
			} else if abs(x-safeX) <= 1 && abs(y-safeY) <= 1 {
				continue
			}
			candidates = append(candidates, [2]int{x, y})
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := 0; i < b.mines; i++ {
		p := candidates[i]
		b.cells[p[1]][p[0]].Mine = true
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x].Mine {
				continue
			}
			count := 0
			b.forEachNeighbor(x, y, func(nx, ny int) {
				if b.cells[ny][nx].Mine {
					count++
				}
			})
			b.cells[y][x].Adjacent = count
		}
	}

	b.placed = true
}

// Reveal opens the cell at (x, y) and returns true if the board changed.
// The first reveal triggers mine placement seeded at (x, y). Revealing a
// flagged or already-revealed cell is a no-op. Revealing a mine loses the
// game and exposes all mines. A zero-adjacency reveal flood-fills its
// connected zero component and that component's numbered border, using an
// explicit queue so large boards cannot overflow the stack.
func (b *Board) Reveal(x, y int) bool {
	if !b.in(x, y) || b.status == Won || b.status == Lost {
		return false
	}

	c := &b.cells[y][x]
	if c.State != Hidden {
		return false
	}

	if !b.placed {
		b.generate(x, y)
	}
	if b.status == NotStarted {
		b.status = InProgress
	}

	if c.Mine {
		c.State = Revealed
		c.Exploded = true
		b.status = Lost
		b.exposeMines()
		return true
	}

	changed := false
	queue := [][2]int{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cc := &b.cells[p[1]][p[0]]
		if cc.State != Hidden {
			continue
		}
		cc.State = Revealed
		b.revealedSafe++
		changed = true

		if cc.Adjacent == 0 {
			b.forEachNeighbor(p[0], p[1], func(nx, ny int) {
				if b.cells[ny][nx].State == Hidden {
					queue = append(queue, [2]int{nx, ny})
				}
			})
		}
	}

	if changed {
		b.checkWin()
	}
	return changed
}

// ToggleFlag flips a flag on a hidden cell and returns true if the board
// changed. Flagging a revealed cell is a no-op.
func (b *Board) ToggleFlag(x, y int) bool {
	if !b.in(x, y) || b.status == Won || b.status == Lost {
		return false
	}

	c := &b.cells[y][x]
	switch c.State {
	case Hidden:
		c.State = Flagged
		b.flags++
	case Flagged:
		c.State = Hidden
		b.flags--
	default:
		return false
	}
	return true
}

// Chord reveals all non-flagged hidden neighbors of a revealed numbered
// cell whose adjacent flag count equals its number. A misplaced flag makes
// chording lose the game. Returns true if the board changed.
func (b *Board) Chord(x, y int) bool {
	if !b.in(x, y) || b.status != InProgress {
		return false
	}

	c := b.cells[y][x]
	if c.State != Revealed || c.Adjacent == 0 {
		return false
	}

	flagged := 0
	b.forEachNeighbor(x, y, func(nx, ny int) {
		if b.cells[ny][nx].State == Flagged {
			flagged++
		}
	})
	if flagged != c.Adjacent {
		return false
	}

	changed := false
	b.forEachNeighbor(x, y, func(nx, ny int) {
		if b.status != InProgress {
			return
		}
		if b.cells[ny][nx].State == Hidden && b.Reveal(nx, ny) {
			changed = true
		}
	})
	return changed
}

// checkWin marks the board Won when every non-mine cell is revealed.
// A lost board can never become won.
func (b *Board) checkWin() {
	if b.status != InProgress {
		return
	}
	if b.revealedSafe < b.width*b.height-b.mines {
		return
	}
	b.status = Won

	// Auto-flag remaining mines for the final display.
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := &b.cells[y][x]
			if c.Mine && c.State == Hidden {
				c.State = Flagged
				b.flags++
			}
		}
	}
}

// exposeMines reveals every mine and marks wrong flags after a loss.
func (b *Board) exposeMines() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := &b.cells[y][x]
			if c.Mine && c.State == Hidden {
				c.State = Revealed
			}
			if !c.Mine && c.State == Flagged {
				c.WrongFlag = true
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
