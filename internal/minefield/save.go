package minefield

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cell encoding for saved rows. Adjacency is recomputed on restore, so a
// cell only needs its mine bit and visibility state.
const (
	saveHiddenSafe   = '.'
	saveHiddenMine   = '*'
	saveFlaggedSafe  = 'f'
	saveFlaggedMine  = 'F'
	saveRevealedSafe = 'o'
)

// SaveState is a serializable snapshot of an in-progress board. It is what
// the storage layer persists (YAML-encoded) for the continue-game feature.
// Finished boards are not saved.
type SaveState struct {
	Width          int      `yaml:"width"`
	Height         int      `yaml:"height"`
	Mines          int      `yaml:"mines"`
	Placed         bool     `yaml:"placed"`
	Rows           []string `yaml:"rows"`
	ElapsedSeconds int      `yaml:"elapsed_seconds"`
}

// Save captures the current board into a SaveState. ElapsedSeconds is owned
// by the game layer and left zero here.
func (b *Board) Save() SaveState {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		sb.Grow(b.width)
		for x := 0; x < b.width; x++ {
			c := b.cells[y][x]
			switch {
			case c.State == Revealed:
				sb.WriteByte(saveRevealedSafe)
			case c.State == Flagged && c.Mine:
				sb.WriteByte(saveFlaggedMine)
			case c.State == Flagged:
				sb.WriteByte(saveFlaggedSafe)
			case c.Mine:
				sb.WriteByte(saveHiddenMine)
			default:
				sb.WriteByte(saveHiddenSafe)
			}
		}
		rows[y] = sb.String()
	}

	return SaveState{
		Width:  b.width,
		Height: b.height,
		Mines:  b.mines,
		Placed: b.placed,
		Rows:   rows,
	}
}

// Restore rebuilds a board from a SaveState. Adjacency counts, flag and
// reveal totals and the status are recomputed from the rows. The rng is
// used for generation if the saved board had no mines placed yet.
func Restore(state SaveState, rng *rand.Rand) (*Board, error) {
	b, err := New(state.Width, state.Height, state.Mines, rng)
	if err != nil {
		return nil, err
	}
	if !state.Placed {
		// Saved before the first reveal; a fresh board is equivalent.
		return b, nil
	}

	if len(state.Rows) != state.Height {
		return nil, fmt.Errorf("%w: save has %d rows, want %d", ErrInvalidConfig, len(state.Rows), state.Height)
	}

	mines := 0
	for y, row := range state.Rows {
		if len(row) != state.Width {
			return nil, fmt.Errorf("%w: save row %d has %d cells, want %d", ErrInvalidConfig, y, len(row), state.Width)
		}
		for x := 0; x < state.Width; x++ {
			c := &b.cells[y][x]
			switch row[x] {
			case saveHiddenSafe:
			case saveHiddenMine:
				c.Mine = true
			case saveFlaggedSafe:
				c.State = Flagged
				b.flags++
			case saveFlaggedMine:
				c.Mine = true
				c.State = Flagged
				b.flags++
			case saveRevealedSafe:
				c.State = Revealed
				b.revealedSafe++
			default:
				return nil, fmt.Errorf("%w: save row %d has unknown cell %q", ErrInvalidConfig, y, row[x])
			}
			if c.Mine {
				mines++
			}
		}
	}
	if mines != state.Mines {
		return nil, fmt.Errorf("%w: save contains %d mines, want %d", ErrInvalidConfig, mines, state.Mines)
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
	b.status = InProgress
	return b, nil
}
