// Package minefield implements the minesweeper board model: mine placement
// with a guaranteed safe first reveal, flood-fill reveal, flagging, chording
// and win/loss tracking. It is pure logic with no rendering or input
// dependencies.
package minefield

// CellState is the visibility state of a single cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is one grid position.
type Cell struct {
	Mine      bool
	State     CellState
	Adjacent  int  // Number of mined neighbors, 0..8
	Exploded  bool // The revealed mine that ended the game
	WrongFlag bool // Flag on a non-mine, marked after a loss
}

// Status is the lifecycle state of a board. Transitions are forward only:
// NotStarted -> InProgress -> Won | Lost. A finished board is replaced,
// never resumed.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

// Finished reports whether the board reached a terminal state.
func (s Status) Finished() bool {
	return s == Won || s == Lost
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
