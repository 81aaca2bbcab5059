package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse buttons. This allows the game to work with high-level
// intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W/K/Up arrow - move cursor up
	ActionDown           // S/J/Down arrow - move cursor down
	ActionLeft           // A/H/Left arrow - move cursor left
	ActionRight          // D/L/Right arrow - move cursor right
	ActionReveal         // Space/Enter, left click - reveal the cell under the cursor
	ActionFlag           // F, right click - toggle a flag
	ActionChord          // C, left click on a revealed number - chord reveal
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause the timer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Besides triggered actions it can carry a pointer target: when HasPointer
// is true the reveal/flag/chord action applies to the pointed screen cell
// instead of the keyboard cursor.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the screen position of a mouse event, valid when
	// HasPointer is set. The game hit-tests it against its viewport.
	Pointer    Point
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer attaches a pointer target to this frame.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Point{X: x, Y: y}
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
	f.Pointer = Point{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
