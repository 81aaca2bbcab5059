package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic board generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-visible summary of a running game.
// Returned by Game.State() after every step.
type GameState struct {
	ElapsedSeconds int  // Whole seconds since the first reveal
	MinesLeft      int  // Mine count minus placed flags (may go negative)
	Won            bool // All safe cells revealed
	Lost           bool // A mine was revealed
	Paused         bool // Timer frozen, input ignored except unpause
}

// Over reports whether the game has finished either way.
func (s GameState) Over() bool {
	return s.Won || s.Lost
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
