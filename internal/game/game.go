// Package game implements the playable minesweeper variants on top of the
// minefield board model: cursor movement, the reveal/flag/chord input
// mapping, the elapsed-time clock and the screen rendering. Pure logic,
// registered with the registry per difficulty.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// Cells are drawn two columns apart so the grid reads as a grid.
const cellSpacing = 2

// Package-level knobs set by the CLI before game creation.
var (
	configPath  string
	customBoard *config.BoardConfig
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetCustomBoard sets the board used by the "custom" variant. The board
// must already be validated.
func SetCustomBoard(board config.BoardConfig) {
	b := board
	customBoard = &b
}

// Game implements a minesweeper difficulty variant.
type Game struct {
	difficulty string
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	boardCfg config.BoardConfig
	rules    config.RulesConfig
	loaded   bool // Config read from disk once per instance

	board       *minefield.Board
	pendingSave *minefield.SaveState

	// Cursor position in board coordinates
	cursorX int
	cursorY int

	// Timing: whole seconds carried over from a restored save plus ticks
	// spent in progress since.
	elapsedBase  int
	runningTicks int

	// Viewport
	screenW      int
	screenH      int
	hudHeight    int
	boardOffsetX int
	boardOffsetY int

	paused   bool
	tooSmall bool

	// Best recorded win for this difficulty, shown on the win overlay.
	// Zero when no win is recorded. Set by the platform before play.
	bestSeconds int
}

// New creates a game for a preset difficulty.
func New(difficulty string) *Game {
	return &Game{difficulty: difficulty}
}

func init() {
	for _, d := range []string{"beginner", "intermediate", "expert", "custom"} {
		difficulty := d
		registry.Register(difficulty, func() registry.Game {
			return New(difficulty)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.difficulty
}

// Title returns the display name, e.g. "Beginner (9x9, 10 mines)".
func (g *Game) Title() string {
	board := g.boardFor(g.loadConfig())
	name := map[string]string{
		"beginner":     "Beginner",
		"intermediate": "Intermediate",
		"expert":       "Expert",
		"custom":       "Custom",
	}[g.difficulty]
	if name == "" {
		name = g.difficulty
	}
	return fmt.Sprintf("%s (%dx%d, %d mines)", name, board.Width, board.Height, board.Mines)
}

// loadConfig reads the configuration once per instance.
func (g *Game) loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if !g.loaded {
		g.rules = cfg.Rules
		g.loaded = true
	}
	return cfg
}

// boardFor resolves the board for this variant.
func (g *Game) boardFor(cfg config.Config) config.BoardConfig {
	if g.difficulty == "custom" {
		if customBoard != nil {
			return *customBoard
		}
		return cfg.Presets.Intermediate
	}
	if board, ok := cfg.Preset(g.difficulty); ok {
		return board
	}
	return cfg.Presets.Beginner
}

// LoadSave seeds the next Reset with a previously saved board.
func (g *Game) LoadSave(state minefield.SaveState) {
	s := state
	g.pendingSave = &s
}

// Save captures the in-progress board for the continue slot. Returns false
// when the board is untouched or finished.
func (g *Game) Save() (minefield.SaveState, bool) {
	if g.board == nil || g.board.Status() != minefield.InProgress {
		return minefield.SaveState{}, false
	}
	state := g.board.Save()
	state.ElapsedSeconds = g.elapsed()
	return state, true
}

// Reset initializes/restarts the game with a fresh or restored board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.elapsedBase = 0
	g.runningTicks = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	fileCfg := g.loadConfig()
	g.boardCfg = g.boardFor(fileCfg)

	if g.pendingSave != nil {
		state := *g.pendingSave
		g.pendingSave = nil
		if board, err := minefield.Restore(state, g.rng); err == nil {
			g.board = board
			g.boardCfg = config.BoardConfig{Width: board.Width(), Height: board.Height(), Mines: board.Mines()}
			g.elapsedBase = state.ElapsedSeconds
		}
	}
	if g.board == nil || g.board.Status().Finished() {
		board, err := minefield.New(g.boardCfg.Width, g.boardCfg.Height, g.boardCfg.Mines, g.rng)
		if err != nil {
			// The CLI validates custom boards; fall back to a preset that
			// always works rather than crash mid-session.
			g.boardCfg = config.Default().Presets.Beginner
			board, _ = minefield.New(g.boardCfg.Width, g.boardCfg.Height, g.boardCfg.Mines, g.rng)
		}
		board.SetSafeNeighborhood(g.rules.SafeFirstClick)
		g.board = board
	}

	g.cursorX = g.board.Width() / 2
	g.cursorY = g.board.Height() / 2
	g.layout()
}

// layout recomputes the board viewport and the too-small flag.
func (g *Game) layout() {
	boardW := (g.board.Width()-1)*cellSpacing + 1
	boardH := g.board.Height()

	requiredW := boardW + 2
	requiredH := boardH + g.hudHeight + 2 // HUD above, help line below
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = (g.screenW - boardW) / 2
	g.boardOffsetY = g.hudHeight + (g.screenH-g.hudHeight-1-boardH)/2
}

// HitTest maps a screen position to board coordinates.
func (g *Game) HitTest(sx, sy int) (int, int, bool) {
	if g.tooSmall {
		return 0, 0, false
	}
	y := sy - g.boardOffsetY
	dx := sx - g.boardOffsetX
	if dx < 0 || dx%cellSpacing != 0 {
		return 0, 0, false
	}
	x := dx / cellSpacing
	if x < 0 || x >= g.board.Width() || y < 0 || y >= g.board.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	status := g.board.Status()

	// Restart after game over
	if input.Has(core.ActionRestart) && status.Finished() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Pause toggle (timer freeze)
	if input.Has(core.ActionPause) && !status.Finished() {
		g.paused = !g.paused
	}

	if status.Finished() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Advance the clock only while a board is actually in play.
	if g.board.Status() == minefield.InProgress && !g.paused {
		g.runningTicks++
	}

	return core.StepResult{State: g.State()}
}

// processInput applies cursor movement and at most one board operation.
func (g *Game) processInput(input core.InputFrame) {
	// Mouse input moves the cursor to the pointed cell first.
	if input.HasPointer {
		if x, y, ok := g.HitTest(input.Pointer.X, input.Pointer.Y); ok {
			g.cursorX = x
			g.cursorY = y
		} else if input.Has(core.ActionReveal) || input.Has(core.ActionFlag) {
			// Click outside the board does nothing.
			return
		}
	}

	switch {
	case input.Has(core.ActionUp):
		g.cursorY = core.Clamp(g.cursorY-1, 0, g.board.Height()-1)
	case input.Has(core.ActionDown):
		g.cursorY = core.Clamp(g.cursorY+1, 0, g.board.Height()-1)
	case input.Has(core.ActionLeft):
		g.cursorX = core.Clamp(g.cursorX-1, 0, g.board.Width()-1)
	case input.Has(core.ActionRight):
		g.cursorX = core.Clamp(g.cursorX+1, 0, g.board.Width()-1)
	}

	switch {
	case input.Has(core.ActionReveal):
		g.reveal(g.cursorX, g.cursorY)
	case input.Has(core.ActionFlag):
		g.board.ToggleFlag(g.cursorX, g.cursorY)
	case input.Has(core.ActionChord):
		if g.rules.Chording {
			g.board.Chord(g.cursorX, g.cursorY)
		}
	}
}

// reveal opens a hidden cell, or chords when aimed at a revealed number.
func (g *Game) reveal(x, y int) {
	cell, ok := g.board.Cell(x, y)
	if !ok {
		return
	}
	if cell.State == minefield.Revealed && cell.Adjacent > 0 && g.rules.Chording {
		g.board.Chord(x, y)
		return
	}
	g.board.Reveal(x, y)
}

// elapsed returns whole seconds of play time.
func (g *Game) elapsed() int {
	return g.elapsedBase + g.runningTicks/g.tickRate
}

// State returns the current platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		ElapsedSeconds: g.elapsed(),
		MinesLeft:      g.board.MinesLeft(),
		Won:            g.board.Status() == minefield.Won,
		Lost:           g.board.Status() == minefield.Lost,
		Paused:         g.paused,
	}
}

// SetBestSeconds sets the recorded best win time shown on the win overlay.
func (g *Game) SetBestSeconds(seconds int) {
	g.bestSeconds = seconds
}

// Board exposes the underlying board for tests and the platform status bar.
func (g *Game) Board() *minefield.Board {
	return g.board
}
