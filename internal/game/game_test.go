package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// newTestGame creates a game pinned to the default config so tests are not
// affected by files in the user's home directory.
func newTestGame(t *testing.T, difficulty string, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	prev := configPath
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath(prev) })

	g := New(difficulty)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 30})
	return g
}

func stepWith(g *Game, actions ...core.Action) {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	g.Step(input)
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"beginner", "intermediate", "expert", "custom"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
}

func TestTitle(t *testing.T) {
	g := newTestGame(t, "beginner", 1)
	if got := g.Title(); got != "Beginner (9x9, 10 mines)" {
		t.Errorf("Title() = %q", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical
	// snapshots.
	run := func() Snapshot {
		g := newTestGame(t, "intermediate", 777)
		input := core.NewInputFrame()
		for i := 0; i < 200; i++ {
			input.Clear()
			switch i {
			case 5:
				input.Set(core.ActionReveal)
			case 20:
				input.Set(core.ActionRight)
			case 21:
				input.Set(core.ActionDown)
			case 22:
				input.Set(core.ActionFlag)
			case 60:
				input.Set(core.ActionUp)
			case 61:
				input.Set(core.ActionReveal)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1 != snap2 {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	g := newTestGame(t, "beginner", 1)
	for i := 0; i < 20; i++ {
		stepWith(g, core.ActionLeft)
		stepWith(g, core.ActionUp)
	}
	snap := g.Snapshot()
	if snap.CursorX != 0 || snap.CursorY != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", snap.CursorX, snap.CursorY)
	}
	for i := 0; i < 20; i++ {
		stepWith(g, core.ActionRight)
		stepWith(g, core.ActionDown)
	}
	snap = g.Snapshot()
	if snap.CursorX != 8 || snap.CursorY != 8 {
		t.Errorf("cursor = (%d,%d), want (8,8)", snap.CursorX, snap.CursorY)
	}
}

func TestRevealStartsGameAndTimer(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	if g.Board().Status() != minefield.NotStarted {
		t.Fatalf("status = %v before first reveal", g.Board().Status())
	}

	stepWith(g, core.ActionReveal)
	if g.Board().Status() != minefield.InProgress {
		t.Fatalf("status = %v after first reveal", g.Board().Status())
	}
	if g.Snapshot().Revealed == 0 {
		t.Error("nothing revealed")
	}

	// Three seconds at 30 ticks per second.
	for i := 0; i < 90; i++ {
		stepWith(g)
	}
	if got := g.State().ElapsedSeconds; got != 3 {
		t.Errorf("ElapsedSeconds = %d, want 3", got)
	}
}

func TestTimerIdleBeforeFirstReveal(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	for i := 0; i < 120; i++ {
		stepWith(g)
	}
	if got := g.State().ElapsedSeconds; got != 0 {
		t.Errorf("ElapsedSeconds = %d before first reveal, want 0", got)
	}
}

func TestPauseFreezesTimer(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	stepWith(g, core.ActionReveal)
	for i := 0; i < 60; i++ {
		stepWith(g)
	}
	before := g.State().ElapsedSeconds

	stepWith(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("not paused")
	}
	for i := 0; i < 120; i++ {
		stepWith(g)
	}
	if got := g.State().ElapsedSeconds; got != before {
		t.Errorf("ElapsedSeconds advanced while paused: %d -> %d", before, got)
	}

	// Board operations are ignored while paused.
	revealed := g.Snapshot().Revealed
	stepWith(g, core.ActionFlag)
	if g.Snapshot().Flags != 0 {
		t.Error("flag placed while paused")
	}
	if g.Snapshot().Revealed != revealed {
		t.Error("reveal count changed while paused")
	}

	stepWith(g, core.ActionPause)
	if g.State().Paused {
		t.Fatal("still paused after toggle")
	}
}

func TestFlagUpdatesMinesLeft(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	stepWith(g, core.ActionFlag)
	state := g.State()
	if state.MinesLeft != 9 {
		t.Errorf("MinesLeft = %d after one flag, want 9", state.MinesLeft)
	}
	if g.Board().Status() != minefield.NotStarted {
		t.Error("flag placed mines")
	}
	stepWith(g, core.ActionFlag)
	if got := g.State().MinesLeft; got != 10 {
		t.Errorf("MinesLeft = %d after unflag, want 10", got)
	}
}

// loseGame reveals cells until the board is lost.
func loseGame(t *testing.T, g *Game) {
	t.Helper()
	b := g.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			b.Reveal(x, y)
			if b.Status() == minefield.Lost {
				return
			}
		}
	}
	t.Skip("board won without hitting a mine")
}

func TestRestartAfterLoss(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	stepWith(g, core.ActionReveal)
	loseGame(t, g)
	if !g.State().Lost {
		t.Fatal("state not lost")
	}

	// Inputs other than restart are ignored on a finished board.
	stepWith(g, core.ActionFlag)
	if g.Snapshot().Flags != 0 {
		t.Error("flag placed after loss")
	}

	stepWith(g, core.ActionRestart)
	if g.Board().Status() != minefield.NotStarted {
		t.Errorf("status = %v after restart, want not_started", g.Board().Status())
	}
	if got := g.State().ElapsedSeconds; got != 0 {
		t.Errorf("ElapsedSeconds = %d after restart, want 0", got)
	}
}

func TestSaveAndRestore(t *testing.T) {
	g := newTestGame(t, "beginner", 42)

	if _, ok := g.Save(); ok {
		t.Error("Save() succeeded on an untouched board")
	}

	stepWith(g, core.ActionReveal)
	stepWith(g, core.ActionRight)
	stepWith(g, core.ActionFlag)
	for i := 0; i < 150; i++ {
		stepWith(g)
	}
	want := g.Snapshot()

	state, ok := g.Save()
	if !ok {
		t.Fatal("Save() failed on a board in progress")
	}
	if state.ElapsedSeconds != want.ElapsedSeconds {
		t.Errorf("saved elapsed = %d, want %d", state.ElapsedSeconds, want.ElapsedSeconds)
	}

	restored := New("beginner")
	restored.LoadSave(state)
	restored.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 30})

	got := restored.Snapshot()
	if got.Revealed != want.Revealed || got.Flags != want.Flags || got.MinesLeft != want.MinesLeft {
		t.Errorf("restored board mismatch: got %+v, want %+v", got, want)
	}
	if got.ElapsedSeconds != want.ElapsedSeconds {
		t.Errorf("restored elapsed = %d, want %d", got.ElapsedSeconds, want.ElapsedSeconds)
	}
	if got.Status != minefield.InProgress {
		t.Errorf("restored status = %v", got.Status)
	}
}

func TestCustomBoard(t *testing.T) {
	SetCustomBoard(config.BoardConfig{Width: 12, Height: 7, Mines: 15})
	t.Cleanup(func() { customBoard = nil })

	g := newTestGame(t, "custom", 3)
	if g.Board().Width() != 12 || g.Board().Height() != 7 || g.Board().Mines() != 15 {
		t.Errorf("board = %dx%d/%d", g.Board().Width(), g.Board().Height(), g.Board().Mines())
	}
	if got := g.Title(); got != "Custom (12x7, 15 mines)" {
		t.Errorf("Title() = %q", got)
	}
}

func TestRenderHUDAndBoard(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Beginner (9x9, 10 mines)") {
		t.Error("HUD missing title")
	}
	if !strings.Contains(out, "Mines  10") {
		t.Error("HUD missing mine counter")
	}
	if !strings.Contains(out, "Time 0:00") {
		t.Error("HUD missing timer")
	}
	if !strings.Contains(out, "f: flag") {
		t.Error("help line missing")
	}
	if got := strings.Count(out, "·"); got != 9*9 {
		t.Errorf("hidden glyph count = %d, want 81", got)
	}
}

func TestRenderOverlayOnLoss(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	stepWith(g, core.ActionReveal)
	loseGame(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Boom!") {
		t.Error("loss overlay missing")
	}
}

func TestPointerRevealAndFlag(t *testing.T) {
	g := newTestGame(t, "beginner", 42)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Find a hidden cell on screen and click it.
	sx, sy := -1, -1
	for y := 0; y < screen.Height() && sx < 0; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '·' {
				sx, sy = x, y
				break
			}
		}
	}
	if sx < 0 {
		t.Fatal("no hidden cell rendered")
	}

	input := core.NewInputFrame()
	input.SetPointer(sx, sy)
	input.Set(core.ActionReveal)
	g.Step(input)
	if g.Snapshot().Revealed == 0 {
		t.Error("pointer reveal did nothing")
	}

	// A click outside the board is ignored.
	before := g.Snapshot()
	input.Clear()
	input.SetPointer(0, screen.Height()-1)
	input.Set(core.ActionFlag)
	g.Step(input)
	after := g.Snapshot()
	if after.Flags != before.Flags || after.CursorX != before.CursorX || after.CursorY != before.CursorY {
		t.Error("click outside the board changed state")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New("expert")
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12, TickRate: 30})
	if !g.tooSmall {
		t.Fatal("expert board should not fit in 40x12")
	}

	stepWith(g, core.ActionReveal)
	if g.Snapshot().Revealed != 0 {
		t.Error("reveal applied while window too small")
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small notice missing")
	}

	// Growing the window during Render recovers.
	screen = core.NewScreen(80, 24)
	g.Render(screen)
	if g.tooSmall {
		t.Error("still too small after resize to 80x24")
	}
}
