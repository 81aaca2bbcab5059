package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		isQuit bool
	}{
		{"up arrow", tea.KeyMsg(tea.Key{Type: tea.KeyUp}), core.ActionUp, false},
		{"wasd left", runeKey('a'), core.ActionLeft, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"space reveals", tea.KeyMsg(tea.Key{Type: tea.KeySpace}), core.ActionReveal, false},
		{"enter reveals", tea.KeyMsg(tea.Key{Type: tea.KeyEnter}), core.ActionReveal, false},
		{"f flags", runeKey('f'), core.ActionFlag, false},
		{"c chords", runeKey('c'), core.ActionChord, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg(tea.Key{Type: tea.KeyEsc}), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}), core.ActionQuit, true},
		{"unknown key ignored", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.action || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, isQuit, tt.action, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameIgnoresUnknown(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if isQuit := km.MapKeyToFrame(runeKey('z'), &frame); isQuit {
		t.Fatal("unknown key reported as quit")
	}
	for a := core.ActionNone; a <= core.ActionPause; a++ {
		if frame.Has(a) {
			t.Errorf("unknown key set action %v", a)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Has(core.ActionReveal) || !frame.HasPointer || frame.Pointer.X != 5 || frame.Pointer.Y != 3 {
		t.Errorf("left click frame = %+v", frame)
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if !frame.Has(core.ActionFlag) || !frame.HasPointer {
		t.Errorf("right click frame = %+v", frame)
	}

	// Motion events don't produce actions
	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame)
	if frame.HasPointer || frame.Has(core.ActionReveal) {
		t.Errorf("motion event frame = %+v", frame)
	}
}
