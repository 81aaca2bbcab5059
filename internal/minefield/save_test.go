package minefield

import (
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	b := newTestBoard(t, 16, 16, 40, 77)
	b.Reveal(8, 8)
	b.ToggleFlag(0, 0)
	b.ToggleFlag(15, 15)

	state := b.Save()
	state.ElapsedSeconds = 42

	// Through the same encoding the storage layer uses.
	data, err := yaml.Marshal(state)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	var decoded SaveState
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if decoded.ElapsedSeconds != 42 {
		t.Errorf("ElapsedSeconds = %d, want 42", decoded.ElapsedSeconds)
	}

	restored, err := Restore(decoded, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Status() != InProgress {
		t.Errorf("restored status = %v, want InProgress", restored.Status())
	}
	if restored.Flags() != b.Flags() {
		t.Errorf("restored flags = %d, want %d", restored.Flags(), b.Flags())
	}
	if restored.MinesLeft() != b.MinesLeft() {
		t.Errorf("restored MinesLeft = %d, want %d", restored.MinesLeft(), b.MinesLeft())
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			orig, _ := b.Cell(x, y)
			got, _ := restored.Cell(x, y)
			if got.Mine != orig.Mine || got.State != orig.State || got.Adjacent != orig.Adjacent {
				t.Fatalf("cell (%d, %d) mismatch: got %+v, want %+v", x, y, got, orig)
			}
		}
	}
}

func TestRestoreUngeneratedBoard(t *testing.T) {
	b := newTestBoard(t, 9, 9, 10, 5)
	state := b.Save()

	restored, err := Restore(state, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Status() != NotStarted {
		t.Errorf("status = %v, want NotStarted for an ungenerated save", restored.Status())
	}

	// First reveal still honors the safe first click.
	restored.Reveal(4, 4)
	if restored.Status() == Lost {
		t.Error("first reveal on a restored fresh board lost the game")
	}
}

func TestRestoreRejectsCorruptSaves(t *testing.T) {
	base := newTestBoard(t, 9, 9, 10, 3)
	base.Reveal(4, 4)

	tests := []struct {
		name   string
		mutate func(*SaveState)
	}{
		{"missing row", func(s *SaveState) { s.Rows = s.Rows[:len(s.Rows)-1] }},
		{"short row", func(s *SaveState) { s.Rows[0] = s.Rows[0][:3] }},
		{"unknown cell", func(s *SaveState) { s.Rows[0] = "x" + s.Rows[0][1:] }},
		{"wrong mine count", func(s *SaveState) { s.Mines = 11 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := base.Save()
			rows := make([]string, len(state.Rows))
			copy(rows, state.Rows)
			state.Rows = rows
			tc.mutate(&state)

			if _, err := Restore(state, rand.New(rand.NewSource(1))); err == nil {
				t.Error("Restore should reject a corrupt save")
			}
		})
	}
}
