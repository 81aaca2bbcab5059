package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

func TestDefaultPresets(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name  string
		w, h  int
		mines int
	}{
		{"beginner", 9, 9, 10},
		{"intermediate", 16, 16, 40},
		{"expert", 30, 16, 99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board, ok := cfg.Preset(tc.name)
			if !ok {
				t.Fatalf("Preset(%q) not found", tc.name)
			}
			if board.Width != tc.w || board.Height != tc.h || board.Mines != tc.mines {
				t.Errorf("Preset(%q) = %+v, want %dx%d with %d mines",
					tc.name, board, tc.w, tc.h, tc.mines)
			}
		})
	}

	if _, ok := cfg.Preset("nightmare"); ok {
		t.Error("unknown preset should not resolve")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestBoardValidation(t *testing.T) {
	tests := []struct {
		name    string
		board   BoardConfig
		wantErr bool
	}{
		{"beginner", BoardConfig{9, 9, 10}, false},
		{"too small", BoardConfig{1, 9, 1}, true},
		{"too wide", BoardConfig{100, 9, 10}, true},
		{"too tall", BoardConfig{9, 100, 10}, true},
		{"no mines", BoardConfig{9, 9, 0}, true},
		{"too many mines", BoardConfig{9, 9, 72}, true},
		{"dense but playable", BoardConfig{9, 9, 71}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.board.Validate()
			if tc.wantErr {
				if err == nil {
					t.Errorf("Validate(%+v) should fail", tc.board)
				} else if !errors.Is(err, minefield.ErrInvalidConfig) {
					t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Validate(%+v) failed: %v", tc.board, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	doc := `
presets:
  beginner:
    width: 8
    height: 8
    mines: 9
  intermediate:
    width: 16
    height: 16
    mines: 40
  expert:
    width: 30
    height: 16
    mines: 99
rules:
  safe_first_click: true
  chording: false
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	board, _ := cfg.Preset("beginner")
	if board.Width != 8 || board.Height != 8 || board.Mines != 9 {
		t.Errorf("custom beginner = %+v", board)
	}
	if cfg.Rules.Chording {
		t.Error("chording should be disabled by the custom config")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	doc := `
presets:
  beginner:
    width: 9
    height: 9
    mines: 80
  intermediate:
    width: 16
    height: 16
    mines: 40
  expert:
    width: 30
    height: 16
    mines: 99
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unplayable preset")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}
