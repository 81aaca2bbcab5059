// Package config provides YAML-based configuration loading for the
// minesweeper platform: board presets and gameplay rules.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

// Maximum board side length accepted from configuration. Keeps boards
// renderable and the flood-fill worklist bounded to a few thousand cells.
const MaxBoardSide = 99

// BoardConfig describes one playable board.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Validate checks that the board can produce a playable field with a
// guaranteed safe opening. Wraps minefield.ErrInvalidConfig so callers can
// match on the sentinel.
func (b BoardConfig) Validate() error {
	if b.Width < 2 || b.Height < 2 {
		return fmt.Errorf("%w: board %dx%d is too small", minefield.ErrInvalidConfig, b.Width, b.Height)
	}
	if b.Width > MaxBoardSide || b.Height > MaxBoardSide {
		return fmt.Errorf("%w: board %dx%d exceeds %dx%d", minefield.ErrInvalidConfig,
			b.Width, b.Height, MaxBoardSide, MaxBoardSide)
	}
	if b.Mines < 1 {
		return fmt.Errorf("%w: mine count %d must be positive", minefield.ErrInvalidConfig, b.Mines)
	}
	if b.Mines >= b.Width*b.Height-9 {
		return fmt.Errorf("%w: %d mines leave no safe opening on a %dx%d board",
			minefield.ErrInvalidConfig, b.Mines, b.Width, b.Height)
	}
	return nil
}

// PresetsConfig holds the standard difficulty boards.
type PresetsConfig struct {
	Beginner     BoardConfig `yaml:"beginner"`
	Intermediate BoardConfig `yaml:"intermediate"`
	Expert       BoardConfig `yaml:"expert"`
}

// RulesConfig holds gameplay rule toggles.
type RulesConfig struct {
	// SafeFirstClick protects the first revealed cell and its neighbors
	// from mines. When disabled only the clicked cell itself is protected.
	SafeFirstClick bool `yaml:"safe_first_click"`

	// Chording enables revealing around a satisfied number.
	Chording bool `yaml:"chording"`
}

// Config is the root configuration document.
type Config struct {
	Presets PresetsConfig `yaml:"presets"`
	Rules   RulesConfig   `yaml:"rules"`
}

// Preset returns the board for a named difficulty.
func (c Config) Preset(name string) (BoardConfig, bool) {
	switch name {
	case "beginner":
		return c.Presets.Beginner, true
	case "intermediate":
		return c.Presets.Intermediate, true
	case "expert":
		return c.Presets.Expert, true
	default:
		return BoardConfig{}, false
	}
}

// Validate checks every preset board.
func (c Config) Validate() error {
	for _, name := range []string{"beginner", "intermediate", "expert"} {
		board, _ := c.Preset(name)
		if err := board.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return nil
}
