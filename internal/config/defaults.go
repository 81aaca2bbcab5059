package config

import (
	_ "embed"
)

//go:embed defaults/sweep.yaml
var defaultSweepYAML []byte

// Default returns the built-in configuration: classic Windows-style board
// presets with safe first click and chording enabled.
func Default() Config {
	return Config{
		Presets: PresetsConfig{
			Beginner:     BoardConfig{Width: 9, Height: 9, Mines: 10},
			Intermediate: BoardConfig{Width: 16, Height: 16, Mines: 40},
			Expert:       BoardConfig{Width: 30, Height: 16, Mines: 99},
		},
		Rules: RulesConfig{
			SafeFirstClick: true,
			Chording:       true,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSweepYAML
}
