package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			CanvasWidth:  400,
			CanvasHeight: 400,
			Box:          20,
			Wrap:         true,
		},
		Speed: SnakeSpeed{
			StepMs: 5,
			MinMs:  50,
		},
		Start: SnakeStart{
			X:         9,
			Y:         9,
			Direction: "right",
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyNormal,
			Presets: map[DifficultyPreset]int{
				DifficultyEasy:   200,
				DifficultyNormal: 150,
				DifficultyHard:   100,
			},
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.35,
			SFXVolume:   0.6,
		},
	}
}

// DefaultSnakeYAML returns the embedded default YAML.
func DefaultSnakeYAML() []byte {
	return defaultSnakeYAML
}
