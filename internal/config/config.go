// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned (wrapped) by SnakeConfig.Validate.
var (
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInvalidSpeed      = errors.New("invalid speed")
	ErrInvalidStart      = errors.New("invalid start")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidAudio      = errors.New("invalid audio")
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Speed      SnakeSpeed       `yaml:"speed"`
	Start      SnakeStart       `yaml:"start"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// SnakeBoard defines the canvas and grid geometry.
type SnakeBoard struct {
	CanvasWidth  int  `yaml:"canvas_width"`
	CanvasHeight int  `yaml:"canvas_height"`
	Box          int  `yaml:"box"`
	Wrap         bool `yaml:"wrap"`
}

// Cols returns the number of grid columns.
func (b SnakeBoard) Cols() int {
	return b.CanvasWidth / b.Box
}

// Rows returns the number of grid rows.
func (b SnakeBoard) Rows() int {
	return b.CanvasHeight / b.Box
}

// SnakeSpeed defines the linear speed-up applied per food eaten.
type SnakeSpeed struct {
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// Step returns the interval reduction per food.
func (s SnakeSpeed) Step() time.Duration {
	return time.Duration(s.StepMs) * time.Millisecond
}

// Min returns the interval floor.
func (s SnakeSpeed) Min() time.Duration {
	return time.Duration(s.MinMs) * time.Millisecond
}

// SnakeStart defines where a new snake spawns.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // left, up, right or down
}

// DifficultyConfig maps difficulty presets to starting tick intervals.
type DifficultyConfig struct {
	Default DifficultyPreset         `yaml:"default"`
	Presets map[DifficultyPreset]int `yaml:"presets"` // milliseconds
}

// AudioConfig defines volumes for music and sound effects.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.Box <= 0 || b.CanvasWidth <= 0 || b.CanvasHeight <= 0 {
		return fmt.Errorf("config: %w: box and canvas sizes must be positive", ErrInvalidBoard)
	}
	if b.CanvasWidth%b.Box != 0 || b.CanvasHeight%b.Box != 0 {
		return fmt.Errorf("config: %w: canvas %dx%d is not a multiple of box %d",
			ErrInvalidBoard, b.CanvasWidth, b.CanvasHeight, b.Box)
	}
	if b.Cols()*b.Rows() < 2 {
		return fmt.Errorf("config: %w: board needs at least two cells", ErrInvalidBoard)
	}

	if c.Speed.StepMs < 0 || c.Speed.MinMs <= 0 {
		return fmt.Errorf("config: %w: step_ms must be >= 0 and min_ms > 0", ErrInvalidSpeed)
	}

	s := c.Start
	if s.X < 0 || s.X >= b.Cols() || s.Y < 0 || s.Y >= b.Rows() {
		return fmt.Errorf("config: %w: cell (%d, %d) is off the %dx%d board",
			ErrInvalidStart, s.X, s.Y, b.Cols(), b.Rows())
	}
	switch s.Direction {
	case "left", "up", "right", "down":
	default:
		return fmt.Errorf("config: %w: direction %q", ErrInvalidStart, s.Direction)
	}

	if len(c.Difficulty.Presets) == 0 {
		return fmt.Errorf("config: %w: no presets defined", ErrUnknownDifficulty)
	}
	for name, ms := range c.Difficulty.Presets {
		if ms <= 0 {
			return fmt.Errorf("config: %w: preset %q has interval %dms", ErrInvalidSpeed, name, ms)
		}
	}
	if _, ok := c.Difficulty.Presets[c.Difficulty.Default]; !ok {
		return fmt.Errorf("config: %w: default %q", ErrUnknownDifficulty, c.Difficulty.Default)
	}

	a := c.Audio
	if a.MusicVolume < 0 || a.MusicVolume > 1 || a.SFXVolume < 0 || a.SFXVolume > 1 {
		return fmt.Errorf("config: %w: volumes must be within [0, 1]", ErrInvalidAudio)
	}
	return nil
}
