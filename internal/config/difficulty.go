package config

import (
	"fmt"
	"sort"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartInterval returns the starting tick interval for a preset.
// An empty preset selects the configured default.
func (c SnakeConfig) StartInterval(preset DifficultyPreset) (time.Duration, error) {
	if preset == "" {
		preset = c.Difficulty.Default
	}
	ms, ok := c.Difficulty.Presets[preset]
	if !ok {
		return 0, fmt.Errorf("config: %w: %q", ErrUnknownDifficulty, preset)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Preset pairs a difficulty name with its starting interval.
type Preset struct {
	Name     DifficultyPreset
	Interval time.Duration
}

// Presets returns the configured presets ordered from slowest to fastest.
func (c SnakeConfig) Presets() []Preset {
	result := make([]Preset, 0, len(c.Difficulty.Presets))
	for name, ms := range c.Difficulty.Presets {
		result = append(result, Preset{
			Name:     name,
			Interval: time.Duration(ms) * time.Millisecond,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Interval != result[j].Interval {
			return result[i].Interval > result[j].Interval
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// NextInterval returns the tick interval after one more food is eaten:
// one step faster, never below the floor. An interval already at or below
// the floor is left unchanged.
func (s SnakeSpeed) NextInterval(current time.Duration) time.Duration {
	if current <= s.Min() {
		return current
	}
	return max(current-s.Step(), s.Min())
}
