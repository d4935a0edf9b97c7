// Package config provides YAML-based configuration loading and speed
// presets for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
}

// GridConfig defines the board size in board units.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines where the starting snake's tail is placed.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines tick cadence and the game-over pause.
type TimingConfig struct {
	MovingPeriod float64       `yaml:"moving_period"` // Moves per second
	RestartDelay time.Duration `yaml:"restart_delay"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// MovingPeriodForPreset returns the moves per second for a speed preset.
// Unknown presets return 0.
func MovingPeriodForPreset(preset SpeedPreset) float64 {
	switch preset {
	case SpeedEasy:
		return 6
	case SpeedNormal:
		return 10
	case SpeedHard:
		return 15
	default:
		return 0
	}
}

// TickInterval returns the time between two moves.
func (c SnakeConfig) TickInterval() time.Duration {
	if c.Timing.MovingPeriod <= 0 {
		return time.Second / 10
	}
	return time.Duration(float64(time.Second) / c.Timing.MovingPeriod)
}
