package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  600,
			Height: 600,
		},
		Spawn: SpawnConfig{
			X: 50,
			Y: 50,
		},
		Timing: TimingConfig{
			MovingPeriod: 10,
			RestartDelay: 2 * time.Second,
		},
		Food: FoodConfig{
			MaxAttempts: 64,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
