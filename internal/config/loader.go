package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrUnknownPreset is returned by ApplyPreset for names it does not know.
var ErrUnknownPreset = errors.New("unknown speed preset")

// Load loads Snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate checks that the board satisfies the engine's preconditions.
func (c SnakeConfig) Validate() error {
	if c.Timing.MovingPeriod <= 0 {
		return fmt.Errorf("moving_period must be positive, got %v", c.Timing.MovingPeriod)
	}
	if c.Timing.RestartDelay < time.Millisecond {
		return fmt.Errorf("restart_delay must be at least 1ms, got %v (missing unit?)", c.Timing.RestartDelay)
	}
	if c.Food.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.Food.MaxAttempts)
	}
	return c.Settings(0).Validate()
}

// Settings converts the configuration to engine settings with the given seed.
func (c SnakeConfig) Settings(seed int64) snake.Settings {
	return snake.Settings{
		Width:                c.Grid.Width,
		Height:               c.Grid.Height,
		SpawnX:               c.Spawn.X,
		SpawnY:               c.Spawn.Y,
		RestartDelay:         c.Timing.RestartDelay,
		MaxPlacementAttempts: c.Food.MaxAttempts,
		Seed:                 seed,
	}
}

// ApplyPreset modifies the config based on a speed preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	period := MovingPeriodForPreset(preset)
	if period == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	cfg.Timing.MovingPeriod = period
	return nil
}

// Marshal renders the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
