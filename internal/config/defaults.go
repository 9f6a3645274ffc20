package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
// It matches defaults/snake.yaml and is the base every loaded file is merged onto.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:     30,
			Height:    30,
			CellWidth: 2,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
		},
		Timing: TimingConfig{
			TickIntervalMS: 80,
			FrameRate:      60,
		},
		Input: InputConfig{
			QueueCapacity: 16,
		},
		Food: FoodConfig{
			MaxAttempts: 64,
		},
		Seed: 0,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
