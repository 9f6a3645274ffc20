// Package config provides YAML-based configuration loading for the snake game.
// All values are fixed at startup; nothing here is reconfigured at runtime.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
	Food   FoodConfig   `yaml:"food"`
	Seed   int64        `yaml:"seed"` // 0 = seed from the clock
}

// GridConfig defines the playfield.
type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per cell, rendering only
}

// SnakeConfig defines the canonical starting chain.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the simulation and render clocks.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
	FrameRate      int `yaml:"frame_rate"`
}

// InputConfig defines the per-frame command queue.
type InputConfig struct {
	QueueCapacity int `yaml:"queue_capacity"`
}

// FoodConfig defines food placement limits.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// TickInterval returns the simulation period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// FrameInterval returns the render period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.FrameRate)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 2 || c.Grid.Height < 2:
		return fmt.Errorf("config: grid %dx%d too small: %w", c.Grid.Width, c.Grid.Height, ErrInvalidConfig)
	case c.Grid.CellWidth < 1 || c.Grid.CellWidth > 4:
		return fmt.Errorf("config: cell_width %d not in [1, 4]: %w", c.Grid.CellWidth, ErrInvalidConfig)
	case c.Snake.InitialLength < 1:
		return fmt.Errorf("config: initial_length %d must be positive: %w", c.Snake.InitialLength, ErrInvalidConfig)
	case c.Snake.InitialLength > c.Grid.Width/2+1:
		// The starting chain extends left from the center cell.
		return fmt.Errorf("config: initial_length %d does not fit left of center on a %d-wide grid: %w",
			c.Snake.InitialLength, c.Grid.Width, ErrInvalidConfig)
	case c.Timing.TickIntervalMS <= 0:
		return fmt.Errorf("config: tick_interval_ms %d must be positive: %w", c.Timing.TickIntervalMS, ErrInvalidConfig)
	case c.Timing.FrameRate <= 0 || c.Timing.FrameRate > 240:
		return fmt.Errorf("config: frame_rate %d not in [1, 240]: %w", c.Timing.FrameRate, ErrInvalidConfig)
	case c.Input.QueueCapacity <= 0:
		return fmt.Errorf("config: queue_capacity %d must be positive: %w", c.Input.QueueCapacity, ErrInvalidConfig)
	case c.Food.MaxAttempts <= 0:
		return fmt.Errorf("config: max_attempts %d must be positive: %w", c.Food.MaxAttempts, ErrInvalidConfig)
	}
	return nil
}
