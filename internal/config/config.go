// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	GridCount    int         `yaml:"grid_count"` // Parsed, but the game always uses 20
	TickMS       int         `yaml:"tick_ms"`
	GameOverText string      `yaml:"game_over_text"`
	Colors       SnakeColors `yaml:"colors"`
}

// SnakeColors names the colors used by the Snake game.
type SnakeColors struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
	Text  string `yaml:"text"`
}

// TickDelay returns the fixed delay between snake ticks.
func (c SnakeConfig) TickDelay() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks that the config is usable.
func (c SnakeConfig) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("config: snake tick_ms must be positive, got %d", c.TickMS)
	}
	for field, name := range map[string]string{
		"snake": c.Colors.Snake,
		"food":  c.Colors.Food,
		"text":  c.Colors.Text,
	} {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("config: snake colors.%s: %w", field, err)
		}
	}
	return nil
}

// MinTetrisGridCount is the narrowest board that fits every tetromino.
const MinTetrisGridCount = 4

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	GridCount int          `yaml:"grid_count"`
	DropMS    int          `yaml:"drop_ms"`
	Colors    TetrisColors `yaml:"colors"`
}

// TetrisColors names the colors used by the Tetris game.
type TetrisColors struct {
	Shape string `yaml:"shape"`
}

// DropDelay returns the fixed delay between drops.
func (c TetrisConfig) DropDelay() time.Duration {
	return time.Duration(c.DropMS) * time.Millisecond
}

// Validate checks that the config is usable.
func (c TetrisConfig) Validate() error {
	if c.DropMS <= 0 {
		return fmt.Errorf("config: tetris drop_ms must be positive, got %d", c.DropMS)
	}
	if c.GridCount < MinTetrisGridCount {
		return fmt.Errorf("config: tetris grid_count must be at least %d, got %d", MinTetrisGridCount, c.GridCount)
	}
	if _, err := core.ParseColor(c.Colors.Shape); err != nil {
		return fmt.Errorf("config: tetris colors.shape: %w", err)
	}
	return nil
}
