// Package config provides YAML-based game configuration loading and
// difficulty management for the minigames.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ColorGridConfig contains all configuration for the Color Grid game.
type ColorGridConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Timer TimerConfig `yaml:"timer"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// TimerConfig defines the countdown in seconds.
type TimerConfig struct {
	Duration  int `yaml:"duration"`
	Min       int `yaml:"min"`
	Max       int `yaml:"max"`
	Step      int `yaml:"step"`
	CadenceMS int `yaml:"cadence_ms"`
}

// Seconds returns the countdown as a time.Duration.
func (t TimerConfig) Seconds() time.Duration {
	return time.Duration(t.Duration) * time.Second
}

// Cadence returns the countdown resolution as a time.Duration.
func (t TimerConfig) Cadence() time.Duration {
	return time.Duration(t.CadenceMS) * time.Millisecond
}

// Clamp restricts a duration in seconds to [Min, Max].
func (t TimerConfig) Clamp(seconds int) int {
	return max(t.Min, min(seconds, t.Max))
}

// Validate checks that the configuration can start a game.
func (c ColorGridConfig) Validate() error {
	if err := core.ValidateDimensions(c.Grid.Height, c.Grid.Width); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}

	t := c.Timer
	switch {
	case t.Min <= 0:
		return fmt.Errorf("%w: timer.min must be positive, got %d", ErrInvalidConfig, t.Min)
	case t.Max < t.Min:
		return fmt.Errorf("%w: timer.max %d below timer.min %d", ErrInvalidConfig, t.Max, t.Min)
	case t.Duration < t.Min || t.Duration > t.Max:
		return fmt.Errorf("%w: timer.duration %d not in [%d, %d]", ErrInvalidConfig, t.Duration, t.Min, t.Max)
	case t.Step <= 0:
		return fmt.Errorf("%w: timer.step must be positive, got %d", ErrInvalidConfig, t.Step)
	case t.CadenceMS <= 0:
		return fmt.Errorf("%w: timer.cadence_ms must be positive, got %d", ErrInvalidConfig, t.CadenceMS)
	}
	return nil
}

// Overrides holds command-line values that take precedence over the file.
// Zero fields are ignored.
type Overrides struct {
	Height int
	Width  int
	Timer  int
}

// Apply copies the non-zero overrides into cfg.
func (o Overrides) Apply(cfg *ColorGridConfig) {
	if o.Height != 0 {
		cfg.Grid.Height = o.Height
	}
	if o.Width != 0 {
		cfg.Grid.Width = o.Width
	}
	if o.Timer != 0 {
		cfg.Timer.Duration = o.Timer
	}
}
