// Package config provides YAML-based game configuration loading and
// difficulty presets for Block Shoot.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// BlockShootConfig contains all configuration for a Block Shoot round.
type BlockShootConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Item     ItemConfig     `yaml:"item"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ScreenConfig defines the play field size in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's size, speed and starting position.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Units per second, constant for the whole round
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PaddleConfig defines the paddle's base size and deflection.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Y        float64 `yaml:"y"`        // Vertical center
	Steering float64 `yaml:"steering"` // Horizontal offset multiplier on bounce
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Top     float64 `yaml:"top"` // y of the first row
	Points  uint32  `yaml:"points"`
}

// ItemConfig defines the stretch item.
type ItemConfig struct {
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	Slots   int     `yaml:"slots"`   // Number of spawn columns
	Spacing float64 `yaml:"spacing"` // Distance between spawn columns
}

// GameplayConfig defines round timing.
type GameplayConfig struct {
	TimeLimit     float64 `yaml:"time_limit"`     // Seconds
	EventInterval float64 `yaml:"event_interval"` // Seconds between item toggles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks that sizes, speeds and timings are usable.
func (c BlockShootConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("item.radius", c.Item.Radius)
	positive("item.speed", c.Item.Speed)
	positive("gameplay.time_limit", c.Gameplay.TimeLimit)
	positive("gameplay.event_interval", c.Gameplay.EventInterval)

	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Item.Slots <= 0 {
		errs = append(errs, fmt.Errorf("item.slots must be positive, got %d", c.Item.Slots))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
