package config

import (
	_ "embed"
)

//go:embed defaults/blockshoot.yaml
var defaultBlockShootYAML []byte

// Default returns the built-in Block Shoot configuration.
func Default() BlockShootConfig {
	return BlockShootConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 8,
			Speed:  700,
			StartX: 400,
			StartY: 400,
		},
		Paddle: PaddleConfig{
			Width:    60,
			Height:   10,
			Y:        500,
			Steering: 10,
		},
		Bricks: BricksConfig{
			Columns: 20,
			Rows:    5,
			Width:   40,
			Height:  20,
			Top:     60,
			Points:  10,
		},
		Item: ItemConfig{
			Radius:  30,
			Speed:   200,
			Slots:   7, // x = 0, 100, ..., 600
			Spacing: 100,
		},
		Gameplay: GameplayConfig{
			TimeLimit:     121,
			EventInterval: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockShootYAML
}
