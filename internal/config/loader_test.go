package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 900\ngameplay:\n  time_limit: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Speed != 900 {
		t.Errorf("Ball.Speed = %v, expected 900", cfg.Ball.Speed)
	}
	if cfg.Gameplay.TimeLimit != 30 {
		t.Errorf("Gameplay.TimeLimit = %v, expected 30", cfg.Gameplay.TimeLimit)
	}
	// Untouched keys keep their defaults
	if cfg.Bricks.Columns != 20 || cfg.Paddle.Width != 60 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ball: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should be package-prefixed, got %q", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		timeLimit float64
		speed     float64
		width     float64
	}{
		{DifficultyEasy, 181.5, 560, 80},
		{DifficultyNormal, 121, 700, 60},
		{DifficultyHard, 90.75, 840, 50},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if !near(cfg.Gameplay.TimeLimit, tc.timeLimit) {
				t.Errorf("TimeLimit = %v, expected %v", cfg.Gameplay.TimeLimit, tc.timeLimit)
			}
			if !near(cfg.Ball.Speed, tc.speed) {
				t.Errorf("Ball.Speed = %v, expected %v", cfg.Ball.Speed, tc.speed)
			}
			if !near(cfg.Paddle.Width, tc.width) {
				t.Errorf("Paddle.Width = %v, expected %v", cfg.Paddle.Width, tc.width)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockShootConfig)
	}{
		{"zero speed", func(c *BlockShootConfig) { c.Ball.Speed = 0 }},
		{"negative paddle", func(c *BlockShootConfig) { c.Paddle.Width = -1 }},
		{"empty grid", func(c *BlockShootConfig) { c.Bricks.Rows = 0 }},
		{"no slots", func(c *BlockShootConfig) { c.Item.Slots = 0 }},
		{"no interval", func(c *BlockShootConfig) { c.Gameplay.EventInterval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
