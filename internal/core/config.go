package core

// RuntimeConfig contains configuration passed to the platform layer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for item placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the simulated seconds per tick.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}
