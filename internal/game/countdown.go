package game

import (
	"fmt"
	"math"
)

// Countdown tracks the remaining round time in simulated seconds.
type Countdown struct {
	limit   float64
	elapsed float64
}

// NewCountdown creates a countdown of limit seconds.
func NewCountdown(limit float64) *Countdown {
	return &Countdown{limit: limit}
}

// Advance consumes dt seconds.
func (c *Countdown) Advance(dt float64) {
	c.elapsed += dt
}

// ReachedZero reports whether the time is up.
func (c *Countdown) ReachedZero() bool {
	return c.elapsed >= c.limit
}

// Remaining returns the seconds left, never negative.
func (c *Countdown) Remaining() float64 {
	return math.Max(0, c.limit-c.elapsed)
}

// Elapsed returns the seconds consumed so far.
func (c *Countdown) Elapsed() float64 {
	return c.elapsed
}

// String formats the remaining time as M:SS, rounding partial seconds up.
func (c *Countdown) String() string {
	secs := int(math.Ceil(c.Remaining()))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
