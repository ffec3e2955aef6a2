// Package game implements the Block Shoot simulation: the ball, the brick
// grid, the paddle, the stretch item and the round that composes them.
// It has no rendering or audio dependencies; a round is advanced with an
// explicit pointer x and a time step in seconds.
package game

import (
	"errors"

	"github.com/vovakirdan/blockshoot/internal/core"
)

// ErrZeroVelocity is returned when a velocity with no direction is assigned.
var ErrZeroVelocity = errors.New("game: zero velocity has no direction")

// Reflection masks multiplied component-wise into the ball velocity.
var (
	ReflectVertical   = core.Vec2{X: 1, Y: -1}
	ReflectHorizontal = core.Vec2{X: -1, Y: 1}
)

// Ball is a circle moving at a constant speed.
type Ball struct {
	pos    core.Vec2
	vel    core.Vec2
	radius float64
	speed  float64
}

// NewBall creates a ball at pos moving straight up at the given speed.
func NewBall(pos core.Vec2, radius, speed float64) *Ball {
	return &Ball{
		pos:    pos,
		vel:    core.Vec2{X: 0, Y: -speed},
		radius: radius,
		speed:  speed,
	}
}

// Update moves the ball by velocity * dt.
func (b *Ball) Update(dt float64) {
	b.pos = b.pos.Add(b.vel.Scale(dt))
}

// Reflect multiplies the velocity by mask. Reflections compose.
func (b *Ball) Reflect(mask core.Vec2) {
	b.vel = b.vel.Mul(mask)
}

// SetVelocity sets the direction of v, rescaled to the ball's speed.
// A zero vector leaves the current velocity unchanged.
func (b *Ball) SetVelocity(v core.Vec2) error {
	scaled, ok := v.WithLength(b.speed)
	if !ok {
		return ErrZeroVelocity
	}
	b.vel = scaled
	return nil
}

// Circle returns the ball's current shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.pos.X, Y: b.pos.Y, R: b.radius}
}

// Velocity returns the current velocity.
func (b *Ball) Velocity() core.Vec2 {
	return b.vel
}

// Position returns the center of the ball.
func (b *Ball) Position() core.Vec2 {
	return b.pos
}
