package game

import (
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// Paddle is the player-controlled rectangle that follows the pointer.
type Paddle struct {
	rect      core.RectF
	baseWidth float64
	steering  float64
	expanded  bool
}

// NewPaddle creates a paddle at its base size centered on x.
func NewPaddle(cfg config.PaddleConfig, x float64) *Paddle {
	return &Paddle{
		rect:      core.RectFromCenter(x, cfg.Y, cfg.Width, cfg.Height),
		baseWidth: cfg.Width,
		steering:  cfg.Steering,
	}
}

// Update centers the paddle horizontally on pointerX.
func (p *Paddle) Update(pointerX float64) {
	p.rect.X = pointerX - p.rect.W/2
}

// Intersects bounces a descending ball off the paddle. The new direction
// depends on how far from the paddle center the ball hit.
// It returns true if the ball bounced.
func (p *Paddle) Intersects(ball *Ball) bool {
	if ball == nil {
		return false
	}

	v := ball.Velocity()
	c := ball.Circle()
	if v.Y <= 0 || !c.IntersectsRect(p.rect) {
		return false
	}

	dir := core.Vec2{X: (c.X - p.rect.Center().X) * p.steering, Y: -v.Y}
	return ball.SetVelocity(dir) == nil
}

// ExpandSize doubles the paddle width. It returns false and leaves the
// paddle unchanged when it is already expanded.
func (p *Paddle) ExpandSize() bool {
	if p.expanded {
		return false
	}
	p.rect.W = p.baseWidth * 2
	p.expanded = true
	return true
}

// InitSize restores the base width.
func (p *Paddle) InitSize() {
	p.rect.W = p.baseWidth
	p.expanded = false
}

// Rect returns the paddle rectangle.
func (p *Paddle) Rect() core.RectF {
	return p.rect
}

// Width returns the current width.
func (p *Paddle) Width() float64 {
	return p.rect.W
}

// Expanded reports whether the paddle is at double width.
func (p *Paddle) Expanded() bool {
	return p.expanded
}
