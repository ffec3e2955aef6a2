package game

import (
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// Brick is one cell of the grid.
type Brick struct {
	Rect  core.RectF
	Alive bool
}

// ScoreSink receives points for destroyed bricks.
type ScoreSink interface {
	AddScore(points uint32)
}

// Bricks is the fixed brick grid.
type Bricks struct {
	bricks    []Brick
	remaining int
	points    uint32
}

// NewBricks lays out a full grid in row-major order.
func NewBricks(cfg config.BricksConfig) *Bricks {
	b := &Bricks{
		bricks: make([]Brick, 0, cfg.Columns*cfg.Rows),
		points: cfg.Points,
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			b.bricks = append(b.bricks, Brick{
				Rect: core.RectF{
					X: float64(col) * cfg.Width,
					Y: cfg.Top + float64(row)*cfg.Height,
					W: cfg.Width,
					H: cfg.Height,
				},
				Alive: true,
			})
		}
	}
	b.remaining = len(b.bricks)
	return b
}

// Intersects resolves at most one collision between the ball and an alive
// brick, scanning in row-major order. The ball reflects vertically when it
// touches the brick's top or bottom edge and horizontally otherwise.
// It returns true if a brick was destroyed.
func (b *Bricks) Intersects(ball *Ball, sink ScoreSink) bool {
	if ball == nil {
		return false
	}

	c := ball.Circle()
	for i := range b.bricks {
		brick := &b.bricks[i]
		if !brick.Alive || !c.IntersectsRect(brick.Rect) {
			continue
		}

		if c.IntersectsSegment(brick.Rect.BottomEdge()) || c.IntersectsSegment(brick.Rect.TopEdge()) {
			ball.Reflect(ReflectVertical)
		} else {
			ball.Reflect(ReflectHorizontal)
		}

		if sink != nil {
			sink.AddScore(b.points)
		}
		brick.Alive = false
		b.remaining--
		return true
	}
	return false
}

// Remaining returns the number of alive bricks.
func (b *Bricks) Remaining() int {
	return b.remaining
}

// Bricks returns the grid in row-major order. Callers must not modify it.
func (b *Bricks) Bricks() []Brick {
	return b.bricks
}
