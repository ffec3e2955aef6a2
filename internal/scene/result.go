package scene

import (
	"fmt"

	"github.com/vovakirdan/blockshoot/internal/core"
)

// Result shows the final score after a round; it serves both GameOver
// and Clear.
type Result struct {
	menu
	bounds  core.RectF
	heading string
	score   uint32
}

// NewGameOver builds the scene shown after a lost round.
func NewGameOver(ctx *Context) Scene {
	return newResult(ctx, "GameOver...")
}

// NewClear builds the scene shown after every brick is destroyed.
func NewClear(ctx *Context) Scene {
	return newResult(ctx, "Clear!!!!")
}

func newResult(ctx *Context, heading string) *Result {
	bounds := fieldBounds(ctx)
	return &Result{
		menu:    newMenu(bounds, "Back to Title", StateTitle),
		bounds:  bounds,
		heading: heading,
		score:   ctx.Score().Score(),
	}
}

func (r *Result) Update(ctx *Context, in core.InputFrame, dt float64) {
	r.update(ctx, in, dt)
}

func (r *Result) Draw(c Canvas) {
	center := r.bounds.Center()
	c.TextCentered(center.X, center.Y-120, r.heading, core.ColorCrimson)
	c.TextCentered(center.X, center.Y-40, fmt.Sprintf("Score:%d", r.score), core.ColorCrimson)
	r.draw(c, core.ColorInk)
}
