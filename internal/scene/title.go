package scene

import "github.com/vovakirdan/blockshoot/internal/core"

// Title is the start screen. Entering it resets the score.
type Title struct {
	menu
	bounds core.RectF
}

// NewTitle builds the title scene.
func NewTitle(ctx *Context) Scene {
	ctx.Score().Reset()
	bounds := fieldBounds(ctx)
	return &Title{
		menu:   newMenu(bounds, "Go to Game", StateGame),
		bounds: bounds,
	}
}

func (t *Title) Update(ctx *Context, in core.InputFrame, dt float64) {
	t.update(ctx, in, dt)
}

func (t *Title) Draw(c Canvas) {
	center := t.bounds.Center()
	c.TextCentered(center.X, center.Y-80, "Block Shoot!!", core.ColorInk)
	t.draw(c, core.ColorCrimson)
}

func fieldBounds(ctx *Context) core.RectF {
	cfg := ctx.Config()
	return core.RectF{W: cfg.Screen.Width, H: cfg.Screen.Height}
}
