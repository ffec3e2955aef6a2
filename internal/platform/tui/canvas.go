package tui

import (
	"math"

	"github.com/vovakirdan/blockshoot/internal/core"
)

// ScreenCanvas draws world-unit shapes into a cell screen, scaling the world
// to whatever size the terminal currently has.
type ScreenCanvas struct {
	screen *core.Screen
	world  core.RectF
}

// NewScreenCanvas creates a canvas mapping world onto s.
func NewScreenCanvas(s *core.Screen, world core.RectF) *ScreenCanvas {
	return &ScreenCanvas{screen: s, world: world}
}

// Bounds returns the world area.
func (c *ScreenCanvas) Bounds() core.RectF {
	return c.world
}

// scale returns cells per world unit on each axis.
func (c *ScreenCanvas) scale() (sx, sy float64) {
	if c.world.W <= 0 || c.world.H <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.world.W, float64(c.screen.Height()) / c.world.H
}

// cellRect converts a world rectangle to cells. Non-empty input always
// covers at least one cell.
func (c *ScreenCanvas) cellRect(r core.RectF) core.Rect {
	sx, sy := c.scale()
	x0 := int(math.Round((r.X - c.world.X) * sx))
	x1 := int(math.Round((r.Right() - c.world.X) * sx))
	y0 := int(math.Round((r.Y - c.world.Y) * sy))
	y1 := int(math.Round((r.Bottom() - c.world.Y) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// cell converts a world point to the cell containing it.
func (c *ScreenCanvas) cell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor((x - c.world.X) * sx)), int(math.Floor((y - c.world.Y) * sy))
}

// ToWorld returns the world position of the center of cell (col, row).
func (c *ScreenCanvas) ToWorld(col, row int) core.Vec2 {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return c.world.Center()
	}
	return core.Vec2{
		X: c.world.X + (float64(col)+0.5)/sx,
		Y: c.world.Y + (float64(row)+0.5)/sy,
	}
}

// shade picks a block rune for an opacity. Zero draws nothing.
func shade(alpha float64) (rune, bool) {
	switch {
	case alpha <= 0:
		return 0, false
	case alpha < 1.0/3:
		return '░', true
	case alpha < 2.0/3:
		return '▒', true
	case alpha < 1:
		return '▓', true
	default:
		return '█', true
	}
}

// FillRect fills r with a block shade matching alpha.
func (c *ScreenCanvas) FillRect(r core.RectF, col core.Color, alpha float64) {
	fill, ok := shade(alpha)
	if !ok {
		return
	}
	c.screen.DrawRect(c.cellRect(r), fill, col)
}

// FrameRect outlines r with box-drawing characters.
func (c *ScreenCanvas) FrameRect(r core.RectF, col core.Color) {
	c.screen.DrawBox(c.cellRect(r), col)
}

// FillCircle fills every cell whose center lies inside the circle. Circles
// smaller than a cell are drawn as a single dot.
func (c *ScreenCanvas) FillCircle(circle core.Circle, col core.Color) {
	sx, sy := c.scale()
	rx, ry := circle.R*sx, circle.R*sy
	cx, cy := c.cell(circle.X, circle.Y)
	if rx < 1 || ry < 1 {
		c.screen.SetColored(cx, cy, '●', col)
		return
	}

	px := (circle.X - c.world.X) * sx
	py := (circle.Y - c.world.Y) * sy
	for y := int(math.Floor(py - ry)); y <= int(math.Ceil(py+ry)); y++ {
		for x := int(math.Floor(px - rx)); x <= int(math.Ceil(px+rx)); x++ {
			dx := (float64(x) + 0.5 - px) / rx
			dy := (float64(y) + 0.5 - py) / ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetColored(x, y, '█', col)
			}
		}
	}
}

// Text writes s starting at the cell containing (x, y).
func (c *ScreenCanvas) Text(x, y float64, s string, col core.Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawTextColored(cx, cy, s, col)
}

// TextCentered writes s centered on the cell containing (cx, cy).
func (c *ScreenCanvas) TextCentered(cx, cy float64, s string, col core.Color) {
	x, y := c.cell(cx, cy)
	c.screen.DrawTextColored(x-len([]rune(s))/2, y, s, col)
}
