package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blockshoot/internal/core"
)

// textScale enlarges the 7x13 bitmap font to suit an 800x600 field.
const textScale = 2

var face = text.NewGoXFace(basicfont.Face7x13)

// toRGBA converts a palette color at the given opacity to a premultiplied
// color.
func toRGBA(c core.Color, alpha float64) color.RGBA {
	a := core.ClampF(alpha, 0, 1)
	r, g, b := c.RGB()
	return color.RGBA{
		R: uint8(math.Round(float64(r) * a)),
		G: uint8(math.Round(float64(g) * a)),
		B: uint8(math.Round(float64(b) * a)),
		A: uint8(math.Round(255 * a)),
	}
}

// imageCanvas draws scenes onto an ebiten image in world units, which map
// one to one onto logical pixels.
type imageCanvas struct {
	dst    *ebiten.Image
	bounds core.RectF
}

func (c *imageCanvas) Bounds() core.RectF {
	return c.bounds
}

func (c *imageCanvas) FillRect(r core.RectF, col core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toRGBA(col, alpha), true)
}

func (c *imageCanvas) FrameRect(r core.RectF, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, toRGBA(col, 1), true)
}

func (c *imageCanvas) FillCircle(circle core.Circle, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(circle.X), float32(circle.Y), float32(circle.R), toRGBA(col, 1), true)
}

func (c *imageCanvas) Text(x, y float64, s string, col core.Color) {
	c.drawText(x, y, s, col, text.AlignStart)
}

func (c *imageCanvas) TextCentered(cx, cy float64, s string, col core.Color) {
	c.drawText(cx, cy, s, col, text.AlignCenter)
}

func (c *imageCanvas) drawText(x, y float64, s string, col core.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(col, 1))
	op.PrimaryAlign = align
	op.SecondaryAlign = align
	text.Draw(c.dst, s, face, op)
}
