package scene

import (
	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// recordPlayer remembers every sound played.
type recordPlayer struct {
	played []audio.Sound
}

func (r *recordPlayer) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func (r *recordPlayer) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// recordCanvas remembers text and counts shapes.
type recordCanvas struct {
	texts   []string
	textX   map[string]float64
	alphas  []float64
	rects   int
	circles int
	frames  int
}

func (c *recordCanvas) Bounds() core.RectF { return core.RectF{W: 800, H: 600} }

func (c *recordCanvas) FillRect(_ core.RectF, _ core.Color, alpha float64) {
	c.rects++
	c.alphas = append(c.alphas, alpha)
}

func (c *recordCanvas) FrameRect(core.RectF, core.Color) { c.frames++ }

func (c *recordCanvas) FillCircle(core.Circle, core.Color) { c.circles++ }

func (c *recordCanvas) Text(x, _ float64, s string, _ core.Color) {
	c.texts = append(c.texts, s)
	if c.textX == nil {
		c.textX = make(map[string]float64)
	}
	c.textX[s] = x
}

func (c *recordCanvas) TextCentered(_, _ float64, s string, _ core.Color) {
	c.texts = append(c.texts, s)
}

func (c *recordCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if t == s {
			return true
		}
	}
	return false
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame(core.Vec2{X: -1000, Y: -1000})
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func click(x, y float64) core.InputFrame {
	in := core.NewInputFrame(core.Vec2{X: x, Y: y})
	in.Click = true
	return in
}
