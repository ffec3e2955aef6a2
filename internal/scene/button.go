package scene

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/blockshoot/internal/core"
)

// Button size and hover timing shared by all menus.
const (
	ButtonWidth  = 300
	ButtonHeight = 60

	hoverIn  = 400 * time.Millisecond
	hoverOut = 200 * time.Millisecond
)

// Transition eases a value between 0 and 1: up over the in duration while
// active, back down over the out duration otherwise. Reversing midway
// continues from the current value at the same rate.
type Transition struct {
	in, out float32
	value   float32
	target  float32
	tween   *gween.Tween
}

// NewTransition creates a transition resting at 0.
func NewTransition(in, out time.Duration) *Transition {
	return &Transition{
		in:  float32(in.Seconds()),
		out: float32(out.Seconds()),
	}
}

// Update advances the transition by dt seconds toward 1 if on, else 0.
func (t *Transition) Update(on bool, dt float64) {
	target := float32(0)
	full := t.out
	if on {
		target = 1
		full = t.in
	}

	if target != t.target {
		t.target = target
		dist := target - t.value
		if dist < 0 {
			dist = -dist
		}
		if d := full * dist; d > 0 {
			t.tween = gween.New(t.value, target, d, ease.Linear)
		} else {
			t.value = target
			t.tween = nil
		}
	}

	if t.tween != nil {
		v, done := t.tween.Update(float32(dt))
		t.value = v
		if done {
			t.value = t.target
			t.tween = nil
		}
	}
}

// Value returns the current value in [0, 1].
func (t *Transition) Value() float64 {
	return float64(t.value)
}

// Button is a clickable rectangle with a hover highlight.
type Button struct {
	Rect    core.RectF
	Label   string
	hovered bool
	hover   *Transition
}

// NewButton creates a standard-size button centered on (cx, cy).
func NewButton(cx, cy float64, label string) *Button {
	return &Button{
		Rect:  core.RectFromCenter(cx, cy, ButtonWidth, ButtonHeight),
		Label: label,
		hover: NewTransition(hoverIn, hoverOut),
	}
}

// Update tracks hover and returns true if the button was clicked.
func (b *Button) Update(in core.InputFrame, dt float64) bool {
	b.hovered = b.Rect.Contains(in.Pointer)
	b.hover.Update(b.hovered, dt)
	return b.hovered && in.Click
}

// Hovered reports whether the pointer was over the button on the last update.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Draw renders the highlight, the frame and the label.
func (b *Button) Draw(c Canvas, label core.Color) {
	c.FillRect(b.Rect, core.ColorAqua, b.hover.Value())
	c.FrameRect(b.Rect, core.ColorInk)
	center := b.Rect.Center()
	c.TextCentered(center.X, center.Y, b.Label, label)
}
