package scene

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/blockshoot/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestTransitionInOut(t *testing.T) {
	tr := NewTransition(400*time.Millisecond, 200*time.Millisecond)

	steps := []struct {
		on       bool
		dt       float64
		expected float64
	}{
		{true, 0.2, 0.5},
		{true, 0.2, 1},
		{true, 0.2, 1},
		{false, 0.1, 0.5},
		{false, 0.1, 0},
		{false, 0.1, 0},
	}

	for i, s := range steps {
		tr.Update(s.on, s.dt)
		if !approx(tr.Value(), s.expected) {
			t.Errorf("step %d: Value() = %f, expected %f", i, tr.Value(), s.expected)
		}
	}
}

func TestTransitionReverseMidway(t *testing.T) {
	tr := NewTransition(400*time.Millisecond, 200*time.Millisecond)
	tr.Update(true, 0.2) // 0.5

	// Falling from 0.5 at the out rate takes 0.1s
	tr.Update(false, 0.05)
	if !approx(tr.Value(), 0.25) {
		t.Errorf("Value() = %f, expected 0.25", tr.Value())
	}
	tr.Update(false, 0.05)
	if !approx(tr.Value(), 0) {
		t.Errorf("Value() = %f, expected 0", tr.Value())
	}
}

func TestTransitionZeroDuration(t *testing.T) {
	tr := NewTransition(0, 0)
	tr.Update(true, 0.016)
	if tr.Value() != 1 {
		t.Errorf("Value() = %f, expected to snap to 1", tr.Value())
	}
	tr.Update(false, 0.016)
	if tr.Value() != 0 {
		t.Errorf("Value() = %f, expected to snap to 0", tr.Value())
	}
}

func TestButtonClick(t *testing.T) {
	b := NewButton(400, 380, "Go to Game")

	tests := []struct {
		name    string
		in      core.InputFrame
		hovered bool
		clicked bool
	}{
		{"hover without click", core.NewInputFrame(core.Vec2{X: 400, Y: 380}), true, false},
		{"click inside", click(260, 360), true, true},
		{"click outside", click(400, 420), false, false},
		{"left edge inclusive", click(250, 350), true, true},
		{"right edge exclusive", click(550, 380), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Update(tc.in, 0.016); got != tc.clicked {
				t.Errorf("Update() = %v, expected %v", got, tc.clicked)
			}
			if b.Hovered() != tc.hovered {
				t.Errorf("Hovered() = %v, expected %v", b.Hovered(), tc.hovered)
			}
		})
	}
}

func TestButtonDraw(t *testing.T) {
	b := NewButton(400, 380, "Exit")
	c := &recordCanvas{}
	b.Draw(c, core.ColorInk)

	if c.rects != 1 || c.frames != 1 || !c.hasText("Exit") {
		t.Errorf("Draw() recorded rects=%d frames=%d texts=%v", c.rects, c.frames, c.texts)
	}
}
