package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Has(Confirm) should be true after Set")
	}
	if f.Has(ActionBack) {
		t.Error("Has(Back) should be false")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame(Vec2{X: 120, Y: 300})
	f.Set(ActionLeft)
	f.Click = true

	f.Clear()

	if f.Has(ActionLeft) || f.Click {
		t.Error("Clear should drop actions and the click")
	}
	if f.Pointer.X != 120 || f.Pointer.Y != 300 {
		t.Errorf("Clear should keep the pointer, got %+v", f.Pointer)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
