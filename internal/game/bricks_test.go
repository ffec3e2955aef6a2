package game

import (
	"testing"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

func newDefaultBricks() *Bricks {
	return NewBricks(config.Default().Bricks)
}

func TestNewBricksLayout(t *testing.T) {
	b := newDefaultBricks()

	if b.Remaining() != 100 {
		t.Errorf("Remaining() = %d, expected 100", b.Remaining())
	}
	if len(b.Bricks()) != 100 {
		t.Fatalf("len(Bricks()) = %d, expected 100", len(b.Bricks()))
	}

	tests := []struct {
		index int
		rect  core.RectF
	}{
		{0, core.RectF{X: 0, Y: 60, W: 40, H: 20}},
		{19, core.RectF{X: 760, Y: 60, W: 40, H: 20}},
		{20, core.RectF{X: 0, Y: 80, W: 40, H: 20}},
		{99, core.RectF{X: 760, Y: 140, W: 40, H: 20}},
	}
	for _, tc := range tests {
		brick := b.Bricks()[tc.index]
		if brick.Rect != tc.rect {
			t.Errorf("brick %d rect = %+v, expected %+v", tc.index, brick.Rect, tc.rect)
		}
		if !brick.Alive {
			t.Errorf("brick %d should start alive", tc.index)
		}
	}
}

func TestBricksHitFromBelow(t *testing.T) {
	b := newDefaultBricks()
	score := &ScoreManager{}
	ball := NewBall(core.Vec2{X: 20, Y: 165}, 8, 700)

	if !b.Intersects(ball, score) {
		t.Fatal("Intersects() should destroy the brick above the ball")
	}
	if v := ball.Velocity(); v.Y <= 0 {
		t.Errorf("ball should reflect downward, velocity = %+v", v)
	}
	if score.Score() != 10 {
		t.Errorf("score = %d, expected 10", score.Score())
	}
	if b.Remaining() != 99 {
		t.Errorf("Remaining() = %d, expected 99", b.Remaining())
	}
	if b.Bricks()[80].Alive {
		t.Error("brick 80 should be destroyed")
	}

	// A destroyed brick never collides again
	if b.Intersects(ball, score) {
		t.Error("second Intersects() at the same spot should find nothing")
	}
	if score.Score() != 10 || b.Remaining() != 99 {
		t.Errorf("state changed on a miss: score=%d remaining=%d", score.Score(), b.Remaining())
	}
}

func TestBricksHitFromSide(t *testing.T) {
	b := newDefaultBricks()
	ball := NewBall(core.Vec2{X: -5, Y: 110}, 8, 700)
	if err := ball.SetVelocity(core.Vec2{X: -3, Y: -4}); err != nil {
		t.Fatal(err)
	}

	if !b.Intersects(ball, nil) {
		t.Fatal("Intersects() should destroy brick 40")
	}
	if b.Bricks()[40].Alive {
		t.Error("brick 40 should be destroyed")
	}
	v := ball.Velocity()
	if v.X <= 0 || v.Y >= 0 {
		t.Errorf("side hit should reflect horizontally only, velocity = %+v", v)
	}
}

func TestBricksOneCollisionPerCall(t *testing.T) {
	b := newDefaultBricks()
	score := &ScoreManager{}
	// Touches bricks 80 and 81 at once
	ball := NewBall(core.Vec2{X: 40, Y: 165}, 8, 700)

	b.Intersects(ball, score)

	if b.Remaining() != 99 {
		t.Errorf("Remaining() = %d, expected 99", b.Remaining())
	}
	if b.Bricks()[80].Alive {
		t.Error("first brick in scan order should be destroyed")
	}
	if !b.Bricks()[81].Alive {
		t.Error("second touching brick should survive this call")
	}
	if score.Score() != 10 {
		t.Errorf("score = %d, expected 10", score.Score())
	}
}

func TestBricksNilBall(t *testing.T) {
	b := newDefaultBricks()
	if b.Intersects(nil, &ScoreManager{}) {
		t.Error("Intersects(nil) should be a no-op")
	}
	if b.Remaining() != 100 {
		t.Error("Intersects(nil) should not change the grid")
	}
}

func TestScoreManager(t *testing.T) {
	var s ScoreManager
	s.AddScore(10)
	s.AddScore(10)
	if s.Score() != 20 {
		t.Errorf("Score() = %d, expected 20", s.Score())
	}
	s.Reset()
	if s.Score() != 0 {
		t.Errorf("Score() after Reset = %d, expected 0", s.Score())
	}
}
