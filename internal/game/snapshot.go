package game

import "math"

// Snapshot contains the complete round state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	BallX, BallY    float64
	BallVX, BallVY  float64
	PaddleX         float64
	PaddleWidth     float64
	PaddleExpanded  bool
	Score           uint32
	BricksRemaining int
	Outcome         int

	// Item state; position is zero when inactive
	ItemActive bool
	ItemX      float64
	ItemY      float64

	Accumulated float64
	Elapsed     float64

	// Brick states in row-major order
	BrickAlive []bool

	// RNG state for the item spawner, zero for injected spawners
	RNGState uint64
}

// Snapshot returns the current round state as a Snapshot.
func (r *Round) Snapshot() Snapshot {
	bricks := r.bricks.Bricks()
	alive := make([]bool, len(bricks))
	for i, b := range bricks {
		alive[i] = b.Alive
	}

	pos := r.ball.Position()
	vel := r.ball.Velocity()
	snap := Snapshot{
		Tick:            r.tick,
		BallX:           pos.X,
		BallY:           pos.Y,
		BallVX:          vel.X,
		BallVY:          vel.Y,
		PaddleX:         r.paddle.Rect().X,
		PaddleWidth:     r.paddle.Width(),
		PaddleExpanded:  r.paddle.Expanded(),
		Score:           r.score.Score(),
		BricksRemaining: r.bricks.Remaining(),
		Outcome:         int(r.outcome),
		Accumulated:     r.accumulated,
		Elapsed:         r.countdown.Elapsed(),
		BrickAlive:      alive,
	}

	if item := r.slot.Item(); item != nil {
		c := item.Circle()
		snap.ItemActive = true
		snap.ItemX = c.X
		snap.ItemY = c.Y
	}
	if sp, ok := r.spawner.(*ItemSpawner); ok {
		snap.RNGState = sp.RNGState()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.PaddleX, snap.PaddleWidth,
		snap.ItemX, snap.ItemY,
		snap.Accumulated, snap.Elapsed,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)         //#nosec G115 -- hash computation
	if snap.ItemActive {
		h = h*31 + 1
	}
	if snap.PaddleExpanded {
		h = h*31 + 2
	}

	for _, alive := range snap.BrickAlive {
		h *= 31
		if alive {
			h++
		}
	}

	h = h*31 + snap.RNGState

	return h
}
