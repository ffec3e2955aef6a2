package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/blockshoot/internal/config"
)

const frame = 1.0 / 60

func TestRoundBallLostOnce(t *testing.T) {
	score := &ScoreManager{}
	r := NewRound(config.Default(), 1, score)

	// Paddle parked off-screen: the ball breaks one brick, falls and is lost
	lost := 0
	for i := 0; i < 600; i++ {
		res := r.Step(-1000, frame)
		switch res.Outcome {
		case OutcomeNone:
		case OutcomeBallLost:
			lost++
		default:
			t.Fatalf("unexpected outcome %v at step %d", res.Outcome, i)
		}
	}

	if lost != 1 {
		t.Errorf("ball lost reported %d times, expected 1", lost)
	}
	if r.Outcome() != OutcomeBallLost {
		t.Errorf("Outcome() = %v, expected ball_lost", r.Outcome())
	}
	if score.Score() != 10 {
		t.Errorf("score = %d, expected 10", score.Score())
	}
	if r.Bricks().Remaining() != 99 {
		t.Errorf("Remaining() = %d, expected 99", r.Bricks().Remaining())
	}
}

func TestRoundFirstBrickHit(t *testing.T) {
	r := NewRound(config.Default(), 1, nil)

	hitAt := -1
	for i := 1; i <= 30; i++ {
		res := r.Step(400, frame)
		if res.Has(EventBrickDestroyed) {
			hitAt = i
			break
		}
	}

	if hitAt != 20 {
		t.Errorf("first brick destroyed at step %d, expected 20", hitAt)
	}
	if v := r.Ball().Velocity(); v.Y <= 0 {
		t.Errorf("ball should be moving down after the hit, velocity = %+v", v)
	}
	if r.Score().Score() != 10 {
		t.Errorf("score = %d, expected 10", r.Score().Score())
	}
}

func TestRoundCleared(t *testing.T) {
	cfg := config.Default()
	cfg.Bricks.Columns = 1
	cfg.Bricks.Rows = 1
	cfg.Ball.StartX = 20
	cfg.Ball.StartY = 200

	r := NewRound(cfg, 1, nil)

	cleared := 0
	clearedAt := -1
	for i := 1; i <= 100; i++ {
		res := r.Step(20, frame)
		if res.Outcome == OutcomeCleared {
			cleared++
			clearedAt = i
		} else if res.Outcome != OutcomeNone {
			t.Fatalf("unexpected outcome %v at step %d", res.Outcome, i)
		}
	}

	if cleared != 1 {
		t.Fatalf("cleared reported %d times, expected 1", cleared)
	}
	// Brick falls on step 10; the next step sees zero remaining
	if clearedAt != 11 {
		t.Errorf("cleared at step %d, expected 11", clearedAt)
	}
	if r.Bricks().Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", r.Bricks().Remaining())
	}
}

func TestRoundTimeUp(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.TimeLimit = 0.5

	r := NewRound(cfg, 1, nil)

	var outcome Outcome
	steps := 0
	for outcome == OutcomeNone && steps < 100 {
		outcome = r.Step(400, frame).Outcome
		steps++
	}

	if outcome != OutcomeTimeUp {
		t.Fatalf("outcome = %v, expected time_up", outcome)
	}
	if steps < 31 || steps > 32 {
		t.Errorf("time up after %d steps, expected 31 or 32", steps)
	}
	if !outcome.Failed() {
		t.Error("time up should count as a failure")
	}
}

func TestRoundItemToggle(t *testing.T) {
	// 1/64 is exact in binary, so 320 steps are exactly five seconds
	const dt = 1.0 / 64
	r := NewRound(config.Default(), 1, nil, WithSpawner(fixedSpawner{x: 300}))

	step := func() StepResult {
		res := r.Step(r.Ball().Position().X, dt)
		if res.Outcome != OutcomeNone {
			t.Fatalf("round ended early with %v at tick %d", res.Outcome, r.Tick())
		}
		return res
	}

	for i := 1; i < 320; i++ {
		if res := step(); res.Has(EventItemSpawned) {
			t.Fatalf("item spawned early at step %d", i)
		}
	}
	if res := step(); !res.Has(EventItemSpawned) {
		t.Fatal("item should spawn after five seconds")
	}
	if item := r.Item(); item == nil || item.Circle().X != 300 {
		t.Fatalf("expected an item at x=300, got %+v", item)
	}

	r.Paddle().ExpandSize()

	for i := 1; i < 320; i++ {
		res := step()
		if res.Has(EventItemReleased) {
			t.Fatalf("item released early at step %d", i)
		}
		if res.Has(EventPaddleStretched) {
			t.Fatal("the item at x=300 should never reach the paddle")
		}
	}
	if res := step(); !res.Has(EventItemReleased) {
		t.Fatal("item should be removed five seconds after it spawned")
	}
	if r.Item() != nil {
		t.Error("Item() should be nil after release")
	}
	if r.Paddle().Width() != 60 {
		t.Errorf("paddle width = %f after release, expected 60", r.Paddle().Width())
	}
}

func TestRoundEmptySpawnerIsQuiet(t *testing.T) {
	const dt = 1.0 / 64
	r := NewRound(config.Default(), 1, nil, WithSpawner(emptySpawner{}))

	for i := 0; i < 3*320; i++ {
		res := r.Step(r.Ball().Position().X, dt)
		if res.Outcome != OutcomeNone {
			t.Fatalf("round ended early with %v at step %d", res.Outcome, i)
		}
		if res.Has(EventItemSpawned) || res.Has(EventItemReleased) {
			t.Fatalf("step %d reported item events %v with nothing to spawn", i, res.Events)
		}
	}
	if r.Item() != nil {
		t.Error("Item() should stay nil")
	}
}

func TestRoundAdvanceLowFrameRate(t *testing.T) {
	r := NewRound(config.Default(), 1, nil)

	// Five seconds at 10 fps with the paddle under the ball
	bricks := 0
	for i := 0; i < 50; i++ {
		res := r.Advance(r.Ball().Position().X, 1.0/10)
		if res.Outcome != OutcomeNone {
			t.Fatalf("outcome %v at frame %d, ball at %+v", res.Outcome, i, r.Ball().Position())
		}
		for _, ev := range res.Events {
			if ev == EventBrickDestroyed {
				bricks++
			}
		}
	}

	if r.Tick() != 300 {
		t.Errorf("Tick() = %d, expected 6 steps per frame", r.Tick())
	}
	if bricks == 0 {
		t.Error("events from sub-steps should be reported")
	}
	if got := 100 - r.Bricks().Remaining(); got != bricks {
		t.Errorf("destroyed %d bricks but reported %d", got, bricks)
	}
}

func TestRoundAdvanceStopsAtOutcome(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.TimeLimit = frame / 2
	r := NewRound(cfg, 1, nil)

	if res := r.Advance(400, 1.0/10); res.Outcome != OutcomeTimeUp {
		t.Fatalf("Advance() outcome = %v, expected time_up", res.Outcome)
	}
	if r.Tick() != 2 {
		t.Errorf("Tick() = %d, expected the frame to stop after step 2", r.Tick())
	}
	if res := r.Advance(400, 1.0/10); res.Outcome != OutcomeNone {
		t.Errorf("finished round reported %v again", res.Outcome)
	}
}

func TestRoundAdvanceShortFrame(t *testing.T) {
	r := NewRound(config.Default(), 1, nil)
	r.Advance(400, frame)
	r.Advance(400, 0)
	if r.Tick() != 2 {
		t.Errorf("Tick() = %d, expected one step per short frame", r.Tick())
	}
}

func TestRoundConstantSpeed(t *testing.T) {
	r := NewRound(config.Default(), 3, nil)

	for i := 0; i < 5000; i++ {
		// Track the ball slightly off-center so bounces change direction
		x := r.Ball().Position().X + 7*math.Sin(float64(i)/40)
		res := r.Step(x, frame)

		if got := r.Ball().Velocity().Len(); math.Abs(got-700) > 1e-6 {
			t.Fatalf("speed = %f at step %d, expected 700", got, i)
		}
		if w := r.Paddle().Width(); w != 60 && w != 120 {
			t.Fatalf("paddle width = %f at step %d", w, i)
		}
		if res.Outcome != OutcomeNone {
			break
		}
	}
}

func TestRoundStepAfterOutcome(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.TimeLimit = frame / 2
	r := NewRound(cfg, 1, nil)

	r.Step(400, frame)
	if res := r.Step(400, frame); res.Outcome != OutcomeTimeUp {
		t.Fatalf("expected time up on step 2, got %v", res.Outcome)
	}

	before := r.Snapshot()
	for i := 0; i < 10; i++ {
		if res := r.Step(100, frame); res.Outcome != OutcomeNone || len(res.Events) != 0 {
			t.Fatalf("finished round should not report anything, got %+v", res)
		}
	}
	after := r.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("finished round should not change")
	}
}

func TestRoundDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		r := NewRound(config.Default(), seed, nil)
		for i := 0; i < 3000; i++ {
			x := 400 + 300*math.Sin(float64(i)/90)
			if r.Step(x, frame).Outcome != OutcomeNone {
				break
			}
		}
		return r.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o        Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeTimeUp, "time_up"},
		{OutcomeCleared, "cleared"},
		{OutcomeBallLost, "ball_lost"},
		{Outcome(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.o.String(); got != tc.expected {
			t.Errorf("Outcome(%d).String() = %q, expected %q", tc.o, got, tc.expected)
		}
	}
}
