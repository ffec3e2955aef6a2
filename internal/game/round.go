package game

import (
	"math"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// MaxStep is the longest time slice Advance hands to Step, in seconds.
const MaxStep = 1.0 / 60

// Outcome is how a step ended the round, if it did.
type Outcome int

const (
	OutcomeNone     Outcome = iota
	OutcomeTimeUp           // countdown reached zero
	OutcomeCleared          // no bricks left
	OutcomeBallLost         // ball left the field
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTimeUp:
		return "time_up"
	case OutcomeCleared:
		return "cleared"
	case OutcomeBallLost:
		return "ball_lost"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome is a loss.
func (o Outcome) Failed() bool {
	return o == OutcomeTimeUp || o == OutcomeBallLost
}

// Event is something that happened during a step that a host may react to.
type Event int

const (
	EventBrickDestroyed Event = iota
	EventPaddleStretched
	EventItemSpawned
	EventItemReleased
)

// StepResult is returned by Round.Step.
type StepResult struct {
	Outcome Outcome
	Events  []Event
}

// Has reports whether e occurred during the step.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// RoundOption customizes a round.
type RoundOption func(*Round)

// WithSpawner replaces the seeded item spawner.
func WithSpawner(s Spawner) RoundOption {
	return func(r *Round) {
		r.spawner = s
	}
}

// Round is one play of the game scene: all entities, the item timer and
// the countdown.
type Round struct {
	field         core.RectF
	eventInterval float64

	ball      *Ball
	bricks    *Bricks
	paddle    *Paddle
	wall      Wall
	slot      ItemSlot
	spawner   Spawner
	countdown *Countdown
	score     *ScoreManager

	accumulated float64
	tick        uint64
	outcome     Outcome
}

// NewRound creates a fresh round. Points go to score, which may be shared
// across rounds.
func NewRound(cfg config.BlockShootConfig, seed int64, score *ScoreManager, opts ...RoundOption) *Round {
	if score == nil {
		score = &ScoreManager{}
	}
	r := &Round{
		field:         core.RectF{X: 0, Y: 0, W: cfg.Screen.Width, H: cfg.Screen.Height},
		eventInterval: cfg.Gameplay.EventInterval,
		ball:          NewBall(core.Vec2{X: cfg.Ball.StartX, Y: cfg.Ball.StartY}, cfg.Ball.Radius, cfg.Ball.Speed),
		bricks:        NewBricks(cfg.Bricks),
		paddle:        NewPaddle(cfg.Paddle, cfg.Screen.Width/2),
		spawner:       NewItemSpawner(cfg.Item, seed),
		countdown:     NewCountdown(cfg.Gameplay.TimeLimit),
		score:         score,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Step advances the round by dt seconds with the pointer at pointerX.
// Once a step reports an outcome the round is over and later steps
// return an empty result without changing anything.
func (r *Round) Step(pointerX, dt float64) StepResult {
	var res StepResult
	if r.outcome != OutcomeNone {
		return res
	}
	r.tick++

	if r.countdown.ReachedZero() {
		return r.finish(res, OutcomeTimeUp)
	}
	if r.bricks.Remaining() <= 0 {
		return r.finish(res, OutcomeCleared)
	}

	r.paddle.Update(pointerX)
	r.ball.Update(dt)
	if item := r.slot.Item(); item != nil {
		item.Update(dt)
	}

	r.accumulated += dt
	r.countdown.Advance(dt)
	if r.accumulated >= r.eventInterval {
		if ev, ok := r.toggleItem(); ok {
			res.Events = append(res.Events, ev)
		}
		r.accumulated -= r.eventInterval
	}

	if !r.ball.Circle().IntersectsRect(r.field) {
		return r.finish(res, OutcomeBallLost)
	}

	if r.bricks.Intersects(r.ball, r.score) {
		res.Events = append(res.Events, EventBrickDestroyed)
	}
	r.wall.Intersects(r.ball, r.field.W)
	r.paddle.Intersects(r.ball)
	if item := r.slot.Item(); item != nil && item.Intersects(r.paddle) {
		res.Events = append(res.Events, EventPaddleStretched)
	}

	return res
}

// toggleItem spawns an item when none is live, otherwise removes it and
// shrinks the paddle back. ok is false when nothing changed.
func (r *Round) toggleItem() (ev Event, ok bool) {
	if r.slot.Active() {
		r.slot.Release()
		r.paddle.InitSize()
		return EventItemReleased, true
	}
	if r.slot.Spawn(r.spawner) {
		return EventItemSpawned, true
	}
	return 0, false
}

// Advance runs dt seconds of play as equal steps no longer than MaxStep,
// so a slow frame rate cannot carry the ball through the paddle. It stops
// at the first outcome and returns the events of every step taken.
func (r *Round) Advance(pointerX, dt float64) StepResult {
	n := int(math.Ceil(dt/MaxStep - 1e-9))
	if n < 1 {
		n = 1
	}
	step := dt / float64(n)

	var res StepResult
	for i := 0; i < n; i++ {
		sr := r.Step(pointerX, step)
		res.Events = append(res.Events, sr.Events...)
		if sr.Outcome != OutcomeNone {
			res.Outcome = sr.Outcome
			break
		}
	}
	return res
}

func (r *Round) finish(res StepResult, o Outcome) StepResult {
	r.outcome = o
	res.Outcome = o
	return res
}

// Ball returns the ball.
func (r *Round) Ball() *Ball { return r.ball }

// Bricks returns the brick grid.
func (r *Round) Bricks() *Bricks { return r.bricks }

// Paddle returns the paddle.
func (r *Round) Paddle() *Paddle { return r.paddle }

// Item returns the live item, or nil.
func (r *Round) Item() *StretchItem { return r.slot.Item() }

// Countdown returns the round timer.
func (r *Round) Countdown() *Countdown { return r.countdown }

// Score returns the score the round adds to.
func (r *Round) Score() *ScoreManager { return r.score }

// Field returns the play field rectangle.
func (r *Round) Field() core.RectF { return r.field }

// Tick returns the number of steps taken.
func (r *Round) Tick() uint64 { return r.tick }

// Outcome returns how the round ended, or OutcomeNone while it is running.
func (r *Round) Outcome() Outcome { return r.outcome }
