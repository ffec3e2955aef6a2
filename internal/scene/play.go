package scene

import (
	"fmt"

	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/game"
)

const hudMargin = 20

// Play is the game scene: it steps a round, plays effects for its events
// and hands the outcome to the manager.
type Play struct {
	round *game.Round
}

// NewPlay builds the game scene with a fresh round.
func NewPlay(ctx *Context) Scene {
	return &Play{
		round: game.NewRound(ctx.Config(), ctx.NextSeed(), ctx.Score()),
	}
}

func (p *Play) Update(ctx *Context, in core.InputFrame, dt float64) {
	res := p.round.Advance(in.Pointer.X, dt)

	for _, ev := range res.Events {
		switch ev {
		case game.EventBrickDestroyed:
			ctx.Audio().Play(audio.SoundShot)
		case game.EventPaddleStretched:
			ctx.Audio().Play(audio.SoundStretch)
		}
	}

	if res.Outcome != game.OutcomeNone {
		ctx.Finish(res.Outcome)
	}
}

func (p *Play) Draw(c Canvas) {
	for i, b := range p.round.Bricks().Bricks() {
		if b.Alive {
			c.FillRect(b.Rect.Stretched(-1), core.BrickColor, core.BrickFade(i))
		}
	}

	c.FillCircle(p.round.Ball().Circle(), core.ColorInk)
	c.FillRect(p.round.Paddle().Rect(), core.ColorCrimson, 1)
	if item := p.round.Item(); item != nil {
		c.FillCircle(item.Circle(), core.ColorAqua)
	}

	field := p.round.Field()
	c.Text(field.X+hudMargin, field.Y+hudMargin, fmt.Sprintf("Score:%d", p.round.Score().Score()), core.ColorInk)
	c.Text(field.X+field.W*5/8, field.Y+hudMargin, "Time:"+p.round.Countdown().String(), core.ColorInk)
}

// Round returns the round being played.
func (p *Play) Round() *game.Round {
	return p.round
}
