package scene

import (
	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/core"
)

// menu is the two-button block shared by Title and the result scenes:
// the first button moves to target, the second exits.
type menu struct {
	start  *Button
	exit   *Button
	target State
}

func newMenu(bounds core.RectF, startLabel string, target State) menu {
	c := bounds.Center()
	return menu{
		start:  NewButton(c.X, c.Y+80, startLabel),
		exit:   NewButton(c.X, c.Y+200, "Exit"),
		target: target,
	}
}

func (m *menu) update(ctx *Context, in core.InputFrame, dt float64) {
	startClicked := m.start.Update(in, dt)
	exitClicked := m.exit.Update(in, dt)

	switch {
	case startClicked || in.Has(core.ActionConfirm):
		ctx.Audio().Play(audio.SoundSubmit)
		ctx.ChangeScene(m.target)
	case exitClicked || in.Has(core.ActionBack):
		ctx.Audio().Play(audio.SoundSubmit)
		ctx.Exit()
	}
}

func (m *menu) draw(c Canvas, label core.Color) {
	m.start.Draw(c, label)
	m.exit.Draw(c, label)
}

// Hovering reports whether the pointer is over either button.
func (m *menu) Hovering() bool {
	return m.start.Hovered() || m.exit.Hovered()
}
