// Package window runs Block Shoot in a desktop window with Ebitengine.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/scene"
)

// keyActions maps keys to the actions they trigger on press.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeySpace:  core.ActionConfirm,
	ebiten.KeyEscape: core.ActionBack,
	ebiten.KeyB:      core.ActionBack,
	ebiten.KeyQ:      core.ActionQuit,
}

// Host adapts a scene manager to ebiten.Game.
type Host struct {
	manager *scene.Manager
	canvas  imageCanvas
	input   core.InputFrame
	tps     int
	dt      float64
}

// NewHost creates a host stepping the manager tps times per second.
func NewHost(m *scene.Manager, tps int) *Host {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	bounds := m.Bounds()
	return &Host{
		manager: m,
		canvas:  imageCanvas{bounds: bounds},
		input:   core.NewInputFrame(bounds.Center()),
		tps:     tps,
		dt:      1 / float64(tps),
	}
}

// Update reads the mouse and keyboard and runs one frame.
func (h *Host) Update() error {
	x, y := ebiten.CursorPosition()
	h.input.Pointer = core.Vec2{X: float64(x), Y: float64(y)}
	h.input.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			h.input.Set(a)
		}
	}

	running := h.manager.Update(h.input, h.dt)
	h.input.Clear()
	if !running {
		return ebiten.Termination
	}

	if h.manager.Hovering() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

// Draw renders the current scene on a paper background.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(core.ColorPaper, 1))
	h.canvas.dst = screen
	h.manager.Draw(&h.canvas)
}

// Layout keeps the logical screen at the field size.
func (h *Host) Layout(_, _ int) (int, int) {
	b := h.canvas.bounds
	return int(b.W), int(b.H)
}

// Options configures the window.
type Options struct {
	Title string
	TPS   int
}

// Run opens a window and plays until the manager exits or the window closes.
func Run(m *scene.Manager, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Block Shoot"
	}
	h := NewHost(m, opts.TPS)
	w, hgt := h.Layout(0, 0)

	ebiten.SetWindowSize(w, hgt)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(h.tps)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
