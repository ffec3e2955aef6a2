// Package scene implements the scene state machine: Title, Game, GameOver
// and Clear, and the manager that drives them one frame at a time.
package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/game"
)

// ErrUnknownState is returned when no factory is registered for a state.
var ErrUnknownState = errors.New("scene: unknown state")

// Scene is one screen of the game.
type Scene interface {
	// Update advances the scene by dt seconds. Transitions requested
	// through ctx apply after Update returns.
	Update(ctx *Context, in core.InputFrame, dt float64)

	// Draw renders the scene.
	Draw(c Canvas)
}

// Hoverer is implemented by scenes that can report a pointer over a
// clickable element, so frontends can change the cursor.
type Hoverer interface {
	Hovering() bool
}

// Factory builds a fresh scene. It runs on every transition into its state.
type Factory func(ctx *Context) Scene

// Shared is the state that outlives individual scenes.
type Shared struct {
	Score  *game.ScoreManager
	Audio  audio.Player
	Config config.BlockShootConfig
	Seed   int64
}

// Context is handed to scenes to reach shared state and request transitions.
type Context struct {
	shared  Shared
	next    State
	pending bool
	exit    bool
	outcome game.Outcome
	rounds  int64
}

// ChangeScene requests a transition to s after the current update.
func (c *Context) ChangeScene(s State) {
	c.next = s
	c.pending = true
}

// Finish records how a round ended and moves to the matching result scene.
func (c *Context) Finish(o game.Outcome) {
	c.outcome = o
	if o == game.OutcomeCleared {
		c.ChangeScene(StateClear)
	} else {
		c.ChangeScene(StateGameOver)
	}
}

// Outcome returns how the last round ended.
func (c *Context) Outcome() game.Outcome {
	return c.outcome
}

// Exit requests the program to stop.
func (c *Context) Exit() {
	c.exit = true
}

// Score returns the shared score.
func (c *Context) Score() *game.ScoreManager {
	return c.shared.Score
}

// Audio returns the sound player.
func (c *Context) Audio() audio.Player {
	return c.shared.Audio
}

// Config returns the game configuration.
func (c *Context) Config() config.BlockShootConfig {
	return c.shared.Config
}

// NextSeed returns a new seed for each round, derived from the shared seed.
func (c *Context) NextSeed() int64 {
	c.rounds++
	return c.shared.Seed + c.rounds
}

// Manager owns the current scene and applies transitions.
type Manager struct {
	factories map[State]Factory
	ctx       *Context
	current   Scene
	state     State
	exited    bool
	logger    *log.Logger

	// OnChange is called after every transition with the old and new state.
	OnChange func(from, to State)
}

// NewManager creates a manager with no scenes. A nil logger discards output.
func NewManager(shared Shared, logger *log.Logger) *Manager {
	if shared.Score == nil {
		shared.Score = &game.ScoreManager{}
	}
	if shared.Audio == nil {
		shared.Audio = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		factories: make(map[State]Factory),
		ctx:       &Context{shared: shared},
		logger:    logger,
	}
}

// Add registers the factory for a state, replacing any previous one.
func (m *Manager) Add(s State, f Factory) {
	m.factories[s] = f
}

// Start builds the scene for s and makes it current.
func (m *Manager) Start(s State) error {
	f, ok := m.factories[s]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	m.state = s
	m.current = f(m.ctx)
	m.exited = false
	m.logger.Debug("scene started", "state", s)
	return nil
}

// Update runs one frame. It returns false once exit has been requested,
// and the manager does nothing after that.
func (m *Manager) Update(in core.InputFrame, dt float64) bool {
	if m.exited || m.current == nil {
		return false
	}

	if in.Has(core.ActionQuit) {
		m.ctx.Exit()
	} else {
		m.current.Update(m.ctx, in, dt)
	}

	if m.ctx.exit {
		m.exited = true
		m.logger.Info("exit requested", "state", m.state, "score", m.Score())
		return false
	}

	if m.ctx.pending {
		m.ctx.pending = false
		m.change(m.ctx.next)
	}
	return true
}

// change swaps in a fresh scene for to. Unknown states keep the current scene.
func (m *Manager) change(to State) {
	f, ok := m.factories[to]
	if !ok {
		m.logger.Error("scene change failed", "err", fmt.Errorf("%w: %s", ErrUnknownState, to))
		return
	}

	from := m.state
	m.state = to
	m.current = f(m.ctx)
	m.logger.Info("scene changed", "from", from, "to", to, "score", m.Score())

	if m.OnChange != nil {
		m.OnChange(from, to)
	}
}

// Draw renders the current scene.
func (m *Manager) Draw(c Canvas) {
	if m.current != nil {
		m.current.Draw(c)
	}
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// Score returns the shared score.
func (m *Manager) Score() uint32 {
	return m.ctx.shared.Score.Score()
}

// Outcome returns how the last round ended.
func (m *Manager) Outcome() game.Outcome {
	return m.ctx.outcome
}

// Bounds returns the playfield in world units.
func (m *Manager) Bounds() core.RectF {
	return fieldBounds(m.ctx)
}

// Hovering reports whether the pointer is over a clickable element.
func (m *Manager) Hovering() bool {
	h, ok := m.current.(Hoverer)
	return ok && h.Hovering()
}

// RegisterDefaults adds the standard Title, Game, GameOver and Clear scenes.
func (m *Manager) RegisterDefaults() {
	m.Add(StateTitle, NewTitle)
	m.Add(StateGame, NewPlay)
	m.Add(StateGameOver, NewGameOver)
	m.Add(StateClear, NewClear)
}
