package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/scene"
)

// pointerSteps is how many key presses move the pointer across the field.
const pointerSteps = 40

// Model is the Bubble Tea model driving one scene manager.
type Model struct {
	manager  *scene.Manager
	screen   *core.Screen
	canvas   *ScreenCanvas
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     *KeyMapper
	logger   *log.Logger
	quitting bool
}

// NewModel wraps a started manager. A nil logger discards output.
func NewModel(m *scene.Manager, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	world := m.Bounds()
	return Model{
		manager: m,
		screen:  screen,
		canvas:  NewScreenCanvas(screen, world),
		config:  cfg,
		input:   core.NewInputFrame(world.Center()),
		keys:    NewKeyMapper(),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.input.Set(core.ActionQuit)
		m.manager.Update(m.input, 0)
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}

	world := m.canvas.Bounds()
	step := world.W / pointerSteps
	switch action {
	case core.ActionLeft:
		m.input.Pointer.X = core.ClampF(m.input.Pointer.X-step, world.X, world.Right())
	case core.ActionRight:
		m.input.Pointer.X = core.ClampF(m.input.Pointer.X+step, world.X, world.Right())
	}
	return m, nil
}

// handleMouse moves the pointer and records left clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.Pointer = m.canvas.ToWorld(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Click = true
	}
	return m, nil
}

// handleTick runs one frame and stops the program once the manager exits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	running := m.manager.Update(m.input, m.config.FrameDelta())
	m.input.Clear()
	if !running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.manager.Draw(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".blockshoot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockshoot_%s_%s.txt", m.manager.State(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current scene to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.manager.Draw(m.canvas)
	return RenderScreen(m.screen)
}

// Done reports whether the model has stopped.
func (m Model) Done() bool {
	return m.quitting
}

// ProgramOptions are the Bubble Tea options every Block Shoot program uses.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run plays a manager in the current terminal until it exits.
func Run(m *scene.Manager, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(m, cfg, logger), ProgramOptions()...)
	_, err := p.Run()
	return err
}
