package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/scene"
	"github.com/vovakirdan/blockshoot/internal/session"
)

func newTestModel(t *testing.T) (Model, *scene.Manager) {
	t.Helper()
	m, err := session.New(session.Options{Config: config.Default(), Seed: 1})
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
	return NewModel(m, cfg, nil), m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelPointerStartsCentered(t *testing.T) {
	m, _ := newTestModel(t)

	if p := m.input.Pointer; p.X != 400 || p.Y != 300 {
		t.Errorf("Pointer() = %+v, expected (400, 300)", p)
	}
}

func TestModelArrowKeysNudgePointer(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.input.Pointer.X != 420 {
		t.Errorf("after right, X = %f, expected 420", m.input.Pointer.X)
	}

	for range 50 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.input.Pointer.X != 0 {
		t.Errorf("pointer should clamp at the left edge, got %f", m.input.Pointer.X)
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m, mgr := newTestModel(t)

	// Row 19 is the middle of the start button.
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 19, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})

	if mgr.State() != scene.StateGame {
		t.Fatalf("State() = %v, expected game", mgr.State())
	}
	if cmd == nil || m.Done() {
		t.Error("model should keep ticking after the click")
	}

	// The click is consumed by one tick.
	update(t, m, TickMsg{})
	if mgr.State() != scene.StateGame {
		t.Errorf("State() = %v after a second tick", mgr.State())
	}
}

func TestModelMotionWithoutClick(t *testing.T) {
	m, mgr := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 19, Action: tea.MouseActionMotion})
	update(t, m, TickMsg{})

	if mgr.State() != scene.StateTitle {
		t.Errorf("State() = %v, motion alone should not press a button", mgr.State())
	}
	if !mgr.Hovering() {
		t.Error("pointer over the start button should hover it")
	}
}

func TestModelExitButtonQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})

	if !m.Done() {
		t.Error("model should be done after Exit")
	}
	if !isQuit(cmd) {
		t.Error("Exit should quit the program")
	}
}

func TestModelQuitKey(t *testing.T) {
	m, mgr := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))

	if !m.Done() || !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if mgr.Update(core.NewInputFrame(core.Vec2{}), 1.0/60) {
		t.Error("manager should refuse updates after quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelViewShowsTitle(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Block Shoot!!", "Go to Game", "Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("View() has %d lines, expected 40", len(lines))
	}
}
