package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/scene"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

type memSaver struct {
	results []storage.Result
	err     error
}

func (m *memSaver) SaveResult(r storage.Result) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.results = append(m.results, r)
	return int64(len(m.results)), nil
}

func offscreen(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame(core.Vec2{X: -1000, Y: -1000})
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// playUntilResult starts a round and lets the ball drop.
func playUntilResult(t *testing.T, m *scene.Manager) {
	t.Helper()
	m.Update(offscreen(core.ActionConfirm), 1.0/60)
	for i := 0; i < 600 && m.State() == scene.StateGame; i++ {
		m.Update(offscreen(), 1.0/60)
	}
	if m.State() != scene.StateGameOver {
		t.Fatalf("State() = %v, expected gameover", m.State())
	}
}

func TestSessionSavesResult(t *testing.T) {
	saver := &memSaver{}
	m, err := New(Options{
		Config:     config.Default(),
		Difficulty: config.DifficultyHard,
		Store:      saver,
		Player:     "alice",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.State() != scene.StateTitle {
		t.Fatalf("State() = %v, expected title", m.State())
	}

	playUntilResult(t, m)

	if len(saver.results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(saver.results))
	}
	r := saver.results[0]
	if r.Player != "alice" || r.Difficulty != "hard" || r.Outcome != "gameover" || r.Reason != "ball_lost" {
		t.Errorf("saved result = %+v", r)
	}
	if r.Score != m.Score() {
		t.Errorf("saved score = %d, expected %d", r.Score, m.Score())
	}

	// Going back to Title stores nothing more
	m.Update(offscreen(core.ActionConfirm), 1.0/60)
	if len(saver.results) != 1 {
		t.Errorf("saved %d results after returning to Title, expected 1", len(saver.results))
	}
}

func TestSessionDefaults(t *testing.T) {
	saver := &memSaver{}
	m, err := New(Options{Config: config.Default(), Store: saver})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	playUntilResult(t, m)

	if r := saver.results[0]; r.Player != "local" || r.Difficulty != "normal" {
		t.Errorf("saved result = %+v, expected local/normal", r)
	}
}

func TestSessionSaveFailureKeepsPlaying(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	m, err := New(Options{Config: config.Default(), Store: saver})
	if err != nil {
		t.Fatal(err)
	}
	playUntilResult(t, m)

	if !m.Update(offscreen(core.ActionConfirm), 1.0/60) {
		t.Error("session should keep running after a failed save")
	}
	if m.State() != scene.StateTitle {
		t.Errorf("State() = %v, expected title", m.State())
	}
}

func TestSessionInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Ball.Speed = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("New() should reject an invalid config")
	}
}

func TestSessionWithSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, err := New(Options{Config: config.Default(), Difficulty: config.DifficultyEasy, Store: store})
	if err != nil {
		t.Fatal(err)
	}
	playUntilResult(t, m)

	top, err := store.TopResults("easy", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 1 || top[0].Outcome != "gameover" {
		t.Errorf("TopResults() = %+v", top)
	}
}
