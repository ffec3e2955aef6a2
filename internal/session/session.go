// Package session wires a scene manager with configuration, audio and
// result persistence for one player.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/scene"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

// ResultSaver persists finished rounds.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures a session.
type Options struct {
	Config     config.BlockShootConfig
	Difficulty config.DifficultyPreset
	Seed       int64
	Audio      audio.Player // nil plays nothing
	Store      ResultSaver  // nil keeps results in memory only
	Player     string
	Logger     *log.Logger // nil discards
}

// New builds a manager on the Title scene. The difficulty preset is applied
// on top of Config before validation.
func New(opts Options) (*scene.Manager, error) {
	cfg := opts.Config
	config.ApplyPreset(&cfg, opts.Difficulty)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	m := scene.NewManager(scene.Shared{
		Audio:  opts.Audio,
		Config: cfg,
		Seed:   opts.Seed,
	}, logger.With("player", player))
	m.RegisterDefaults()

	m.OnChange = func(_, to scene.State) {
		if to != scene.StateGameOver && to != scene.StateClear {
			return
		}
		if opts.Store == nil {
			return
		}
		res := storage.Result{
			Player:     player,
			Difficulty: string(difficulty),
			Outcome:    to.String(),
			Reason:     m.Outcome().String(),
			Score:      m.Score(),
		}
		if _, err := opts.Store.SaveResult(res); err != nil {
			logger.Warn("result not saved", "err", err)
			return
		}
		logger.Debug("result saved", "outcome", res.Outcome, "score", res.Score)
	}

	if err := m.Start(scene.StateTitle); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return m, nil
}
