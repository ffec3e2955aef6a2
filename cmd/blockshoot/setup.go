package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockshoot/internal/audio"
	"github.com/vovakirdan/blockshoot/internal/audio/sfx"
	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/scene"
	"github.com/vovakirdan/blockshoot/internal/session"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

// soundVolume is the master gain for sound effects.
const soundVolume = 0.3

// newLogger returns a logger writing to --log, or discarding output.
// Interactive frontends own the terminal, so logs never go to stderr.
func newLogger() (*log.Logger, func(), error) {
	if flagLog == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockshoot",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// loadSettings reads the game config and the difficulty flag.
func loadSettings() (config.BlockShootConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	return cfg, diff, nil
}

// openStore opens the results database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "err", err)
		return nil
	}
	return store
}

// newAudio starts the speaker unless muted. Failures fall back to silence.
func newAudio(logger *log.Logger) (audio.Player, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}
	sm := sfx.NewSoundManager(soundVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()
	return cfg
}

// newManager builds a title-screen manager for a local player.
func newManager(cfg config.BlockShootConfig, diff config.DifficultyPreset, player audio.Player, store *storage.Store, logger *log.Logger) (*scene.Manager, error) {
	opts := session.Options{
		Config:     cfg,
		Difficulty: diff,
		Seed:       seed(),
		Audio:      player,
		Logger:     logger,
	}
	if store != nil {
		opts.Store = store
	}
	return session.New(opts)
}
