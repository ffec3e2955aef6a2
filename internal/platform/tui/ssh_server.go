package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/core"
	"github.com/vovakirdan/blockshoot/internal/session"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.blockshoot/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game is the configuration every session starts from.
	Game config.BlockShootConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.blockshoot/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.Default(),
	}
}

// SSHServer wraps a Wish SSH server. Every connection plays its own game;
// only the result store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockshoot-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".blockshoot", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.sessionStore(), s.config.Game, cfg, sshSession.User(), s.logger)
	return model, ProgramOptions()
}

// sessionStore keeps a nil store from turning into a non-nil interface.
func (s *SSHServer) sessionStore() SessionStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionStore is everything a remote session needs from the result store.
type SessionStore interface {
	session.ResultSaver
	ResultSource
	HighScorer
}

type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phaseScores
	phaseGame
)

// SessionModel runs the picker, the scoreboard and games for one remote
// player. Leaving a game returns to the picker.
type SessionModel struct {
	store      SessionStore
	game       config.BlockShootConfig
	config     core.RuntimeConfig
	username   string
	logger     *log.Logger
	phase      sessionPhase
	difficulty config.DifficultyPreset
	menu       MenuModel
	scores     ScoreboardModel
	play       Model
	quitting   bool
}

// NewSessionModel creates a session starting at the difficulty picker.
func NewSessionModel(store SessionStore, game config.BlockShootConfig, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	m := SessionModel{
		store:      store,
		game:       game,
		config:     cfg,
		username:   username,
		logger:     logger,
		difficulty: config.DifficultyNormal,
	}
	m.menu = NewMenuModel(m.highScorer(), cfg, m.difficulty)
	return m
}

func (m SessionModel) highScorer() HighScorer {
	if m.store == nil {
		return nil
	}
	return m.store
}

func (m SessionModel) resultSource() ResultSource {
	if m.store == nil {
		return nil
	}
	return m.store
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.phase {
	case phaseGame:
		return m.updateGame(msg)
	case phaseScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while picking a difficulty.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.phase = phaseScores
		m.scores = NewScoreboardModel(m.resultSource(), m.config.ScreenW, m.config.ScreenH, m.difficulty)
		return m, m.scores.Init()
	}

	d, ok := m.menu.Selected()
	if !ok {
		return m, cmd
	}
	m.difficulty = d

	opts := session.Options{
		Config:     m.game,
		Difficulty: d,
		Seed:       time.Now().UnixNano(),
		Player:     m.username,
		Logger:     m.logger,
	}
	if m.store != nil {
		opts.Store = m.store
	}
	manager, err := session.New(opts)
	if err != nil {
		m.logger.Error("cannot start game", "user", m.username, "err", err)
		m.menu = NewMenuModel(m.highScorer(), m.config, m.difficulty)
		return m, nil
	}

	m.play = NewModel(manager, m.config, m.logger)
	m.phase = phaseGame
	return m, m.play.Init()
}

// updateScores handles updates while the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

// updateGame handles updates while a game runs.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if play, ok := next.(Model); ok {
		m.play = play
	}

	if m.play.Done() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.phase = phaseMenu
	m.menu = NewMenuModel(m.highScorer(), m.config, m.difficulty)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseGame:
		return m.play.View()
	case phaseScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
