package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Block Shoot in the current terminal.

Controls:
  Mouse        - Move the paddle, click buttons
  Left/Right   - Move the pointer (A/D, H/L also work)
  Enter/Space  - Press the first button
  Esc/B        - Press Exit
  Ctrl+S       - Save a screenshot to ~/.blockshoot/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More time, slower ball, wider paddle
  normal - Default settings
  hard   - Less time, faster ball, narrower paddle

Examples:
  blockshoot play
  blockshoot play --difficulty easy
  blockshoot play --config ./my-blockshoot.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, diff, err := loadSettings()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player, stopAudio := newAudio(logger)
	defer stopAudio()

	manager, err := newManager(cfg, diff, player, store, logger)
	if err != nil {
		return err
	}

	if err := tui.Run(manager, terminalConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
