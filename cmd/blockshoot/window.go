package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Block Shoot in an 800x600 window.

Controls:
  Mouse        - Move the paddle, click buttons
  Enter/Space  - Press the first button
  Esc/B        - Press Exit
  Q            - Quit

Examples:
  blockshoot window
  blockshoot window --difficulty hard --mute`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
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
	return window.Run(manager, window.Options{TPS: flagFPS})
}
