package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/platform/tui"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse results interactively",
	Long: `Open the scoreboard with one tab per difficulty.

Controls:
  Tab/Shift+Tab  - Switch difficulty
  Up/Down        - Scroll
  Esc/Q          - Close`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	diff, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rc := terminalConfig()
	_, err = tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH, diff)
	return err
}
