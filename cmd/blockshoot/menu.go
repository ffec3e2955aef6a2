package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, repeat",
	Long: `Start Block Shoot with a difficulty picker.

After a game ends, you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the selected difficulty
  Tab          - Open the scoreboard
  Q/Esc        - Quit

Examples:
  blockshoot menu
  blockshoot menu --fps 30
  blockshoot menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	rc := terminalConfig()
	for {
		var scores tui.HighScorer
		if store != nil {
			scores = store
		}
		result, err := tui.RunMenu(scores, rc, diff)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			var source tui.ResultSource
			if store != nil {
				source = store
			}
			goBack, sbErr := tui.RunScoreboard(source, rc.ScreenW, rc.ScreenH, diff)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		diff = result.Difficulty
		manager, err := newManager(cfg, diff, player, store, logger)
		if err != nil {
			return err
		}
		if err := tui.Run(manager, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
