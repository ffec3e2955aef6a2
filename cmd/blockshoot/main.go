// blockshoot is a brick-breaking game against the clock, playable in a
// terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	blockshoot play          - Play in the terminal
//	blockshoot menu          - Pick a difficulty, play, repeat
//	blockshoot window        - Play in a desktop window
//	blockshoot serve         - Start SSH server for remote play
//	blockshoot scores        - Print results for a difficulty
//	blockshoot board         - Browse results interactively
//	blockshoot presets       - List difficulty presets
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.blockshoot/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log <path>          - Append logs to a file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockshoot",
	Short: "Block Shoot - break every brick before the clock runs out",
	Long: `Block Shoot is a brick-breaking game with a time limit.

Steer the paddle with the mouse (or the arrow keys in a terminal), keep the
ball in play and clear all bricks before time runs out. Every five seconds a
stretch item falls; catch it to double the paddle width.

Available commands:
  play     - Play in the terminal
  menu     - Pick a difficulty, play, repeat
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - Print results for a difficulty
  board    - Browse results interactively
  presets  - List difficulty presets

Examples:
  blockshoot play
  blockshoot play --difficulty hard
  blockshoot window --mute
  blockshoot serve --ssh :2222
  blockshoot scores normal`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockshoot/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append logs to this file (default: discarded)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(presetsCmd)
}
