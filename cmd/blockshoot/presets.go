package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows how each difficulty preset changes the loaded config.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-10s  %s\n", "Name", "Time (s)", "Ball speed", "Paddle")
	fmt.Printf("  %-8s  %-10s  %-10s  %s\n", "----", "--------", "----------", "------")

	for _, p := range config.Presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		fmt.Printf("  %-8s  %-10.0f  %-10.0f  %.0f\n", p, cfg.Gameplay.TimeLimit, cfg.Ball.Speed, cfg.Paddle.Width)
	}

	fmt.Println()
	fmt.Println("Run 'blockshoot play --difficulty <name>' to play a preset.")
	return nil
}
