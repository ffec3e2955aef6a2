package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshoot/internal/config"
	"github.com/vovakirdan/blockshoot/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Print results for a difficulty",
	Long: `Display the top results for a difficulty (default: --difficulty).

Examples:
  blockshoot scores
  blockshoot scores hard
  blockshoot scores --recent
  blockshoot scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest results of every difficulty")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the difficulty")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(_ *cobra.Command, args []string) error {
	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	diff, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(string(diff)); err != nil {
			return err
		}
		fmt.Printf("Cleared %s results.\n", diff)
		return nil
	}

	if flagRecent {
		results, err := store.RecentResults(flagLimit)
		if err != nil {
			return fmt.Errorf("error retrieving results: %w", err)
		}
		fmt.Println("Recent Results")
		fmt.Println()
		printResults(results, true)
		return nil
	}

	results, err := store.TopResults(string(diff), flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving results: %w", err)
	}

	fmt.Printf("High Scores - %s\n", diff)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockshoot play --difficulty %s' to set the first high score!\n", diff)
		return nil
	}
	printResults(results, false)

	stats, err := store.Stats(string(diff))
	if err == nil {
		fmt.Println()
		fmt.Printf("Played: %d  Cleared: %d  Best: %d  Average: %.1f\n",
			stats.Played, stats.Cleared, stats.Best, stats.Average)
	}
	return nil
}

func printResults(results []storage.Result, withDifficulty bool) {
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	if withDifficulty {
		fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "Rank", "Player", "Level", "Score", "Result", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "----", "------", "-----", "-----", "------", "----")
	} else {
		fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "Rank", "Player", "Score", "Result", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %-10s  %s\n", "----", "------", "-----", "------", "----")
	}

	for i, r := range results {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withDifficulty {
			fmt.Printf("  %-4d  %-12s  %-8s  %-8d  %-10s  %s\n", i+1, r.Player, r.Difficulty, r.Score, r.Reason, date)
		} else {
			fmt.Printf("  %-4d  %-12s  %-8d  %-10s  %s\n", i+1, r.Player, r.Score, r.Reason, date)
		}
	}
}
