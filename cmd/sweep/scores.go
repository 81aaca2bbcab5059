package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times",
	Long: `Display the recorded best time per difficulty, or for a single
difficulty when one is given.

Examples:
  sweep scores
  sweep scores expert
  sweep scores expert --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Clear the best time for the given difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		difficulty := args[0]
		if !registry.Exists(difficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
			fmt.Fprintln(os.Stderr, "Run 'sweep list' to see available difficulties.")
			os.Exit(1)
		}

		if flagClearScores {
			if err := store.ClearBestTime(difficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error clearing best time: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Cleared best time for %s.\n", difficulty)
			return
		}

		entry, ok, err := store.BestTime(difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving best time: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Printf("No best time for %s yet.\n", difficulty)
			fmt.Printf("Play 'sweep play %s' to set one!\n", difficulty)
			return
		}

		printTimes([]storage.BestTime{entry})
		return
	}

	if flagClearScores {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
		os.Exit(1)
	}

	times, err := store.BestTimes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		os.Exit(1)
	}

	if len(times) == 0 {
		fmt.Println("No best times recorded yet.")
		fmt.Println()
		fmt.Println("Clear a board with 'sweep play' to set one!")
		return
	}

	printTimes(times)
}

func printTimes(times []storage.BestTime) {
	fmt.Println("Best Times")
	fmt.Println()

	fmt.Printf("  %-14s  %-8s  %-12s  %s\n", "Difficulty", "Best", "Board", "Date")
	fmt.Printf("  %-14s  %-8s  %-12s  %s\n", "----------", "----", "-----", "----")

	for _, t := range times {
		board := fmt.Sprintf("%dx%d/%d", t.Width, t.Height, t.Mines)
		dateStr := t.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-8s  %-12s  %s\n", t.Difficulty, t.Duration(), board, dateStr)
	}
}
