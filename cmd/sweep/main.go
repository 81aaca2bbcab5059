// sweep is a terminal minesweeper.
//
// Usage:
//
//	sweep list                - List available difficulties
//	sweep play <difficulty>   - Play a board directly
//	sweep menu                - Start the interactive menu
//	sweep serve               - Start SSH server for remote play
//	sweep scores              - Show best times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.sweep/sweep.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import to register the difficulty variants
	_ "github.com/vovakirdan/tui-minesweeper/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Minesweeper in your terminal",
	Long: `sweep is a terminal minesweeper with the classic difficulties,
custom boards, per-difficulty best times and a continue slot for
boards you quit halfway.

Available commands:
  list     - Show all difficulties
  play     - Play a board directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  sweep play beginner
  sweep play --width 24 --height 20 --mines 120
  sweep menu
  sweep serve --ssh :2222
  sweep scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweep/sweep.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
