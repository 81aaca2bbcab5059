package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/game"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagMines    int
	flagContinue bool
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a board",
	Long: `Start a board at the given difficulty (default: beginner).

Passing any of --width/--height/--mines selects a custom board.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Reveal (chords on a satisfied number)
  F            - Flag
  C            - Chord
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back to menu, saving progress
  Q/Ctrl+C     - Quit, saving progress

Examples:
  sweep play
  sweep play expert
  sweep play intermediate --continue
  sweep play --width 24 --height 20 --mines 120
  sweep play beginner --config ./my-sweep.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom board mine count")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume the saved board for this difficulty")
}

// terminalSize probes the terminal, exiting when there is none to draw on.
func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal unavailable: %v\n", err)
		os.Exit(1)
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "beginner"
	if len(args) > 0 {
		gameID = args[0]
	}

	game.SetConfigPath(flagConfig)

	// Any custom dimension flag switches to the custom variant.
	if flagWidth > 0 || flagHeight > 0 || flagMines > 0 {
		board := config.BoardConfig{Width: flagWidth, Height: flagHeight, Mines: flagMines}
		if err := board.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		game.SetCustomBoard(board)
		gameID = "custom"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sweep list' to see available difficulties.")
		os.Exit(1)
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open storage for best times and the continue slot
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if flagContinue && store != nil {
		state, ok, loadErr := store.LoadGame(gameID)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load saved game: %v\n", loadErr)
		} else if !ok {
			fmt.Fprintf(os.Stderr, "No saved game for %q, starting fresh.\n", gameID)
		} else {
			g.LoadSave(state)
		}
	}

	_, runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
