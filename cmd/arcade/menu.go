package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Left/Right changes the difficulty. Tab opens the scoreboard.
Leaving a paused or finished game with Esc or B returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select game
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --db ./scores.db
  arcade menu --config bird=./bird.yaml --config invaders=./invaders.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := checkDifficulty(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths, err := configPaths(flagConfig, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sounds := openSounds(logger)

	runErr := tui.RunSession(tui.SessionOptions{
		Store:       store,
		Sounds:      sounds,
		Logger:      logger,
		ConfigPaths: paths,
		Difficulty:  flagDifficulty,
	}, terminalConfig())

	sounds.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
