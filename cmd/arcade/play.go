package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-arcade/internal/platform/tui"
	"github.com/vovakirdan/cozy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Healing Bird controls:
  Space/Up/W   - Flap (also starts the game)
  Enter        - Start
  P            - Pause
  R/Enter      - Fly again after the finish

Invaders controls:
  Enter/P      - Start
  P            - Pause and resume
  Left/Right   - Move (keeps moving briefly after release)
  Down         - Stop moving
  Space/Enter  - Fire (Up/W also fire)
  R/Enter      - Reset after victory or defeat

Everywhere:
  M            - Mute or unmute
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots
  Esc/B        - Leave while paused or finished
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Ramps up at half speed
  normal - Ramps up as configured
  hard   - Ramps up at one and a half times the speed
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play bird
  arcade play invaders --difficulty easy
  arcade play bird --difficulty fixed --mute
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if err := checkDifficulty(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	paths, err := configPaths(flagConfig, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: paths.For(gameID),
		Difficulty: flagDifficulty,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sounds := openSounds(logger)

	opts := tui.ModelOptions{
		Sounds:     sounds,
		Logger:     logger,
		Difficulty: flagDifficulty,
	}
	if store != nil {
		opts.Store = store
	}

	// Run the game
	runErr := tui.Run(game, terminalConfig(), opts)

	// Release resources before potential exit
	sounds.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
