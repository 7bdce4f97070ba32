package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cozy-arcade/internal/audio"
	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
	"github.com/vovakirdan/cozy-arcade/internal/storage"
)

// newLogger builds the logger from the global flags. Interactive commands
// own the terminal, so without --log-file they log nowhere; the server
// always logs to stderr. The returned closer releases the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closer, nil
}

// checkDifficulty rejects unknown presets before any UI starts.
func checkDifficulty() error {
	_, err := config.ParsePreset(flagDifficulty)
	return err
}

// configPaths reads the --config values. Commands that can start either
// game need every path tied to a game, since one file cannot fit both.
func configPaths(values []string, anyGame bool) (config.Paths, error) {
	paths, err := config.ParsePaths(values)
	if err != nil {
		return nil, fmt.Errorf("invalid --config: %w", err)
	}
	if anyGame && paths.Bare() {
		return nil, fmt.Errorf("invalid --config %q: name the game, e.g. --config bird=%s", paths[""], paths[""])
	}
	return paths, nil
}

// terminalConfig sizes the runtime to the current terminal, falling back
// to 80x24 when stdout is not a terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSounds starts audio output. Without a usable device the player stays
// silent and the games run unchanged.
func openSounds(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	player.SetMuted(flagMute)
	return player
}
