package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default settings",
	Long: `Print the built-in YAML settings for a game.

Save the output to ~/.arcade/configs/<game>.yaml and edit it, or pass it
with --config <game>=<path>. Keys you leave out keep their defaults.

Examples:
  arcade config bird > ~/.arcade/configs/bird.yaml
  arcade config invaders`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	cmd.OutOrStdout().Write(data)
}
