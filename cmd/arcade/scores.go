package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-arcade/internal/registry"
	"github.com/vovakirdan/cozy-arcade/internal/storage"
)

var (
	flagClear   bool
	flagAllRuns bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified game.
Without a game, show a summary line for every game.

Examples:
  arcade scores
  arcade scores bird
  arcade scores invaders --all
  arcade scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "List every recorded run instead of the top 10")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && (flagClear || flagAllRuns) {
		fmt.Fprintln(os.Stderr, "Error: --clear and --all need a game")
		os.Exit(1)
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		// Check if game exists
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if gameID == "" {
		stats, err := store.GetAllGamesStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			return
		}
		printSummary(out, registry.List(), stats)
		return
	}

	title := gameTitle(gameID)

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Fprintf(out, "Removed %d score(s) for %s.\n", n, title)
		return
	}

	var scores []storage.ScoreEntry
	if flagAllRuns {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	printScores(out, scores)

	fmt.Fprintln(out)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "Best: %d  Played: %d  Wins: %d  Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

// printScores writes one row per run, in the order given.
func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-10s  %-8s  %s\n", "Rank", "Score", "Result", "Difficulty", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "------", "----------", "----", "----")

	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6s  %-10s  %-8s  %s\n",
			i+1, entry.Score, orDash(entry.Outcome), orDash(entry.Difficulty),
			entry.Duration.Round(time.Second).String(), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printSummary writes a line per registered game, including games that
// were never played.
func printSummary(out io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	fmt.Fprintf(out, "  %-14s  %-6s  %-4s  %-8s  %-8s  %s\n", "Game", "Played", "Wins", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-14s  %-6s  %-4s  %-8s  %-8s  %s\n", "----", "------", "----", "----", "-------", "-----------")

	for _, g := range games {
		s, ok := stats[g.ID]
		if !ok || s.GamesCount == 0 {
			fmt.Fprintf(out, "  %-14s  %-6d  %-4s  %-8s  %-8s  %s\n", g.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-14s  %-6d  %-4d  %-8d  %-8.0f  %s\n",
			g.Title, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
