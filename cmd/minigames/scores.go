package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show results and high scores for a game",
	Long: `Display statistics, the most recent finished rounds and the top
high scores for the specified game.

With --interactive, opens the scoreboard browser instead.

Examples:
  minigames scores colorgrid
  minigames scores colorgrid --limit 25
  minigames scores colorgrid --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results and scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'minigames list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if stats.Played == 0 && len(scores) == 0 {
		fmt.Println("Nothing recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minigames play %s' to record the first round!\n", gameID)
		return nil
	}

	fmt.Printf("Played %d  Won %d  Lost %d", stats.Played, stats.Won, stats.Lost)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played %s", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println()

	if len(results) > 0 {
		fmt.Println("Recent rounds:")
		fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-7s  %-5s  %s\n", "ID", "Result", "Size", "Moves", "Cleared", "Time", "Date")
		fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-7s  %-5s  %s\n", "--", "------", "----", "-----", "-------", "----", "----")
		for _, r := range results {
			fmt.Printf("  %-16s  %-6s  %-5s  %-5d  %-7d  %-5s  %s\n",
				r.ID,
				r.Outcome,
				fmt.Sprintf("%dx%d", r.Height, r.Width),
				r.Moves,
				r.Score,
				r.Duration.Round(time.Second),
				r.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		fmt.Println()
	}

	if len(scores) > 0 {
		fmt.Println("High scores:")
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f\n", stats.HighScore, stats.AvgScore)
	}
	return nil
}
