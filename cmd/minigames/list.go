package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games and boards",
	Long:  `Shows a list of all registered games and the built-in Color Grid boards.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	boards, err := levels.Builtin().LoadAll()
	if err != nil {
		return fmt.Errorf("cannot load boards: %w", err)
	}
	if len(boards) > 0 {
		fmt.Println()
		fmt.Println("Color Grid boards:")
		fmt.Println()
		fmt.Printf("  %-6s  %-14s  %-5s  %s\n", "ID", "Name", "Size", "Timer")
		fmt.Printf("  %-6s  %-14s  %-5s  %s\n", "--", "----", "----", "-----")
		for _, b := range boards {
			timer := "config"
			if b.Timer > 0 {
				timer = fmt.Sprintf("%ds", b.Timer)
			}
			fmt.Printf("  %-6s  %-14s  %-5s  %s\n", b.ID, b.Name, fmt.Sprintf("%dx%d", b.Height, b.Width), timer)
		}
	}

	fmt.Println()
	fmt.Println("Run 'minigames play <id>' to play a game, add '--level <board>' for a preset board.")
	return nil
}
