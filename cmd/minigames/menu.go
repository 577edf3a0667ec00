package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Color Grid asks for a board first: a random one or a built-in preset.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Results and high scores
  Q            - Quit

Examples:
  minigames menu
  minigames menu --fps 60
  minigames menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	gameLog, closeLog := fileLogger()
	defer closeLog()

	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("cannot run menu: %w", err)
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("cannot run scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		if res.GameID == defaultGame {
			sel, err := tui.RunLevelSelector(cfg)
			if err != nil {
				return err
			}
			if sel == nil {
				continue
			}
			if err := configureColorGrid(sel.Level); err != nil {
				return err
			}
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}

		// New seed for each game unless one was fixed on the command line
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, gameLog)
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
