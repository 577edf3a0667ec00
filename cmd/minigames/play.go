package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels"
	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHeight     int
	flagWidth      int
	flagTimer      int
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: colorgrid).

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Click the cell under the cursor (mouse clicks work too)
  1/2/3        - Paint red/green/blue, press again to leave paint mode
  0            - Back to clear mode
  U            - Undo
  + - [ ]      - Change rows and columns (starts a new board)
  < >          - Change the timer (starts a new board)
  R            - New board
  P            - Pause
  ?            - Key help
  Esc          - Back
  Q/Ctrl+C     - Quit

Difficulty options set the timer:
  easy   - 60 seconds
  normal - 30 seconds
  hard   - 15 seconds

Examples:
  minigames play
  minigames play colorgrid --difficulty hard
  minigames play colorgrid --height 5 --width 6 --timer 90
  minigames play colorgrid --level lvl03
  minigames play colorgrid --level ./boards/mine.yaml
  minigames play colorgrid --config ./my-colorgrid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Number of rows (overrides config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Number of columns (overrides config)")
	playCmd.Flags().IntVar(&flagTimer, "timer", 0, "Countdown in seconds (overrides config)")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Built-in board ID or path to a board YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'minigames list' to see available games", gameID)
	}

	if gameID == defaultGame {
		level, err := resolveLevel(flagLevel)
		if err != nil {
			return err
		}
		if err := configureColorGrid(level); err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	gameLog, closeLog := fileLogger()
	defer closeLog()

	if _, err := tui.Run(game, store, runtimeConfig(), gameLog); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// configureColorGrid loads the Color Grid config, applies the difficulty
// preset and flag overrides, and hands the result to the game factory.
func configureColorGrid(level *levels.Level) error {
	cfg, err := config.LoadColorGrid(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyColorGridPreset(&cfg, preset)
	}

	config.Overrides{
		Height: flagHeight,
		Width:  flagWidth,
		Timer:  flagTimer,
	}.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("color grid configured",
		"height", cfg.Grid.Height,
		"width", cfg.Grid.Width,
		"timer", cfg.Timer.Duration,
	)
	colorgrid.Configure(colorgrid.Options{Config: cfg, Level: level})
	return nil
}

// resolveLevel loads a preset board by built-in ID or file path.
// An empty reference means random boards.
func resolveLevel(ref string) (*levels.Level, error) {
	if ref == "" {
		return nil, nil
	}
	lvl, err := levels.Resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("cannot load board %q: %w", ref, err)
	}
	logger.Debug("board loaded", "id", lvl.ID, "size", fmt.Sprintf("%dx%d", lvl.Height, lvl.Width))
	return &lvl, nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure is logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fileLogger returns a logger writing to ~/.arcade/minigames.log, for use
// while the terminal is taken over by the game. It returns nil, which
// silences game logging, if the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "minigames.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Debug("game log disabled", "error", err)
		return nil, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minigames",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}
