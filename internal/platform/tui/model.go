package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

// maxFrameDT caps the wall time a single tick may report, so a stalled
// terminal does not burn the whole countdown in one frame.
const maxFrameDT = 250 * time.Millisecond

// helpKey toggles the full key help.
var helpKey = key.NewBinding(
	key.WithKeys("?"),
	key.WithHelp("?", "help"),
)

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        uint64 // Tick generation owned by this model
	lastTick   time.Time
	roundStart time.Time
	lastResult string // ID of the last saved result
	showHelp   bool
	autoPaused bool // Paused by opening the help screen
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for this round
}

// NewModel creates a new Bubble Tea model for the given game.
// The store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel)
	}

	h := help.New()
	h.ShowAll = true

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gen:        nextTickGen(),
		roundStart: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showHelp {
			m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, helpKey):
		m.toggleHelp()
		return m, nil

	case key.Matches(msg, keys.Back):
		if m.showHelp {
			m.toggleHelp()
			return m, nil
		}
		m.backToMenu = true
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// toggleHelp shows or hides the help screen. A running round is paused
// while help is open.
func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	switch {
	case m.showHelp && !m.gameState.Paused && !m.gameState.GameOver:
		m.inputFrame.Set(core.ActionPause)
		m.autoPaused = true
	case !m.showHelp && m.autoPaused:
		if m.gameState.Paused {
			m.inputFrame.Set(core.ActionPause)
		}
		m.autoPaused = false
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// Games that can follow a resize keep their state; others start over.
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.DT = min(now.Sub(m.lastTick), maxFrameDT)
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// The game restarts itself; a new round begins when game over clears.
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.roundStart = now
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult(now)
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordResult saves the score and the round summary. Failures are
// logged and the game continues.
func (m *Model) recordResult(now time.Time) {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("cannot save score", "game", m.game.ID(), "error", err)
		}
	}

	s, ok := m.game.(registry.Summarizer)
	if !ok {
		return
	}
	sum, done := s.Summary()
	if !done {
		return
	}

	duration := now.Sub(m.roundStart)
	if t, ok := m.game.(registry.Timed); ok {
		duration = t.Elapsed()
	}

	id, err := m.store.SaveResult(storage.Result{
		GameID:   m.game.ID(),
		Outcome:  sum.Outcome,
		Height:   sum.Height,
		Width:    sum.Width,
		Moves:    sum.Moves,
		Score:    sum.Score,
		Duration: duration,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "game", m.game.ID(), "error", err)
		return
	}
	m.lastResult = id
	m.logger.Debug("result saved", "id", id, "outcome", sum.Outcome, "moves", sum.Moves)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.helpView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// helpView renders the full key help.
func (m Model) helpView() string {
	t := GetTheme()
	title := t.Title.Render(m.game.Title() + " - keys")
	body := m.help.View(m.keyMapper.Keys())
	footer := t.Controls.Render("? or esc to return")
	return "\n" + centerText(title, m.config.ScreenW) + "\n\n" +
		t.Border.Render(body) + "\n\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastResult returns the ID of the most recently saved result, if any.
func (m Model) LastResult() string {
	return m.lastResult
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks select cells
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
