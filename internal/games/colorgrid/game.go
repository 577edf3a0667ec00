// Package colorgrid provides the Color Grid match-and-clear puzzle for the
// arcade. The puzzle rules live in the core subpackage; this package maps
// platform input onto a session, runs the countdown and draws the board.
package colorgrid

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	platformcore "github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/levels"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// Options configures games created by the registry factory.
type Options struct {
	Config config.ColorGridConfig
	Level  *levels.Level // Preset board, nil for random boards
}

var (
	optionsMu sync.RWMutex
	options   = Options{Config: config.DefaultColorGridConfig()}
)

// Configure sets the options used by games created afterwards.
func Configure(o Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	options = o
}

func currentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return options
}

func init() {
	registry.Register("colorgrid", func() registry.Game {
		return New(currentOptions())
	})
}

// Game implements the Color Grid puzzle.
type Game struct {
	cfg   config.ColorGridConfig
	level *levels.Level

	rng     *rand.Rand
	session *core.Session
	timer   *platformcore.Countdown

	// Board settings, changed at runtime with the size and timer keys
	height       int
	width        int
	timerSeconds int

	// Cursor position in grid coordinates
	cursorRow int
	cursorCol int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	paused bool
}

// New creates a Color Grid game.
func New(o Options) *Game {
	return &Game{
		cfg:   o.Config,
		level: o.Level,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "colorgrid"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Grid"
}

// Reset initializes the game with a fresh board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	g.height = clampDimension(g.cfg.Grid.Height)
	g.width = clampDimension(g.cfg.Grid.Width)
	g.timerSeconds = g.cfg.Timer.Duration
	if g.level != nil {
		g.height = g.level.Height
		g.width = g.level.Width
		if g.level.Timer > 0 {
			g.timerSeconds = g.cfg.Timer.Clamp(g.level.Timer)
		}
	}
	g.cursorRow, g.cursorCol = 0, 0

	g.session = nil
	g.timer = platformcore.NewCountdown(
		g.timerDuration(),
		g.cfg.Timer.Cadence(),
		func() bool { return g.session.IsCompleted() },
		func() { g.session.TimerExpired() },
	)
	g.newBoard()
}

// Resize follows a terminal resize without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
}

// newBoard starts a new round with the current settings and restarts
// the countdown. A loaded preset is replayed as long as the dimensions
// still match it.
func (g *Game) newBoard() {
	preset := g.level != nil && g.level.Height == g.height && g.level.Width == g.width

	var err error
	switch {
	case g.session == nil && preset:
		g.session, err = core.NewSessionWithGrid(g.level.ToGrid(), g.rng)
	case g.session == nil:
		g.session, err = core.NewSession(g.height, g.width, g.rng)
	case preset:
		err = g.session.ResetWithGrid(g.level.ToGrid())
	default:
		err = g.session.Reset(g.height, g.width)
	}
	if err != nil {
		// Unreachable: dimensions are clamped to the valid range.
		panic(err)
	}

	g.cursorRow = platformcore.Clamp(g.cursorRow, 0, g.height-1)
	g.cursorCol = platformcore.Clamp(g.cursorCol, 0, g.width-1)
	g.paused = false
	g.timer.Restart(g.timerDuration())
}

func clampDimension(n int) int {
	return platformcore.Clamp(n, core.MinDimension, core.MaxDimension)
}

func (g *Game) timerDuration() time.Duration {
	return time.Duration(g.timerSeconds) * time.Second
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionPause) && !g.session.IsCompleted() {
		g.paused = !g.paused
	}

	g.handleSettings(in)

	if !g.paused {
		g.handleBoard(in)

		dt := in.DT
		if dt <= 0 {
			dt = time.Second / time.Duration(g.tickRate)
		}
		g.timer.Advance(dt)
	}

	return platformcore.StepResult{State: g.State()}
}

// handleSettings processes restart, size and timer keys. Each of them
// starts a new round.
func (g *Game) handleSettings(in platformcore.InputFrame) {
	restart := in.Has(platformcore.ActionRestart)

	resize := func(v *int, delta int) {
		next := clampDimension(*v + delta)
		if next != *v {
			*v = next
			restart = true
		}
	}
	if in.Has(platformcore.ActionGrowHeight) {
		resize(&g.height, 1)
	}
	if in.Has(platformcore.ActionShrinkHeight) {
		resize(&g.height, -1)
	}
	if in.Has(platformcore.ActionGrowWidth) {
		resize(&g.width, 1)
	}
	if in.Has(platformcore.ActionShrinkWidth) {
		resize(&g.width, -1)
	}

	retime := func(delta int) {
		next := g.cfg.Timer.Clamp(g.timerSeconds + delta)
		if next != g.timerSeconds {
			g.timerSeconds = next
			restart = true
		}
	}
	if in.Has(platformcore.ActionTimerUp) {
		retime(g.cfg.Timer.Step)
	}
	if in.Has(platformcore.ActionTimerDown) {
		retime(-g.cfg.Timer.Step)
	}

	if restart {
		g.newBoard()
	}
}

// handleBoard processes cursor, paint and click input.
func (g *Game) handleBoard(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionUp) {
		g.moveCursor(-1, 0)
	}
	if in.Has(platformcore.ActionDown) {
		g.moveCursor(1, 0)
	}
	if in.Has(platformcore.ActionLeft) {
		g.moveCursor(0, -1)
	}
	if in.Has(platformcore.ActionRight) {
		g.moveCursor(0, 1)
	}

	paints := []struct {
		action platformcore.Action
		color  core.Color
	}{
		{platformcore.ActionPaintRed, core.ColorRed},
		{platformcore.ActionPaintGreen, core.ColorGreen},
		{platformcore.ActionPaintBlue, core.ColorBlue},
	}
	for _, p := range paints {
		if in.Has(p.action) {
			g.session.SelectColorControl(p.color)
		}
	}
	if in.Has(platformcore.ActionPaintOff) {
		g.session.SetPaintColor(core.ColorEmpty)
	}

	if in.Has(platformcore.ActionUndo) {
		g.session.Undo()
	}

	if in.Click != nil {
		if row, col, ok := g.layout().cellAt(in.Click.X, in.Click.Y); ok {
			g.cursorRow, g.cursorCol = row, col
			g.session.Click(row, col)
		}
	}
	if in.Has(platformcore.ActionConfirm) {
		g.session.Click(g.cursorRow, g.cursorCol)
	}
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursorRow = platformcore.Clamp(g.cursorRow+dRow, 0, g.height-1)
	g.cursorCol = platformcore.Clamp(g.cursorCol+dCol, 0, g.width-1)
}

// State returns the current game state. The score is the number of
// cleared cells.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.session.Cleared(),
		GameOver: g.session.IsCompleted(),
		Won:      g.session.Status() == core.StatusWon,
		Paused:   g.paused,
	}
}

// Summary describes the finished round for the results log.
func (g *Game) Summary() (platformcore.Summary, bool) {
	if g.session == nil || !g.session.IsCompleted() {
		return platformcore.Summary{}, false
	}
	return platformcore.Summary{
		Outcome: g.session.Status().String(),
		Height:  g.session.Height(),
		Width:   g.session.Width(),
		Moves:   g.session.Moves(),
		Score:   g.session.Cleared(),
	}, true
}

// Session exposes the running session, mainly for tests.
func (g *Game) Session() *core.Session {
	return g.session
}

// Timer exposes the running countdown, mainly for tests.
func (g *Game) Timer() *platformcore.Countdown {
	return g.timer
}

// Elapsed returns the countdown time consumed by the current round.
func (g *Game) Elapsed() time.Duration {
	if g.timer == nil {
		return 0
	}
	return g.timer.Elapsed()
}

// Cursor returns the cursor position in grid coordinates.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}
