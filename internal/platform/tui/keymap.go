package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/core"
)

// KeyMap holds the in-game key bindings. It doubles as the help.KeyMap
// for the help bar.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Confirm      key.Binding
	Undo         key.Binding
	Restart      key.Binding
	Pause        key.Binding
	PaintRed     key.Binding
	PaintGreen   key.Binding
	PaintBlue    key.Binding
	PaintOff     key.Binding
	GrowHeight   key.Binding
	ShrinkHeight key.Binding
	GrowWidth    key.Binding
	ShrinkWidth  key.Binding
	TimerUp      key.Binding
	TimerDown    key.Binding
	Screenshot   key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Undo, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Confirm},
		{k.PaintRed, k.PaintGreen, k.PaintBlue, k.PaintOff},
		{k.GrowHeight, k.ShrinkHeight, k.GrowWidth, k.ShrinkWidth},
		{k.TimerUp, k.TimerDown, k.Undo, k.Restart},
		{k.Pause, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "undo"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		PaintRed: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "paint red"),
		),
		PaintGreen: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "paint green"),
		),
		PaintBlue: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "paint blue"),
		),
		PaintOff: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear mode"),
		),
		GrowHeight: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more rows"),
		),
		ShrinkHeight: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer rows"),
		),
		GrowWidth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more columns"),
		),
		ShrinkWidth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer columns"),
		),
		TimerUp: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "more time"),
		),
		TimerDown: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "less time"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper over custom bindings.
func NewKeyMapperWith(k KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: k,
		bindings: []actionBinding{
			{k.Up, core.ActionUp},
			{k.Down, core.ActionDown},
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Confirm, core.ActionConfirm},
			{k.Undo, core.ActionUndo},
			{k.Restart, core.ActionRestart},
			{k.Pause, core.ActionPause},
			{k.PaintRed, core.ActionPaintRed},
			{k.PaintGreen, core.ActionPaintGreen},
			{k.PaintBlue, core.ActionPaintBlue},
			{k.PaintOff, core.ActionPaintOff},
			{k.GrowHeight, core.ActionGrowHeight},
			{k.ShrinkHeight, core.ActionShrinkHeight},
			{k.GrowWidth, core.ActionGrowWidth},
			{k.ShrinkWidth, core.ActionShrinkWidth},
			{k.TimerUp, core.ActionTimerUp},
			{k.TimerDown, core.ActionTimerDown},
		},
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as the frame's click.
// Returns true if the event was used.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.SetClick(msg.X, msg.Y)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
