package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents and never see raw keys.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, K, Up arrow - move cursor up
	ActionDown                // S, J, Down arrow - move cursor down
	ActionLeft                // A, H, Left arrow - move cursor left
	ActionRight               // D, L, Right arrow - move cursor right
	ActionConfirm             // Space, Enter - click the cell under the cursor
	ActionUndo                // U - take back the last move
	ActionRestart             // R - start a new board
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P - pause/unpause game
	ActionPaintRed            // 1 - select red paint
	ActionPaintGreen          // 2 - select green paint
	ActionPaintBlue           // 3 - select blue paint
	ActionPaintOff            // 0 - leave paint mode
	ActionGrowHeight          // + - one more row
	ActionShrinkHeight        // - - one row less
	ActionGrowWidth           // ] - one more column
	ActionShrinkWidth         // [ - one column less
	ActionTimerUp             // > - longer countdown
	ActionTimerDown           // < - shorter countdown
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionConfirm:      "Confirm",
	ActionUndo:         "Undo",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
	ActionPaintRed:     "PaintRed",
	ActionPaintGreen:   "PaintGreen",
	ActionPaintBlue:    "PaintBlue",
	ActionPaintOff:     "PaintOff",
	ActionGrowHeight:   "GrowHeight",
	ActionShrinkHeight: "ShrinkHeight",
	ActionGrowWidth:    "GrowWidth",
	ActionShrinkWidth:  "ShrinkWidth",
	ActionTimerUp:      "TimerUp",
	ActionTimerDown:    "TimerDown",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Pointer is a mouse click in screen coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and an
// optional pointer click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is the last left-button press of the frame, nil if none.
	Click *Pointer

	// DT is the wall-clock time covered by this frame. Zero means one
	// nominal tick at the configured tick rate.
	DT time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer click at screen position (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Pointer{X: x, Y: y}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return f.Click == nil && len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
	f.DT = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.DT = f.DT
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}
