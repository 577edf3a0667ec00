package core

import "fmt"

// Status is the lifecycle state of a session.
type Status uint8

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Session owns a grid history, the paint-mode selection and the win/loss
// status. All mutations go through its methods; the grids it hands out
// are copies.
//
// Operations with unmet preconditions (wrong status, out-of-range cell,
// nothing to undo) are silent no-ops. Only dimension validation fails.
//
// A Session is not safe for concurrent use.
type Session struct {
	history []*Grid // Oldest first; the last element is the current grid
	paint   Color   // ColorEmpty means paint mode is off
	status  Status
	src     Source
}

// NewSession creates a session with a freshly generated grid.
func NewSession(height, width int, src Source) (*Session, error) {
	s := &Session{src: src}
	if err := s.Reset(height, width); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWithGrid creates a session that starts from a copy of g.
// The source is used for later resets.
func NewSessionWithGrid(g *Grid, src Source) (*Session, error) {
	s := &Session{src: src}
	if err := s.ResetWithGrid(g); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the history and starts over with a new generated grid
// of the given dimensions. Paint mode is cleared and the status returns
// to active. On invalid dimensions the session is left unchanged.
func (s *Session) Reset(height, width int) error {
	g, err := Generate(height, width, s.src)
	if err != nil {
		return err
	}
	s.restart(g)
	return nil
}

// ResetWithGrid is Reset with a caller-provided starting grid.
func (s *Session) ResetWithGrid(g *Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidDimension)
	}
	if err := ValidateDimensions(g.H, g.W); err != nil {
		return err
	}
	if len(g.Cells) != g.H*g.W {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimension, len(g.Cells), g.H, g.W)
	}
	s.restart(g.Clone())
	return nil
}

// restart installs g as the only snapshot.
func (s *Session) restart(g *Grid) {
	s.history = []*Grid{g}
	s.paint = ColorEmpty
	s.status = StatusActive
}

// current returns the latest snapshot without copying.
func (s *Session) current() *Grid {
	return s.history[len(s.history)-1]
}

// Click reacts to a click on (row, col) and reports whether it was accepted.
//
// In paint mode the cell is set to the paint color and the result is pushed
// without flood fill, reflow or a win check. Otherwise the cell's region is
// cleared and reflowed; a click that clears nothing pushes nothing. Clearing
// the last cell wins the game.
func (s *Session) Click(row, col int) bool {
	if s.status != StatusActive {
		return false
	}
	cur := s.current()
	if !cur.InBounds(row, col) {
		return false
	}

	if s.paint != ColorEmpty {
		next := cur.Clone()
		next.Set(row, col, s.paint)
		s.history = append(s.history, next)
		return true
	}

	next, changed := ApplyClear(cur, row, col)
	if !changed {
		return false
	}
	s.history = append(s.history, next)

	if next.IsCleared() {
		s.status = StatusWon
	}
	return true
}

// Undo drops the most recent snapshot. The initial grid is never removed
// and nothing can be undone once the session has ended.
func (s *Session) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	s.history[len(s.history)-1] = nil
	s.history = s.history[:len(s.history)-1]
	return true
}

// CanUndo reports whether Undo would have an effect.
func (s *Session) CanUndo() bool {
	return s.status == StatusActive && len(s.history) > 1
}

// SetPaintColor toggles paint mode. Selecting the color that is already
// selected, or ColorEmpty, turns paint mode off. Unknown colors are ignored.
func (s *Session) SetPaintColor(c Color) {
	if c > ColorBlue {
		return
	}
	if c == s.paint {
		s.paint = ColorEmpty
		return
	}
	s.paint = c
}

// SelectColorControl is the color-picker entry point; it behaves exactly
// like SetPaintColor.
func (s *Session) SelectColorControl(c Color) {
	s.SetPaintColor(c)
}

// PaintColor returns the selected paint color and whether paint mode is on.
func (s *Session) PaintColor() (Color, bool) {
	return s.paint, s.paint != ColorEmpty
}

// TimerExpired ends an active session as lost. Expiry after the session
// has already ended is ignored. Reports whether the status changed.
func (s *Session) TimerExpired() bool {
	if s.status != StatusActive {
		return false
	}
	s.status = StatusLost
	return true
}

// IsCompleted reports whether the session has left the active state.
// Timers use it to stop ticking once the game is over.
func (s *Session) IsCompleted() bool {
	return s.status.Terminal()
}

// Status returns the current status.
func (s *Session) Status() Status {
	return s.status
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *Grid {
	return s.current().Clone()
}

// At returns the color of a cell in the current grid.
func (s *Session) At(row, col int) Color {
	return s.current().At(row, col)
}

// Region returns the cells a click on (row, col) would clear in the
// current grid, or nil if the click would do nothing.
func (s *Session) Region(row, col int) []Coord {
	return Region(s.current(), row, col)
}

// HistoryLen returns the number of snapshots, always at least 1.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// Moves returns the number of accepted clicks not undone.
func (s *Session) Moves() int {
	return len(s.history) - 1
}

// Height returns the number of rows.
func (s *Session) Height() int {
	return s.current().H
}

// Width returns the number of columns.
func (s *Session) Width() int {
	return s.current().W
}

// Cleared returns the number of empty cells in the current grid.
func (s *Session) Cleared() int {
	g := s.current()
	return len(g.Cells) - g.FilledCount()
}
