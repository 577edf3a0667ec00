package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
)

// newSession starts a session from fixed rows.
func newSession(t *testing.T, rows ...string) *core.Session {
	t.Helper()
	s, err := core.NewSessionWithGrid(mustParse(t, rows...), core.NewRNG(1))
	if err != nil {
		t.Fatalf("NewSessionWithGrid failed: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s, err := core.NewSession(8, 11, core.NewRNG(5))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if s.Height() != 8 || s.Width() != 11 {
		t.Errorf("expected 8x11, got %dx%d", s.Height(), s.Width())
	}
	if s.HistoryLen() != 1 {
		t.Errorf("expected history length 1, got %d", s.HistoryLen())
	}
	if s.Status() != core.StatusActive {
		t.Errorf("expected active status, got %v", s.Status())
	}
	if _, on := s.PaintColor(); on {
		t.Error("paint mode should start off")
	}
	if s.IsCompleted() {
		t.Error("new session should not be completed")
	}
}

func TestNewSessionInvalidDimensions(t *testing.T) {
	cases := []struct{ h, w int }{
		{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {51, 10}, {10, 51},
	}
	for _, tc := range cases {
		if _, err := core.NewSession(tc.h, tc.w, core.NewRNG(1)); !errors.Is(err, core.ErrInvalidDimension) {
			t.Errorf("NewSession(%d, %d): expected ErrInvalidDimension, got %v", tc.h, tc.w, err)
		}
	}
}

func TestSessionClickClearsAndPushes(t *testing.T) {
	s := newSession(t, "RR", "BB")

	if !s.Click(0, 0) {
		t.Fatal("click on a matching pair should be accepted")
	}
	if s.HistoryLen() != 2 {
		t.Errorf("expected history length 2, got %d", s.HistoryLen())
	}
	if want := mustParse(t, "..", "BB"); !s.Grid().Equal(want) {
		t.Errorf("grid after click:\n%s\nwant\n%s", s.Grid(), want)
	}
	if s.Status() != core.StatusActive {
		t.Errorf("grid is not empty, status should stay active, got %v", s.Status())
	}
}

func TestSessionNoOpClickPushesNothing(t *testing.T) {
	s := newSession(t, "RG", "GR")

	if s.Click(0, 0) {
		t.Error("isolated cell click should be rejected")
	}
	if s.Click(5, 5) {
		t.Error("out-of-bounds click should be rejected")
	}
	if s.HistoryLen() != 1 {
		t.Errorf("no-op clicks changed history length to %d", s.HistoryLen())
	}
}

func TestSessionWinClearsWholeGrid(t *testing.T) {
	s := newSession(t, "RRR")

	if !s.Click(0, 1) {
		t.Fatal("click should be accepted")
	}
	if s.Status() != core.StatusWon {
		t.Fatalf("expected won, got %v", s.Status())
	}
	if !s.Grid().IsCleared() {
		t.Error("grid should be all empty")
	}
	if !s.IsCompleted() {
		t.Error("won session should report completed")
	}
}

func TestSessionWinOnlyWhenAllEmpty(t *testing.T) {
	s := newSession(t, "RRG", "BBG")

	s.Click(0, 0) // clears R R
	if s.Status() != core.StatusActive {
		t.Fatalf("expected active after partial clear, got %v", s.Status())
	}
	s.Click(1, 0) // clears B B
	if s.Status() != core.StatusActive {
		t.Fatalf("expected active with greens left, got %v", s.Status())
	}
	if !s.Click(1, 0) { // greens have been compacted into column 0
		t.Fatalf("expected green pair to be clearable:\n%s", s.Grid())
	}
	if s.Status() != core.StatusWon {
		t.Errorf("expected won, got %v", s.Status())
	}
}

func TestSessionUndo(t *testing.T) {
	s := newSession(t, "RRG", "BBG")
	initial := s.Grid()

	if s.Undo() {
		t.Error("undo with only the initial grid should be rejected")
	}

	s.Click(0, 0)
	s.Click(1, 0)
	if s.HistoryLen() != 3 {
		t.Fatalf("expected history length 3, got %d", s.HistoryLen())
	}

	if !s.Undo() || !s.Undo() {
		t.Fatal("undo should be accepted twice")
	}
	if s.HistoryLen() != 1 {
		t.Errorf("expected history length 1, got %d", s.HistoryLen())
	}
	if !s.Grid().Equal(initial) {
		t.Errorf("undo should restore the initial grid:\n%s", s.Grid())
	}
	if s.Undo() {
		t.Error("history must never drop below 1")
	}
}

func TestSessionPaintMode(t *testing.T) {
	s := newSession(t, "RG", "GR")

	s.SetPaintColor(core.ColorBlue)
	if c, on := s.PaintColor(); !on || c != core.ColorBlue {
		t.Fatalf("expected blue paint mode, got %v on=%v", c, on)
	}

	if !s.Click(0, 0) {
		t.Fatal("paint click should be accepted")
	}
	if s.At(0, 0) != core.ColorBlue {
		t.Errorf("expected painted cell to be blue, got %v", s.At(0, 0))
	}
	if s.HistoryLen() != 2 {
		t.Errorf("expected history length 2, got %d", s.HistoryLen())
	}
	// No flood fill or reflow in paint mode.
	if want := mustParse(t, "BG", "GR"); !s.Grid().Equal(want) {
		t.Errorf("paint changed more than one cell:\n%s", s.Grid())
	}

	// Repainting with the same color still records a snapshot.
	s.Click(0, 0)
	if s.HistoryLen() != 3 {
		t.Errorf("expected history length 3, got %d", s.HistoryLen())
	}
}

func TestSessionPaintNeverWins(t *testing.T) {
	s := newSession(t, "..", "..")

	s.SetPaintColor(core.ColorRed)
	s.Click(1, 1)
	if s.Status() != core.StatusActive {
		t.Errorf("painting must not change status, got %v", s.Status())
	}

	// Clearing an all-empty grid does nothing either.
	s2 := newSession(t, "...")
	if s2.Click(0, 0) {
		t.Error("click on an all-empty grid should be rejected")
	}
	if s2.Status() != core.StatusActive {
		t.Errorf("expected active, got %v", s2.Status())
	}
}

func TestSessionPaintToggle(t *testing.T) {
	s := newSession(t, "RG")

	s.SelectColorControl(core.ColorRed)
	s.SelectColorControl(core.ColorRed)
	if _, on := s.PaintColor(); on {
		t.Error("selecting the selected color again should turn paint mode off")
	}

	s.SelectColorControl(core.ColorRed)
	s.SelectColorControl(core.ColorGreen)
	if c, on := s.PaintColor(); !on || c != core.ColorGreen {
		t.Errorf("expected green paint mode, got %v on=%v", c, on)
	}

	s.SetPaintColor(core.ColorEmpty)
	if _, on := s.PaintColor(); on {
		t.Error("ColorEmpty should turn paint mode off")
	}
}

func TestSessionPaintIgnoresUnknownColor(t *testing.T) {
	s := newSession(t, "RG")

	s.SetPaintColor(core.Color(9))
	if _, on := s.PaintColor(); on {
		t.Fatal("unknown color should not turn paint mode on")
	}

	s.SetPaintColor(core.ColorBlue)
	s.SetPaintColor(core.Color(9))
	if c, on := s.PaintColor(); !on || c != core.ColorBlue {
		t.Errorf("unknown color should keep blue paint mode, got %v on=%v", c, on)
	}

	s.Click(0, 0)
	if s.At(0, 0) != core.ColorBlue {
		t.Errorf("expected blue cell, got %v", s.At(0, 0))
	}
}

func TestSessionTerminalImmutability(t *testing.T) {
	winning := newSession(t, "GG")
	winning.Click(0, 0)

	lost := newSession(t, "RR", "GB")
	if !lost.TimerExpired() {
		t.Fatal("timer expiry on an active session should be accepted")
	}

	for name, s := range map[string]*core.Session{"won": winning, "lost": lost} {
		t.Run(name, func(t *testing.T) {
			if !s.IsCompleted() {
				t.Fatalf("expected completed, got %v", s.Status())
			}
			status := s.Status()
			length := s.HistoryLen()
			grid := s.Grid()

			s.SetPaintColor(core.ColorBlue)
			clicked := s.Click(0, 0)
			undone := s.Undo()
			expired := s.TimerExpired()

			if clicked || undone || expired {
				t.Errorf("terminal session accepted click=%v undo=%v expire=%v", clicked, undone, expired)
			}
			if s.Status() != status || s.HistoryLen() != length || !s.Grid().Equal(grid) {
				t.Error("terminal session state changed")
			}
		})
	}
}

func TestSessionReset(t *testing.T) {
	s := newSession(t, "RRR")
	s.SetPaintColor(core.ColorGreen)
	s.SetPaintColor(core.ColorEmpty)
	s.Click(0, 0)
	if s.Status() != core.StatusWon {
		t.Fatalf("expected won, got %v", s.Status())
	}
	s.SetPaintColor(core.ColorGreen)

	if err := s.Reset(4, 6); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if s.Status() != core.StatusActive {
		t.Errorf("expected active after reset, got %v", s.Status())
	}
	if s.HistoryLen() != 1 {
		t.Errorf("expected history length 1, got %d", s.HistoryLen())
	}
	if s.Height() != 4 || s.Width() != 6 {
		t.Errorf("expected 4x6, got %dx%d", s.Height(), s.Width())
	}
	if _, on := s.PaintColor(); on {
		t.Error("reset should clear paint mode")
	}
	if s.Grid().FilledCount() != 24 {
		t.Error("generated grid should have no empty cells")
	}
}

func TestSessionResetInvalidKeepsState(t *testing.T) {
	s := newSession(t, "RR", "GB")
	s.Click(0, 0)
	before := s.Grid()

	if err := s.Reset(0, 3); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if s.HistoryLen() != 2 || !s.Grid().Equal(before) {
		t.Error("failed reset must not touch the session")
	}
	if err := s.ResetWithGrid(nil); !errors.Is(err, core.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for nil grid, got %v", err)
	}
}

func TestSessionGridIsACopy(t *testing.T) {
	s := newSession(t, "RR", "GG")

	g := s.Grid()
	g.Set(0, 0, core.ColorBlue)

	if s.At(0, 0) != core.ColorRed {
		t.Error("mutating a returned grid must not affect the session")
	}
}

func TestSessionHistoryMonotonicity(t *testing.T) {
	rng := core.NewRNG(2024)
	s, err := core.NewSession(6, 6, rng)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	for i := range 500 {
		before := s.HistoryLen()
		var accepted bool
		var delta int

		switch rng.Intn(4) {
		case 0:
			accepted = s.Undo()
			delta = -1
		case 1:
			s.SetPaintColor(core.PaintColors()[rng.Intn(3)])
			continue
		default:
			accepted = s.Click(rng.Intn(7), rng.Intn(7))
			delta = 1
		}

		after := s.HistoryLen()
		switch {
		case accepted && after != before+delta:
			t.Fatalf("step %d: accepted op moved history %d -> %d", i, before, after)
		case !accepted && after != before:
			t.Fatalf("step %d: rejected op moved history %d -> %d", i, before, after)
		case after < 1:
			t.Fatalf("step %d: history dropped below 1", i)
		}
		if s.Status() == core.StatusWon && !s.Grid().IsCleared() {
			t.Fatalf("step %d: won with cells left", i)
		}
		if s.Moves() != after-1 {
			t.Fatalf("step %d: Moves() = %d, want %d", i, s.Moves(), after-1)
		}
	}
}
