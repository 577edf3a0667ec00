package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetWithColor(2, 3, '█', ColorRed)
	if cell := s.GetCell(2, 3); cell.Rune != '█' || cell.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v, expected red block", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := range 10 {
		for x := range 10 {
			s.SetWithColor(x, y, 'X', ColorBlue)
		}
	}

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("after Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextWithColor(2, 1, "Héllo", ColorGreen)

	if got := s.Row(1); !strings.HasPrefix(got, "  Héllo") {
		t.Errorf("Row(1) = %q, expected text at column 2", got)
	}
	// Multi-byte runes take one column each.
	if s.Get(6, 1) != 'o' {
		t.Errorf("Get(6, 1) = %q, expected 'o'", s.Get(6, 1))
	}
	if s.GetCell(3, 1).Color != ColorGreen {
		t.Error("text should carry its color")
	}

	// Clipped at the edge
	s.DrawText(18, 2, "abc")
	if s.Get(18, 2) != 'a' || s.Get(19, 2) != 'b' {
		t.Error("visible part of clipped text missing")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "WIN")

	if s.Row(1) != "        WIN         " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '#')

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 2 && y < 4
			if got := s.Get(x, y) == '#'; got != inside {
				t.Errorf("(%d, %d): filled=%v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y)[:len(want)]; got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(1, 1, 4, '─', ColorGray)

	if s.Row(1) != " ────     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetWithColor(1, 1, 'X', ColorRed)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if cell := s.GetCell(1, 1); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("content inside the new bounds should survive, got %+v", cell)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content cut by shrinking should not come back")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if s.Row(0) != "ab  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(5) != "    " {
		t.Errorf("out of range Row = %q", s.Row(5))
	}
}
