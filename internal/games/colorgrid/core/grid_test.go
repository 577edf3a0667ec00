package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
)

func TestParseRows(t *testing.T) {
	g, err := core.ParseRows([]string{"RG.", "bgr"})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if g.H != 2 || g.W != 3 {
		t.Fatalf("expected 2x3, got %dx%d", g.H, g.W)
	}

	testCases := []struct {
		row, col int
		color    core.Color
	}{
		{0, 0, core.ColorRed},
		{0, 1, core.ColorGreen},
		{0, 2, core.ColorEmpty},
		{1, 0, core.ColorBlue},
		{1, 2, core.ColorRed},
	}
	for _, tc := range testCases {
		if got := g.At(tc.row, tc.col); got != tc.color {
			t.Errorf("At(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.color)
		}
	}

	if g.String() != "RG.\nBGR" {
		t.Errorf("String() = %q", g.String())
	}
}

func TestParseRowsErrors(t *testing.T) {
	cases := map[string][]string{
		"no rows":      nil,
		"ragged":       {"RR", "R"},
		"empty row":    {""},
		"unknown char": {"RX"},
	}
	for name, rows := range cases {
		if _, err := core.ParseRows(rows); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := core.ParseRows([]string{"RR", "R"}); !errors.Is(err, core.ErrInvalidDimension) {
		t.Errorf("ragged rows should wrap ErrInvalidDimension, got %v", err)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := mustParse(t, "RG")

	if g.InBounds(-1, 0) || g.InBounds(0, 2) || g.InBounds(1, 0) {
		t.Error("InBounds accepted an outside coordinate")
	}
	if g.At(3, 3) != core.ColorEmpty {
		t.Error("out-of-bounds At should return ColorEmpty")
	}

	g.Set(5, 5, core.ColorBlue) // ignored
	if !g.Equal(mustParse(t, "RG")) {
		t.Error("out-of-bounds Set modified the grid")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustParse(t, "RG", "BB")
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should be equal to original")
	}

	g.Set(0, 0, core.ColorEmpty)
	if clone.At(0, 0) != core.ColorRed {
		t.Error("clone should not be affected by original modification")
	}

	rows := clone.Rows()
	rows[1][1] = core.ColorGreen
	if clone.At(1, 1) != core.ColorBlue {
		t.Error("Rows() should return a copy")
	}
}

func TestGridCounts(t *testing.T) {
	g := mustParse(t, "R.G", "RBB")

	if g.FilledCount() != 5 {
		t.Errorf("FilledCount() = %d, want 5", g.FilledCount())
	}
	counts := g.CountByColor()
	if counts[core.ColorRed] != 2 || counts[core.ColorGreen] != 1 || counts[core.ColorBlue] != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if g.IsCleared() {
		t.Error("grid with cells is not cleared")
	}
	if g.ColumnEmpty(1) {
		t.Error("column 1 has a blue cell")
	}
	if !mustParse(t, "..").IsCleared() {
		t.Error("all-empty grid should be cleared")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in    string
		color core.Color
		ok    bool
	}{
		{"red", core.ColorRed, true},
		{"G", core.ColorGreen, true},
		{" blue ", core.ColorBlue, true},
		{".", core.ColorEmpty, true},
		{"purple", core.ColorEmpty, false},
	}
	for _, tc := range cases {
		c, ok := core.ParseColor(tc.in)
		if c != tc.color || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tc.in, c, ok, tc.color, tc.ok)
		}
	}
}
