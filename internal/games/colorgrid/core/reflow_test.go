package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
)

// assertPacked checks that empty cells sit on top of every column and that
// every fully empty column lies to the right of all non-empty columns.
func assertPacked(t *testing.T, g *core.Grid) {
	t.Helper()

	seenEmptyColumn := false
	for col := range g.W {
		if g.ColumnEmpty(col) {
			seenEmptyColumn = true
			continue
		}
		if seenEmptyColumn {
			t.Fatalf("non-empty column %d right of an empty column:\n%s", col, g)
		}

		filled := false
		for row := range g.H {
			if !g.At(row, col).IsEmpty() {
				filled = true
			} else if filled {
				t.Fatalf("gap below a filled cell at (%d,%d):\n%s", row, col, g)
			}
		}
	}
}

func TestReflow(t *testing.T) {
	tests := []struct {
		name string
		grid []string
		want []string
	}{
		{
			name: "column keeps relative order",
			grid: []string{"R", ".", "G", "."},
			want: []string{".", ".", "R", "G"},
		},
		{
			name: "already settled",
			grid: []string{"..", "BB"},
			want: []string{"..", "BB"},
		},
		{
			name: "single row with several empty columns",
			grid: []string{"R.G.B"},
			want: []string{"RGB.."},
		},
		{
			name: "leading and inner empty columns",
			grid: []string{".R..", ".G.B"},
			want: []string{"R...", "GB.."},
		},
		{
			name: "every column collapses independently",
			grid: []string{"R.B", ".G.", "..R"},
			want: []string{"...", "..B", "RGR"},
		},
		{
			name: "all empty",
			grid: []string{"...", "..."},
			want: []string{"...", "..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.grid...)
			core.Reflow(g)
			want := mustParse(t, tt.want...)
			if !g.Equal(want) {
				t.Errorf("Reflow: got\n%s\nwant\n%s", g, want)
			}
		})
	}
}

func TestReflowConservesColors(t *testing.T) {
	rng := core.NewRNG(7)
	palette := []core.Color{core.ColorEmpty, core.ColorRed, core.ColorGreen, core.ColorBlue}

	for i := range 300 {
		g, err := core.NewGrid(1+rng.Intn(10), 1+rng.Intn(10))
		if err != nil {
			t.Fatalf("NewGrid failed: %v", err)
		}
		for j := range g.Cells {
			g.Cells[j] = palette[rng.Intn(len(palette))]
		}
		before := g.CountByColor()

		core.Reflow(g)

		after := g.CountByColor()
		for _, c := range core.PaintColors() {
			if before[c] != after[c] {
				t.Fatalf("case %d: %v count changed from %d to %d", i, c, before[c], after[c])
			}
		}
		assertPacked(t, g)
	}
}

func TestReflowPreservesColumnOrder(t *testing.T) {
	rng := core.NewRNG(99)

	for i := range 100 {
		height, width := 1+rng.Intn(6), 1+rng.Intn(8)
		g, _ := core.NewGrid(height, width)

		// Build already-settled columns, some of them empty.
		var expected [][]core.Color
		for col := range width {
			filled := rng.Intn(height + 1)
			column := make([]core.Color, height)
			for row := height - filled; row < height; row++ {
				column[row] = core.PaintColors()[rng.Intn(3)]
				g.Set(row, col, column[row])
			}
			if filled > 0 {
				expected = append(expected, column)
			}
		}

		core.Reflow(g)

		for col := range width {
			for row := range height {
				want := core.ColorEmpty
				if col < len(expected) {
					want = expected[col][row]
				}
				if got := g.At(row, col); got != want {
					t.Fatalf("case %d: cell (%d,%d) = %v, want %v\n%s", i, row, col, got, want, g)
				}
			}
		}
	}
}
