// Package core implements the Color Grid puzzle: grid generation, region
// clearing with gravity reflow, and the session state machine with undo.
// This package is UI-agnostic and deterministic given its random source.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Grid dimension bounds, inclusive.
const (
	MinDimension = 1
	MaxDimension = 50
)

// ErrInvalidDimension is returned when a height or width is outside
// [MinDimension, MaxDimension].
var ErrInvalidDimension = errors.New("colorgrid: invalid dimension")

// Coord addresses a cell by row and column.
// Row 0 is the top row, column 0 the leftmost column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rectangular matrix of colors stored in row-major order:
// index = row*W + col.
type Grid struct {
	H     int     // Number of rows
	W     int     // Number of columns
	Cells []Color // Flat array of cells, length H*W
}

// ValidateDimensions checks that height and width are within bounds.
func ValidateDimensions(height, width int) error {
	if height < MinDimension || height > MaxDimension {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidDimension, height, MinDimension, MaxDimension)
	}
	if width < MinDimension || width > MaxDimension {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidDimension, width, MinDimension, MaxDimension)
	}
	return nil
}

// NewGrid creates a grid with every cell empty.
func NewGrid(height, width int) (*Grid, error) {
	if err := ValidateDimensions(height, width); err != nil {
		return nil, err
	}
	return &Grid{
		H:     height,
		W:     width,
		Cells: make([]Color, height*width),
	}, nil
}

// FromRows builds a grid from a row-major matrix.
// All rows must have the same non-zero length.
func FromRows(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, r, len(row), g.W)
		}
		copy(g.Cells[r*g.W:(r+1)*g.W], row)
	}
	return g, nil
}

// ParseRows builds a grid from strings of color letters (R, G, B and '.').
func ParseRows(lines []string) (*Grid, error) {
	rows := make([][]Color, len(lines))
	for r, line := range lines {
		rows[r] = make([]Color, 0, len(line))
		for _, ch := range line {
			c, ok := ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("row %d: unknown color %q", r, ch)
			}
			rows[r] = append(rows[r], c)
		}
	}
	return FromRows(rows)
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.W + col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the color at the given cell.
// Returns ColorEmpty if out of bounds.
func (g *Grid) At(row, col int) Color {
	if !g.InBounds(row, col) {
		return ColorEmpty
	}
	return g.Cells[g.index(row, col)]
}

// Set stores a color at the given cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, c Color) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		H:     g.H,
		W:     g.W,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as a row-major matrix.
func (g *Grid) Rows() [][]Color {
	rows := make([][]Color, g.H)
	for r := range g.H {
		rows[r] = make([]Color, g.W)
		copy(rows[r], g.Cells[r*g.W:(r+1)*g.W])
	}
	return rows
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, c := range g.Cells {
		if !c.IsEmpty() {
			count++
		}
	}
	return count
}

// IsCleared returns true if every cell is empty.
func (g *Grid) IsCleared() bool {
	return g.FilledCount() == 0
}

// CountByColor returns the number of cells of each non-empty color.
func (g *Grid) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range g.Cells {
		if !c.IsEmpty() {
			counts[c]++
		}
	}
	return counts
}

// ColumnEmpty reports whether every cell in the column is empty.
func (g *Grid) ColumnEmpty(col int) bool {
	for r := range g.H {
		if !g.At(r, col).IsEmpty() {
			return false
		}
	}
	return true
}

// String renders the grid as lines of color letters, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.H * (g.W + 1))
	for r := range g.H {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.W {
			sb.WriteRune(g.At(r, c).Char())
		}
	}
	return sb.String()
}
