package core

// neighbors are the orthogonal offsets (row, col) used by the flood fill.
// Diagonals never connect cells.
var neighbors = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// hasMatchingNeighbor reports whether any in-bounds orthogonal neighbor of
// (row, col) has color c.
func hasMatchingNeighbor(g *Grid, row, col int, c Color) bool {
	for _, d := range neighbors {
		nr, nc := row+d[0], col+d[1]
		if g.InBounds(nr, nc) && g.At(nr, nc) == c {
			return true
		}
	}
	return false
}

// Region returns the cells a click on (row, col) would clear: the maximal
// 4-connected group of the clicked cell's color. It returns nil when the
// click would be a no-op, i.e. the cell is out of bounds, empty, or has
// no orthogonal neighbor of the same color.
func Region(g *Grid, row, col int) []Coord {
	if !g.InBounds(row, col) {
		return nil
	}
	target := g.At(row, col)
	if target.IsEmpty() {
		return nil
	}
	// The isolation check applies to the clicked cell only.
	if !hasMatchingNeighbor(g, row, col, target) {
		return nil
	}

	visited := make([]bool, len(g.Cells))
	visited[g.index(row, col)] = true
	stack := []Coord{At(row, col)}
	var region []Coord

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)

		for _, d := range neighbors {
			nr, nc := cur.Row+d[0], cur.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			idx := g.index(nr, nc)
			if visited[idx] || g.Cells[idx] != target {
				continue
			}
			visited[idx] = true
			stack = append(stack, At(nr, nc))
		}
	}

	return region
}

// ApplyClear clears the same-color region containing (row, col) and
// reflows the result. The input grid is never modified: on success a new
// grid is returned with changed=true, otherwise the input grid itself is
// returned with changed=false.
func ApplyClear(g *Grid, row, col int) (*Grid, bool) {
	region := Region(g, row, col)
	if len(region) == 0 {
		return g, false
	}

	next := g.Clone()
	for _, c := range region {
		next.Set(c.Row, c.Col, ColorEmpty)
	}
	Reflow(next)

	return next, true
}
