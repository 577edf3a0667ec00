package core

// Reflow applies gravity and column compaction to g in place.
//
// First every column collapses downward: non-empty cells fall to the
// bottom keeping their top-to-bottom order, empties stack on top. Then
// every column left fully empty is moved to the right edge, so non-empty
// columns are packed to the left in their original order.
func Reflow(g *Grid) {
	collapseColumns(g)
	compactColumns(g)
}

// collapseColumns drops non-empty cells to the bottom of each column.
func collapseColumns(g *Grid) {
	for col := range g.W {
		slot := -1 // Lowest empty row found so far, -1 if none yet
		for row := g.H - 1; row >= 0; row-- {
			c := g.At(row, col)
			if c.IsEmpty() {
				if slot < 0 {
					slot = row
				}
				continue
			}
			if slot >= 0 {
				g.Set(slot, col, c)
				g.Set(row, col, ColorEmpty)
				slot--
			}
		}
	}
}

// compactColumns moves fully empty columns to the right edge.
// Empty columns are identified before any column is moved; each removal
// shifts the remaining columns one position left, so later positions are
// corrected by the number of columns already removed.
func compactColumns(g *Grid) {
	empty := make([]bool, g.W)
	for col := range g.W {
		empty[col] = g.ColumnEmpty(col)
	}

	removed := 0
	for col := range g.W {
		if !empty[col] {
			continue
		}
		removeColumn(g, col-removed)
		removed++
	}
}

// removeColumn deletes column col by shifting every column to its right
// one position left, leaving an empty column at the right edge.
func removeColumn(g *Grid, col int) {
	for row := range g.H {
		for c := col; c < g.W-1; c++ {
			g.Set(row, c, g.At(row, c+1))
		}
		g.Set(row, g.W-1, ColorEmpty)
	}
}
