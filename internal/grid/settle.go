package grid

// Settle compacts every column so that all non-empty cells rest at the
// bottom, keeping their relative vertical order. It reports whether any cell
// moved, so it is safe to call unconditionally after a clear.
//
// A single bottom-up write-pointer pass per column already reaches the fixed
// point: cells are written in scan order against a descending write row, so
// no vacancy can remain below a filled cell.
func (g *Grid) Settle() bool {
	moved := false
	for col := 0; col < Cols; col++ {
		write := Rows - 1
		for row := Rows - 1; row >= 0; row-- {
			if g.cells[row][col] == Empty {
				continue
			}
			if row != write {
				g.cells[write][col] = g.cells[row][col]
				g.cells[row][col] = Empty
				moved = true
			}
			write--
		}
	}
	return moved
}
