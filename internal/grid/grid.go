// Package grid holds the settled playfield: a fixed-size board of colored
// cells plus the gravity compaction that runs after pieces lock.
package grid

// Board dimensions. Fixed for the lifetime of a session.
const (
	Rows = 12
	Cols = 6
)

// Color identifies a cell color. Empty marks a vacant cell; playable colors
// are 1..n for a session configured with n colors.
type Color int

const Empty Color = 0

// Grid is the single source of truth for settled cells. The active piece is
// an overlay owned by the session and is never written here until it locks.
// All coordinates are row-major with row 0 at the top.
type Grid struct {
	cells [Rows][Cols]Color
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{}
}

// Get returns the color at (row, col). Callers must keep 0 <= row < Rows and
// 0 <= col < Cols; the piece layer handles the transient row -1 space itself.
func (g *Grid) Get(row, col int) Color {
	return g.cells[row][col]
}

// Set writes the color at (row, col), same bounds contract as Get.
func (g *Grid) Set(row, col int, c Color) {
	g.cells[row][col] = c
}

// IsRowOccupied reports whether any cell in the row is non-empty. The
// session uses it on row 0 to detect a blocked spawn.
func (g *Grid) IsRowOccupied(row int) bool {
	for col := 0; col < Cols; col++ {
		if g.cells[row][col] != Empty {
			return true
		}
	}
	return false
}

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if g.cells[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether two grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = [Rows][Cols]Color{}
}
