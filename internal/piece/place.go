package piece

import "puyo-go/internal/grid"

// kickOffsets are the horizontal retries applied when a rotation is blocked
// in place. The order matters and is part of the engine's behavior.
var kickOffsets = []int{-1, 1, -2, 2}

// CanPlace reports whether every cell of the piece sits on a legal position:
// columns must be inside [0, Cols); rows at or below the board bottom are
// illegal; negative rows are always free (above-board space has no
// collision); visible rows must be empty on the grid. This is the single
// collision predicate behind movement, rotation and gravity stepping.
func CanPlace(p Piece, g *grid.Grid) bool {
	for _, c := range p.Cells {
		if c.Col < 0 || c.Col >= grid.Cols {
			return false
		}
		if c.Row >= grid.Rows {
			return false
		}
		if c.Row < 0 {
			continue
		}
		if g.Get(c.Row, c.Col) != grid.Empty {
			return false
		}
	}
	return true
}

// RotateWithKick rotates the piece, retrying the rotated shape shifted by
// the kick offsets when the in-place rotation is blocked. It returns the
// accepted piece, or the input unchanged with ok=false when every offset
// fails.
func RotateWithKick(p Piece, dir Rotation, g *grid.Grid) (Piece, bool) {
	rotated := p.Rotate(dir)
	if CanPlace(rotated, g) {
		return rotated, true
	}
	for _, dCol := range kickOffsets {
		kicked := rotated.Translate(0, dCol)
		if CanPlace(kicked, g) {
			return kicked, true
		}
	}
	return p, false
}
