// Package piece models the active falling pair and the placement rules it is
// tested against. A piece is a pure value: movement and rotation produce
// candidates, and the caller decides whether a candidate is accepted.
package piece

import "puyo-go/internal/grid"

// Cell is one half of the pair. Row may be negative while the piece is
// active; that transient above-board space is never persisted to the grid.
type Cell struct {
	Row   int
	Col   int
	Color grid.Color
}

// Rotation direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Piece is the falling pair. Cells[0] is the base; Cells[1] stays adjacent
// to it in one of the four offsets reachable by quarter turns.
type Piece struct {
	Cells [2]Cell
}

// New returns a vertically oriented piece with the bottom cell at
// (row, col) and the top cell directly above it.
func New(row, col int, bottom, top grid.Color) Piece {
	return Piece{Cells: [2]Cell{
		{Row: row, Col: col, Color: bottom},
		{Row: row - 1, Col: col, Color: top},
	}}
}

// Translate returns the piece shifted by (dRow, dCol). It never fails;
// acceptance is decided by CanPlace on the result.
func (p Piece) Translate(dRow, dCol int) Piece {
	for i := range p.Cells {
		p.Cells[i].Row += dRow
		p.Cells[i].Col += dCol
	}
	return p
}

// Rotate returns the piece turned a quarter around its base cell. The base
// never moves; only the second cell's offset changes:
// clockwise (r, c) -> (-c, r), counter-clockwise (r, c) -> (c, -r).
func (p Piece) Rotate(dir Rotation) Piece {
	relRow := p.Cells[1].Row - p.Cells[0].Row
	relCol := p.Cells[1].Col - p.Cells[0].Col
	if dir == Clockwise {
		relRow, relCol = -relCol, relRow
	} else {
		relRow, relCol = relCol, -relRow
	}
	p.Cells[1].Row = p.Cells[0].Row + relRow
	p.Cells[1].Col = p.Cells[0].Col + relCol
	return p
}
