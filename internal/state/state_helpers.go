package state

import (
	"context"

	"puyo-go/internal/grid"
	"puyo-go/internal/piece"
)

// SpawnColumn is where new pieces appear: the centered column, preferring
// the left-of-center one when the board width is even.
func SpawnColumn() int {
	return (grid.Cols - 1) / 2
}

// drawPair draws two colors for the next piece, bottom cell first.
func (s *State) drawPair() [2]grid.Color {
	return [2]grid.Color{
		s.colors.Next(s.Options.ColorCount),
		s.colors.Next(s.Options.ColorCount),
	}
}

// MoveBy accepts the piece translated by (dRow, dCol) if the candidate is
// legal. Illegal candidates leave the piece unchanged; this is a no-op, not
// an error.
func (s *State) MoveBy(dRow, dCol int) bool {
	if s.Piece == nil {
		return false
	}
	candidate := s.Piece.Translate(dRow, dCol)
	if !piece.CanPlace(candidate, s.Grid) {
		return false
	}
	*s.Piece = candidate
	return true
}

// RotatePiece rotates the active piece with wall-kick retries. A rotation
// that fails every kick offset is silently ignored.
func (s *State) RotatePiece(dir piece.Rotation) bool {
	if s.Piece == nil {
		return false
	}
	rotated, ok := piece.RotateWithKick(*s.Piece, dir, s.Grid)
	if !ok {
		return false
	}
	*s.Piece = rotated
	return true
}

// StepDown applies one gravity step: the piece moves down a row if legal,
// otherwise it locks and the post-lock pipeline runs through the FSM.
func (s *State) StepDown() bool {
	if s.Piece == nil {
		return false
	}
	if s.MoveBy(1, 0) {
		return true
	}
	_ = s.FSM.Event(context.Background(), "lock")
	return false
}

// HardDrop collapses consecutive gravity steps: the piece falls until no
// downward move is legal, then locks.
func (s *State) HardDrop() {
	if s.Piece == nil {
		return
	}
	for s.MoveBy(1, 0) {
	}
	_ = s.FSM.Event(context.Background(), "lock")
}

// Overlay returns the visible board with the active piece drawn over the
// settled cells. Piece cells above row 0 are not visible.
func (s *State) Overlay() [grid.Rows][grid.Cols]grid.Color {
	var out [grid.Rows][grid.Cols]grid.Color
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			out[row][col] = s.Grid.Get(row, col)
		}
	}
	if s.Piece != nil {
		for _, c := range s.Piece.Cells {
			if c.Row >= 0 {
				out[c.Row][c.Col] = c.Color
			}
		}
	}
	return out
}
