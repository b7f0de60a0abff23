package grid

import (
	"testing"
)

func TestGrid_GetSet(t *testing.T) {
	g := New()

	// A fresh grid is entirely empty
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if g.Get(row, col) != Empty {
				t.Fatalf("Expected empty cell at (%d,%d), got %v", row, col, g.Get(row, col))
			}
		}
	}

	g.Set(3, 2, Color(1))
	if g.Get(3, 2) != Color(1) {
		t.Errorf("Expected color 1 at (3,2), got %v", g.Get(3, 2))
	}

	// Set only touches the target cell
	if g.CountFilled() != 1 {
		t.Errorf("Expected exactly 1 filled cell, got %d", g.CountFilled())
	}

	g.Set(3, 2, Empty)
	if g.Get(3, 2) != Empty {
		t.Error("Expected cell cleared after Set(Empty)")
	}
}

func TestGrid_IsRowOccupied(t *testing.T) {
	g := New()

	if g.IsRowOccupied(0) {
		t.Error("Empty grid should report row 0 unoccupied")
	}

	// One cell anywhere in the row is enough
	g.Set(0, Cols-1, Color(2))
	if !g.IsRowOccupied(0) {
		t.Error("Row 0 should be occupied")
	}
	if g.IsRowOccupied(1) {
		t.Error("Row 1 should remain unoccupied")
	}
}

func TestGrid_CloneEqual(t *testing.T) {
	g := New()
	g.Set(5, 3, Color(1))
	g.Set(11, 0, Color(3))

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Clone should equal the original")
	}

	// Mutating the clone must not touch the original
	c.Set(5, 3, Empty)
	if g.Get(5, 3) != Color(1) {
		t.Error("Mutating clone changed the original grid")
	}
	if g.Equal(c) {
		t.Error("Grids should differ after clone mutation")
	}
}

func TestGrid_Clear(t *testing.T) {
	g := New()
	g.Set(0, 0, Color(1))
	g.Set(11, 5, Color(4))

	g.Clear()
	if g.CountFilled() != 0 {
		t.Errorf("Expected 0 filled cells after Clear, got %d", g.CountFilled())
	}
}
