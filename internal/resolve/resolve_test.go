package resolve

import (
	"testing"

	"puyo-go/internal/grid"
)

func TestChains_NoGroups(t *testing.T) {
	g := grid.New()
	g.Set(grid.Rows-1, 0, 1)
	g.Set(grid.Rows-1, 1, 2)
	g.Set(grid.Rows-1, 2, 1)

	res := Chains(g)
	if res.Chains != 0 || res.CellsCleared != 0 || res.GroupsCleared != 0 {
		t.Errorf("Nothing should clear, got %+v", res)
	}
	if g.CountFilled() != 3 {
		t.Error("Grid should be unchanged")
	}
}

func TestChains_GroupOfFourClears(t *testing.T) {
	g := grid.New()
	// Vertical stack of 4 same-colored cells at the bottom of column 2
	for row := grid.Rows - 4; row < grid.Rows; row++ {
		g.Set(row, 2, 1)
	}

	res := Chains(g)
	if res.Chains != 1 {
		t.Errorf("Expected 1 chain, got %d", res.Chains)
	}
	if res.CellsCleared != 4 {
		t.Errorf("Expected 4 cells cleared, got %d", res.CellsCleared)
	}
	if res.GroupsCleared != 1 {
		t.Errorf("Expected 1 group, got %d", res.GroupsCleared)
	}
	if g.CountFilled() != 0 {
		t.Error("Column should be empty after the clear")
	}
}

func TestChains_GroupOfThreeSurvives(t *testing.T) {
	g := grid.New()
	for row := grid.Rows - 3; row < grid.Rows; row++ {
		g.Set(row, 2, 1)
	}

	res := Chains(g)
	if res.Chains != 0 {
		t.Errorf("A group of 3 must never clear, got %d chains", res.Chains)
	}
	if g.CountFilled() != 3 {
		t.Error("Cells should survive")
	}
}

func TestChains_DiagonalsDoNotConnect(t *testing.T) {
	g := grid.New()
	// Four same-colored cells touching only diagonally: a checker pattern
	g.Set(grid.Rows-1, 0, 1)
	g.Set(grid.Rows-2, 1, 1)
	g.Set(grid.Rows-1, 2, 1)
	g.Set(grid.Rows-2, 3, 1)
	// Support cells of a different color under the raised ones
	g.Set(grid.Rows-1, 1, 2)
	g.Set(grid.Rows-1, 3, 2)

	res := Chains(g)
	if res.Chains != 0 {
		t.Errorf("Diagonal-only adjacency must not form a group, got %+v", res)
	}
}

func TestChains_SimultaneousGroupsCountOneChain(t *testing.T) {
	g := grid.New()
	// Two different-colored 4-groups side by side, both qualify in pass 1
	for row := grid.Rows - 4; row < grid.Rows; row++ {
		g.Set(row, 0, 1)
		g.Set(row, 5, 2)
	}

	res := Chains(g)
	if res.Chains != 1 {
		t.Errorf("Same-pass clears count as one chain, got %d", res.Chains)
	}
	if res.GroupsCleared != 2 {
		t.Errorf("Expected 2 groups, got %d", res.GroupsCleared)
	}
	if res.CellsCleared != 8 {
		t.Errorf("Expected 8 cells, got %d", res.CellsCleared)
	}
}

func TestChains_TwoStepReaction(t *testing.T) {
	g := grid.New()
	// Column 0, bottom-up: color 1 x4, with three color-2 cells stacked on
	// top plus one color-2 cell resting beside the stack's top in column 1.
	// Pass 1 clears the four 1s; the 2s in column 0 fall, joining the 2 in
	// column 1 at floor level into a second 4-group.
	for row := grid.Rows - 4; row < grid.Rows; row++ {
		g.Set(row, 0, 1)
	}
	for row := grid.Rows - 7; row < grid.Rows-4; row++ {
		g.Set(row, 0, 2)
	}
	g.Set(grid.Rows-1, 1, 2)

	res := Chains(g)
	if res.Chains != 2 {
		t.Errorf("Expected a 2-chain reaction, got %d", res.Chains)
	}
	if res.CellsCleared != 8 {
		t.Errorf("Expected 8 cells cleared in total, got %d", res.CellsCleared)
	}
	if g.CountFilled() != 0 {
		t.Errorf("Board should finish empty, got %d cells", g.CountFilled())
	}
}

func TestChains_LShapedGroup(t *testing.T) {
	g := grid.New()
	// 4-connected L shape of one color
	g.Set(grid.Rows-1, 0, 3)
	g.Set(grid.Rows-1, 1, 3)
	g.Set(grid.Rows-2, 0, 3)
	g.Set(grid.Rows-3, 0, 3)

	res := Chains(g)
	if res.Chains != 1 || res.CellsCleared != 4 {
		t.Errorf("L-shaped group of 4 should clear, got %+v", res)
	}
}
