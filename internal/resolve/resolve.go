// Package resolve finds and clears connected color groups, letting the grid
// re-settle between passes until no group qualifies.
package resolve

import "puyo-go/internal/grid"

// MinGroupSize is the clearing threshold, independent of color identity.
const MinGroupSize = 4

// Result reports one full chain resolution.
type Result struct {
	GroupsCleared int
	CellsCleared  int
	Chains        int
}

type cellPos struct {
	row, col int
}

// Chains mutates the grid in place: each pass scans for 4-connected
// same-color groups of MinGroupSize or more, clears every qualifying group
// at once, re-settles, and repeats on the updated grid. One pass that clears
// anything counts as exactly one chain, no matter how many groups fell
// together. Terminates because each clearing pass strictly shrinks the
// number of filled cells.
func Chains(g *grid.Grid) Result {
	var res Result
	for {
		groups := findGroups(g)
		if len(groups) == 0 {
			return res
		}
		for _, group := range groups {
			for _, p := range group {
				g.Set(p.row, p.col, grid.Empty)
			}
			res.GroupsCleared++
			res.CellsCleared += len(group)
		}
		res.Chains++
		g.Settle()
	}
}

// findGroups returns every maximal 4-connected same-color group that meets
// the clearing threshold, scanning in row-major order.
func findGroups(g *grid.Grid) [][]cellPos {
	var visited [grid.Rows][grid.Cols]bool
	var groups [][]cellPos
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if visited[row][col] || g.Get(row, col) == grid.Empty {
				continue
			}
			group := flood(g, &visited, row, col)
			if len(group) >= MinGroupSize {
				groups = append(groups, group)
			}
		}
	}
	return groups
}

// flood collects the connected same-color region around (row, col) with an
// explicit stack. Up/down/left/right only, never diagonals.
func flood(g *grid.Grid, visited *[grid.Rows][grid.Cols]bool, row, col int) []cellPos {
	color := g.Get(row, col)
	stack := []cellPos{{row, col}}
	visited[row][col] = true
	var group []cellPos
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, p)
		for _, d := range [4]cellPos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := p.row+d.row, p.col+d.col
			if nr < 0 || nr >= grid.Rows || nc < 0 || nc >= grid.Cols {
				continue
			}
			if visited[nr][nc] || g.Get(nr, nc) != color {
				continue
			}
			visited[nr][nc] = true
			stack = append(stack, cellPos{nr, nc})
		}
	}
	return group
}
