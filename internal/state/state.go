// Package state holds the session's game state and the FSM that drives the
// spawn -> fall -> lock -> settle -> resolve cycle. Anomalies (blocked
// spawn, lock overflow, top-row occupancy) are state transitions into
// gameOver, never errors.
package state

import (
	"context"
	"puyo-go/internal/grid"
	"puyo-go/internal/piece"
	"puyo-go/internal/resolve"
	"puyo-go/internal/scoring"

	"github.com/looplab/fsm"
)

// GameOptions configures a session at construction time.
type GameOptions struct {
	ColorCount int // number of cell colors, clamped to [3,5]
}

const (
	minColors = 3
	maxColors = 5
)

// State is the complete session state: the settled grid, the active piece
// overlay, the next-pair preview, scoring, and the terminal game-over flag.
type State struct {
	Grid     *grid.Grid
	Piece    *piece.Piece // nil while no piece is active
	NextPair [2]grid.Color
	Score    scoring.Scoring
	GameOver bool
	FSM      *fsm.FSM
	// LastResult is the outcome of the most recent chain resolution.
	LastResult resolve.Result
	Options    GameOptions

	colors ColorSource
}

// NewState builds the initial session state: empty grid, zeroed score, a
// freshly drawn next pair and no active piece. The caller starts play by
// firing the "spawn" event.
func NewState(opts GameOptions, sc scoring.Scoring, colors ColorSource) *State {
	opts.ColorCount = clampColorCount(opts.ColorCount)

	s := &State{
		Grid:    grid.New(),
		Score:   sc,
		Options: opts,
		colors:  colors,
	}
	s.NextPair = s.drawPair()

	s.FSM = fsm.NewFSM(
		"empty",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func clampColorCount(n int) int {
	if n < minColors {
		return minColors
	}
	if n > maxColors {
		return maxColors
	}
	return n
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		// A new piece is drawn from the preview after the board is clear of
		// activity: at session start or after a resolution leaves row 0 free.
		{Name: "spawn", Src: []string{"empty", "resolving"}, Dst: "spawning"},
		{Name: "spawned", Src: []string{"spawning"}, Dst: "falling"},
		{Name: "blocked", Src: []string{"spawning"}, Dst: "gameOver"},

		// Locking: the piece merges into the grid when it can no longer fall.
		{Name: "lock", Src: []string{"falling"}, Dst: "locking"},
		{Name: "locked", Src: []string{"locking"}, Dst: "settling"},
		{Name: "overflow", Src: []string{"locking"}, Dst: "gameOver"},

		// Post-lock pipeline.
		{Name: "settled", Src: []string{"settling"}, Dst: "resolving"},
		{Name: "topOut", Src: []string{"resolving"}, Dst: "gameOver"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_spawning": func(ctx context.Context, e *fsm.Event) {
			// Consume the preview pair and draw a fresh one immediately.
			p := piece.New(0, SpawnColumn(), s.NextPair[0], s.NextPair[1])
			s.NextPair = s.drawPair()

			if !piece.CanPlace(p, s.Grid) {
				// Spawn position already occupied: the piece is discarded.
				s.GameOver = true
				e.FSM.Event(ctx, "blocked")
				return
			}

			s.Piece = &p
			e.FSM.Event(ctx, "spawned")
		},
		"enter_locking": func(ctx context.Context, e *fsm.Event) {
			overflow := false
			for _, c := range s.Piece.Cells {
				if c.Row < 0 {
					overflow = true
					continue
				}
				s.Grid.Set(c.Row, c.Col, c.Color)
			}
			s.Piece = nil

			if overflow {
				// A cell fixed above the visible field means the stack has
				// no room. Settling and resolution are bypassed entirely.
				s.GameOver = true
				e.FSM.Event(ctx, "overflow")
				return
			}

			e.FSM.Event(ctx, "locked")
		},
		"enter_settling": func(ctx context.Context, e *fsm.Event) {
			s.Grid.Settle()
			e.FSM.Event(ctx, "settled")
		},
		"enter_resolving": func(ctx context.Context, e *fsm.Event) {
			res := resolve.Chains(s.Grid)
			s.LastResult = res
			if res.CellsCleared > 0 {
				s.Score.ScoreClear(res.CellsCleared, res.Chains)
			}

			// Whether or not anything cleared, a still-occupied top row
			// leaves no room to spawn.
			if s.Grid.IsRowOccupied(0) {
				s.GameOver = true
				e.FSM.Event(ctx, "topOut")
				return
			}

			e.FSM.Event(ctx, "spawn")
		},
		"enter_gameOver": func(ctx context.Context, e *fsm.Event) {
			s.Score.SaveEntries()
		},
	}
}
