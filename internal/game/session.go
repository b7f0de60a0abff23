// Package game exposes the engine to the presentation layer: sessions,
// player commands, the gravity tick and read-only views. The engine never
// blocks and has no clock of its own; an external driver serializes
// commands and ticks.
package game

import (
	"context"

	"puyo-go/internal/grid"
	"puyo-go/internal/piece"
	"puyo-go/internal/scoring"
	"puyo-go/internal/state"
)

// Action is a player command.
type Action string

const (
	MoveLeft  Action = "left"      // Moves the piece one column left.
	MoveRight Action = "right"     // Moves the piece one column right.
	SoftDrop  Action = "down"      // Moves the piece one row down.
	HardDrop  Action = "drop"      // Drops the piece to the bottom and locks it.
	RotateCW  Action = "rotatecw"  // Rotates the piece clockwise.
	RotateCCW Action = "rotateccw" // Rotates the piece counter-clockwise.
)

// Session owns one game from the first spawn to game over. Reset rebuilds
// the initial state with the same options, storage and color source.
type Session struct {
	State *state.State

	opts    state.GameOptions
	storage scoring.ScoreStorage
	colors  state.ColorSource
}

// NewSession starts a session with colorCount cell colors (clamped to
// [3,5]) and performs the initial spawn.
func NewSession(colorCount int, storage scoring.ScoreStorage, colors state.ColorSource) (*Session, error) {
	s := &Session{
		opts:    state.GameOptions{ColorCount: colorCount},
		storage: storage,
		colors:  colors,
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start() error {
	sc, err := scoring.InitScoring(s.storage)
	if err != nil {
		return err
	}
	s.State = state.NewState(s.opts, *sc, s.colors)
	_ = s.State.FSM.Event(context.Background(), "spawn")
	return nil
}

// Command applies a player action. Inapplicable commands (no active piece,
// game over, illegal candidate) are silently ignored.
func (s *Session) Command(a Action) {
	if s.State.GameOver || s.State.Piece == nil {
		return
	}

	switch a {
	case MoveLeft:
		s.State.MoveBy(0, -1)
	case MoveRight:
		s.State.MoveBy(0, 1)
	case SoftDrop:
		s.State.StepDown()
	case HardDrop:
		s.State.HardDrop()
	case RotateCW:
		s.State.RotatePiece(piece.Clockwise)
	case RotateCCW:
		s.State.RotatePiece(piece.CounterClockwise)
	}
}

// Tick applies one gravity step. Driven by an external periodic clock; a
// tick arriving after game over is a no-op.
func (s *Session) Tick() {
	if s.State.GameOver || s.State.Piece == nil {
		return
	}
	s.State.StepDown()
}

// Reset re-initializes the session to its start state.
func (s *Session) Reset() error {
	return s.start()
}

// Board returns the visible grid with the active piece overlaid, for
// rendering.
func (s *Session) Board() [grid.Rows][grid.Cols]grid.Color {
	return s.State.Overlay()
}

// NextPair returns the preview colors for the upcoming piece, bottom cell
// first.
func (s *Session) NextPair() [2]grid.Color {
	return s.State.NextPair
}

// Score returns the cumulative session score.
func (s *Session) Score() int {
	return s.State.Score.CurrentScore
}

// Chains returns the cumulative chain count.
func (s *Session) Chains() int {
	return s.State.Score.ChainTotal
}

// IsGameOver reports whether the terminal state has been reached.
func (s *Session) IsGameOver() bool {
	return s.State.GameOver
}
