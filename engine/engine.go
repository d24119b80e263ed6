// Package engine drives a live game turn by turn. It contains no
// strategy logic; strategies are injected as constructor dependencies.
package engine

import (
	"fmt"

	"pursuit/game"
)

// Strategy picks a destination for one actor's turn. Implementations
// must return a move from validMoves; anything else is an
// InconsistentMoveError and ends the game.
type Strategy interface {
	ChooseMove(board *game.Board, state *game.GameState, actor game.Actor, validMoves []int) (int, error)
}

// OnMove is an observer callback invoked after every applied move.
// from == to means the actor was stuck and stayed in place.
type OnMove func(actor game.Actor, from, to int)

// InconsistentMoveError reports a strategy returning a move outside the
// valid set. It is a contract violation and fatal: callers must not
// continue the turn loop after seeing it.
type InconsistentMoveError struct {
	Actor game.Actor
	Move  int
	Valid []int
}

func (e *InconsistentMoveError) Error() string {
	return fmt.Sprintf("%s chose %d, not in valid moves %v", e.Actor, e.Move, e.Valid)
}
