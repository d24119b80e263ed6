package strategies

import (
	"fmt"

	"pursuit/engine"
	"pursuit/game"
	"pursuit/solver"
)

// PolicyMissError is returned by a strict policy strategy when no
// stored move applies to the current state.
type PolicyMissError struct {
	Key        string
	ValidMoves []int
}

func (e *PolicyMissError) Error() string {
	return fmt.Sprintf("no policy entry for %s (valid moves %v)", e.Key, e.ValidMoves)
}

// Policy plays the evader from a solver-produced state-to-move map.
//
// All lookups go through solver.LookupState, which reconciles the
// engine's round numbering with the solver's. On a miss, or when the
// stored move is no longer legal, it falls back to the smallest valid
// move unless Strict is set, in which case it returns a
// PolicyMissError instead of guessing.
type Policy struct {
	Moves  map[solver.State]int
	Strict bool
}

var _ engine.Strategy = (*Policy)(nil)

func NewPolicy(moves map[solver.State]int) *Policy {
	return &Policy{Moves: moves}
}

func (p *Policy) ChooseMove(_ *game.Board, state *game.GameState, _ game.Actor, validMoves []int) (int, error) {
	key := solver.LookupState(state)
	if move, ok := p.Moves[key]; ok && contains(validMoves, move) {
		return move, nil
	}
	if p.Strict {
		return 0, &PolicyMissError{Key: key.Key(), ValidMoves: append([]int(nil), validMoves...)}
	}
	return smallest(validMoves), nil
}

// SerializedPolicy plays from a flattened string-keyed policy, as
// loaded from a policy dump. Lookup, fallback and strict semantics are
// identical to Policy; the keys are just the serialized form of the
// same canonical states.
type SerializedPolicy struct {
	Moves  map[string]int
	Strict bool
}

var _ engine.Strategy = (*SerializedPolicy)(nil)

func NewSerializedPolicy(moves map[string]int) *SerializedPolicy {
	return &SerializedPolicy{Moves: moves}
}

func (p *SerializedPolicy) ChooseMove(_ *game.Board, state *game.GameState, _ game.Actor, validMoves []int) (int, error) {
	key := solver.LookupState(state).Key()
	if move, ok := p.Moves[key]; ok && contains(validMoves, move) {
		return move, nil
	}
	if p.Strict {
		return 0, &PolicyMissError{Key: key, ValidMoves: append([]int(nil), validMoves...)}
	}
	return smallest(validMoves), nil
}

func smallest(moves []int) int {
	min := moves[0]
	for _, m := range moves[1:] {
		if m < min {
			min = m
		}
	}
	return min
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
