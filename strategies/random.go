// Package strategies provides the built-in move strategies: a random
// baseline and the policy players backed by solver output.
package strategies

import (
	"golang.org/x/exp/rand"

	"pursuit/engine"
	"pursuit/game"
)

// Random picks a uniformly random valid move. Every instance owns its
// own seeded source, so runs are reproducible and independent.
type Random struct {
	rng *rand.Rand
}

var _ engine.Strategy = (*Random)(nil)

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(_ *game.Board, _ *game.GameState, _ game.Actor, validMoves []int) (int, error) {
	return validMoves[r.rng.Intn(len(validMoves))], nil
}
