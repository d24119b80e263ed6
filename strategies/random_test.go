package strategies

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomStaysInValidMoves(t *testing.T) {
	r := NewRandom(7)
	valid := []int{3, 8, 12}

	for i := 0; i < 50; i++ {
		move, err := r.ChooseMove(nil, nil, 0, valid)
		require.NoError(t, err)
		require.Contains(t, valid, move)
	}
}

func TestRandomIsReproducible(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)
	valid := []int{1, 2, 3, 4, 5}

	for i := 0; i < 20; i++ {
		moveA, _ := a.ChooseMove(nil, nil, 0, valid)
		moveB, _ := b.ChooseMove(nil, nil, 0, valid)
		require.Equal(t, moveA, moveB, "same seed must give the same sequence")
	}
}
