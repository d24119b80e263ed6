package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState(1, []int{5, 10}, 15)

	require.Equal(t, 1, gs.EvaderPosition)
	require.Equal(t, []int{5, 10}, gs.PursuerPositions)
	require.Equal(t, 2, gs.NumPursuers())
	require.Equal(t, 0, gs.RoundNumber)
	require.True(t, gs.IsEvaderTurn())
	require.False(t, gs.GameOver)
}

func TestCopyIsIndependent(t *testing.T) {
	gs := NewGameState(1, []int{5, 10}, 15)
	gs.EvaderHistory = []int{9}

	dup := gs.Copy()
	dup.PursuerPositions[0] = 99
	dup.EvaderHistory = append(dup.EvaderHistory, 20)
	dup.RoundNumber = 7

	require.Equal(t, 5, gs.PursuerPositions[0], "copy must not share pursuer positions")
	require.Equal(t, []int{9}, gs.EvaderHistory, "copy must not share history")
	require.Equal(t, 0, gs.RoundNumber)
}

func TestReveals(t *testing.T) {
	gs := NewGameState(1, []int{5}, 15)
	gs.EvaderHistory = []int{9, 20, 11}

	t.Run("not revealed off-schedule", func(t *testing.T) {
		gs.RoundNumber = 2
		require.False(t, gs.IsEvaderRevealed())
		_, ok := gs.EvaderLastKnownPosition()
		require.False(t, ok)
	})

	t.Run("revealed on schedule", func(t *testing.T) {
		gs.RoundNumber = 3
		require.True(t, gs.IsEvaderRevealed())
		pos, ok := gs.EvaderLastKnownPosition()
		require.True(t, ok)
		require.Equal(t, 11, pos, "round 3 reveals the position after round 3")
	})

	t.Run("last reveal sticks until the next", func(t *testing.T) {
		gs.RoundNumber = 6
		require.False(t, gs.IsEvaderRevealed())
		pos, ok := gs.EvaderLastKnownPosition()
		require.True(t, ok)
		require.Equal(t, 11, pos)
	})
}

func TestResultString(t *testing.T) {
	gs := NewGameState(1, []int{5}, 15)
	require.Equal(t, "In progress", gs.ResultString())

	gs.GameOver = true
	gs.EvaderCaught = true
	require.Equal(t, "Pursuers win!", gs.ResultString())

	gs.EvaderCaught = false
	require.Equal(t, "Evader escapes!", gs.ResultString())
}
