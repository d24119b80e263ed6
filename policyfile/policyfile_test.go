package policyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pursuit/engine"
	"pursuit/game"
	"pursuit/solver"
	"pursuit/strategies"
)

func TestRoundTrip(t *testing.T) {
	board := game.NewBoard([][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}})
	start := game.NewGameState(1, []int{5}, 2)

	result, err := solver.Solve(board, start)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, Save(path, New(start, result)))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, Config{EvaderStart: 1, PursuerStarts: []int{5}, MaxRounds: 2}, loaded.Config)
	require.Equal(t, Flatten(result.Policy), loaded.Policy, "the dump must round-trip losslessly")

	rebuilt := loaded.GameState()
	require.Equal(t, start.EvaderPosition, rebuilt.EvaderPosition)
	require.Equal(t, start.PursuerPositions, rebuilt.PursuerPositions)
	require.Equal(t, start.MaxRounds, rebuilt.MaxRounds)
}

func TestFlattenKeys(t *testing.T) {
	policy := map[solver.State]int{
		solver.NewState(0, game.Evader, 1, []int{5, 10}): 9,
	}
	flat := Flatten(policy)
	require.Equal(t, map[string]int{"r=0|p=evader|x=1|d=5,10": 9}, flat)

	// Every flattened key must parse back to the state it came from.
	for key := range flat {
		state, err := solver.ParseKey(key)
		require.NoError(t, err)
		require.Equal(t, 9, policy[state])
	}
}

func TestLoadRejectsCorruptKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	payload := `{"config":{"evader_start":1,"pursuer_starts":[5],"max_rounds":2},"policy":{"not-a-key":3}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	_, err := Load(path)
	require.ErrorContains(t, err, "corrupt policy file")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

// TestDumpedPolicyPlays loads a dump back and drives the evader from
// it, the way the CLI's -load-policy path does.
func TestDumpedPolicyPlays(t *testing.T) {
	board := game.NewBoard([][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}})
	start := game.NewGameState(1, []int{5}, 2)

	result, err := solver.Solve(board, start)
	require.NoError(t, err)
	require.True(t, result.ForcedEscape)

	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, Save(path, New(start, result)))
	loaded, err := Load(path)
	require.NoError(t, err)

	state := loaded.GameState()
	e := engine.New(board, state,
		&strategies.SerializedPolicy{Moves: loaded.Policy, Strict: true},
		[]engine.Strategy{strategies.NewRandom(3)},
		nil)

	final, err := e.PlayGame()
	require.NoError(t, err)
	require.False(t, final.EvaderCaught)
}
