// Package policyfile reads and writes solver policy dumps as JSON. A
// dump carries the solve configuration alongside the flattened policy,
// so it is replayable on its own.
package policyfile

import (
	"encoding/json"
	"fmt"
	"os"

	"pursuit/game"
	"pursuit/solver"
)

// Config records the inputs the policy was solved for.
type Config struct {
	EvaderStart   int   `json:"evader_start"`
	PursuerStarts []int `json:"pursuer_starts"`
	MaxRounds     int   `json:"max_rounds"`
}

// File is the on-disk shape of a policy dump.
type File struct {
	Config Config         `json:"config"`
	Policy map[string]int `json:"policy"`
}

// Flatten converts a solver policy to its serialized string-keyed form.
func Flatten(policy map[solver.State]int) map[string]int {
	flat := make(map[string]int, len(policy))
	for state, move := range policy {
		flat[state.Key()] = move
	}
	return flat
}

// New assembles a dump from the start state a solve was run on and its
// result.
func New(start *game.GameState, result solver.Result) File {
	return File{
		Config: Config{
			EvaderStart:   start.EvaderPosition,
			PursuerStarts: append([]int(nil), start.PursuerPositions...),
			MaxRounds:     start.MaxRounds,
		},
		Policy: Flatten(result.Policy),
	}
}

// GameState rebuilds the start state the dump was solved for.
func (f File) GameState() *game.GameState {
	return game.NewGameState(f.Config.EvaderStart, f.Config.PursuerStarts, f.Config.MaxRounds)
}

func Save(path string, f File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create policy file: %w", err)
	}
	defer out.Close()

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("failed to write policy file: %w", err)
	}
	return nil
}

// Load reads a dump and verifies that every policy key parses back to a
// canonical state, so a corrupt file fails here rather than during play.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	for key := range f.Policy {
		if _, err := solver.ParseKey(key); err != nil {
			return File{}, fmt.Errorf("corrupt policy file: %w", err)
		}
	}
	return f, nil
}
