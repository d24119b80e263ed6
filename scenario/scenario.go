// Package scenario loads YAML-described game setups, so repeatable runs
// don't need long flag lists.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pursuit/game"
)

// Scenario is one game setup. Missing fields keep their defaults.
type Scenario struct {
	EvaderStart   int    `yaml:"evader_start"`
	PursuerStarts []int  `yaml:"pursuer_starts"`
	MaxRounds     int    `yaml:"max_rounds"`
	RevealRounds  []int  `yaml:"reveal_rounds"`
	Seed          uint64 `yaml:"seed"`
}

// Default mirrors the classic setup: evader at 1, pursuers at 5 and 10,
// fifteen rounds.
func Default() Scenario {
	return Scenario{
		EvaderStart:   1,
		PursuerStarts: []int{5, 10},
		MaxRounds:     15,
		RevealRounds:  append([]int(nil), game.DefaultRevealRounds...),
	}
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return s, nil
}

// GameState builds the live start state for this scenario.
func (s Scenario) GameState() *game.GameState {
	gs := game.NewGameState(s.EvaderStart, s.PursuerStarts, s.MaxRounds)
	gs.RevealRounds = append([]int(nil), s.RevealRounds...)
	return gs
}
