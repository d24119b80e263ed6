package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Actor identifies whose sub-turn it is: the single evader, or one of
// the pursuers by index. Pursuer identity is positional: index i is
// pursuer i for the whole game.
type Actor int

const Evader Actor = -1

func Pursuer(index int) Actor {
	if index < 0 {
		panic("pursuer index must be non-negative")
	}
	return Actor(index)
}

func (a Actor) IsEvader() bool { return a < 0 }

func (a Actor) PursuerIndex() int {
	if a.IsEvader() {
		panic("evader has no pursuer index")
	}
	return int(a)
}

// Next returns the actor whose sub-turn follows a, cycling
// evader -> pursuer 0 -> ... -> pursuer numPursuers-1 -> evader.
func (a Actor) Next(numPursuers int) Actor {
	if a.IsEvader() {
		if numPursuers == 0 {
			return Evader
		}
		return Pursuer(0)
	}
	if int(a)+1 < numPursuers {
		return a + 1
	}
	return Evader
}

// String renders the token used in serialized policy keys.
func (a Actor) String() string {
	if a.IsEvader() {
		return "evader"
	}
	return fmt.Sprintf("pursuer_%d", int(a))
}

// ParseActor is the inverse of String.
func ParseActor(s string) (Actor, error) {
	if s == "evader" {
		return Evader, nil
	}
	if rest, ok := strings.CutPrefix(s, "pursuer_"); ok {
		index, err := strconv.Atoi(rest)
		if err == nil && index >= 0 {
			return Pursuer(index), nil
		}
	}
	return Evader, fmt.Errorf("invalid actor %q", s)
}
