// Package solver computes, by exhaustive backward induction, whether
// the evader can force an escape against every pursuer response, and
// extracts the move policy that realizes it.
package solver

import (
	"fmt"
	"strconv"
	"strings"

	"pursuit/game"
)

// MaxPursuers bounds the pursuer count so State stays a fixed-size
// comparable value usable directly as a map key.
const MaxPursuers = 8

// State is the canonical value the solver reasons over. It must compare
// and hash structurally (memoization correctness depends on equal
// field values being the same map key) so it holds a fixed-size array
// rather than a slice.
type State struct {
	Round       int
	ToMove      game.Actor
	Evader      int
	NumPursuers int
	Pursuers    [MaxPursuers]int
}

func NewState(round int, toMove game.Actor, evader int, pursuers []int) State {
	if len(pursuers) > MaxPursuers {
		panic(fmt.Sprintf("too many pursuers: %d > %d", len(pursuers), MaxPursuers))
	}
	s := State{
		Round:       round,
		ToMove:      toMove,
		Evader:      evader,
		NumPursuers: len(pursuers),
	}
	copy(s.Pursuers[:], pursuers)
	return s
}

// PursuerPositions returns the occupied prefix of the pursuer array as
// a fresh slice.
func (s State) PursuerPositions() []int {
	return append([]int(nil), s.Pursuers[:s.NumPursuers]...)
}

// FromGameState is the lossless projection from live state to canonical
// state: drop history and flags, keep round, actor and positions. It
// applies no round adjustment; use LookupState for policy lookups from
// a running game.
func FromGameState(gs *game.GameState) State {
	return NewState(gs.RoundNumber, gs.ToMove, gs.EvaderPosition, gs.PursuerPositions)
}

// LookupState builds the canonical key the solver recorded for the
// current live turn. The engine increments the round number before
// consulting the evader's strategy, while the solver records evader
// decisions at the pre-increment round, so evader turns look up
// RoundNumber-1. Pursuer turns need no adjustment, since the engine
// does not touch the round counter on those.
//
// This is the only place the offset lives; every policy consumer must
// go through it.
func LookupState(gs *game.GameState) State {
	s := FromGameState(gs)
	if s.ToMove.IsEvader() {
		s.Round--
	}
	return s
}

// Key renders the serialized policy key:
//
//	r=<round>|p=<actor>|x=<evader>|d=<comma-joined pursuer positions>
//
// The pursuer order is significant.
func (s State) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "r=%d|p=%s|x=%d|d=", s.Round, s.ToMove, s.Evader)
	for i := 0; i < s.NumPursuers; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s.Pursuers[i]))
	}
	return b.String()
}

// ParseKey is the inverse of Key.
func ParseKey(key string) (State, error) {
	parts := strings.Split(key, "|")
	if len(parts) != 4 {
		return State{}, fmt.Errorf("invalid policy key %q", key)
	}
	fields := make([]string, len(parts))
	for i, prefix := range []string{"r=", "p=", "x=", "d="} {
		rest, ok := strings.CutPrefix(parts[i], prefix)
		if !ok {
			return State{}, fmt.Errorf("invalid policy key %q: missing %q", key, prefix)
		}
		fields[i] = rest
	}

	round, err := strconv.Atoi(fields[0])
	if err != nil {
		return State{}, fmt.Errorf("invalid policy key %q: bad round: %w", key, err)
	}
	toMove, err := game.ParseActor(fields[1])
	if err != nil {
		return State{}, fmt.Errorf("invalid policy key %q: %w", key, err)
	}
	evader, err := strconv.Atoi(fields[2])
	if err != nil {
		return State{}, fmt.Errorf("invalid policy key %q: bad evader position: %w", key, err)
	}

	var pursuers []int
	if fields[3] != "" {
		for _, p := range strings.Split(fields[3], ",") {
			pos, err := strconv.Atoi(p)
			if err != nil {
				return State{}, fmt.Errorf("invalid policy key %q: bad pursuer position %q", key, p)
			}
			pursuers = append(pursuers, pos)
		}
	}
	if len(pursuers) > MaxPursuers {
		return State{}, fmt.Errorf("invalid policy key %q: too many pursuers", key)
	}
	return NewState(round, toMove, evader, pursuers), nil
}
