package solver

import "pursuit/game"

// Transition model: legal moves, terminal classification and successor
// enumeration over canonical states.

// ValidMoves returns the destinations reachable from node, excluding
// excluded, in ascending order. The ordering is load-bearing: it is
// what makes the solver's tie-break deterministic.
func ValidMoves(b *game.Board, node int, excluded []int) []int {
	var moves []int
	for _, n := range b.Neighbors(node) { // already ascending
		if !contains(excluded, n) {
			moves = append(moves, n)
		}
	}
	return moves
}

// IsTerminal classifies s, checked in priority order: captured beats
// survived beats trapped. maxRounds is a solve parameter, not part of
// the state.
func IsTerminal(b *game.Board, s State, maxRounds int) (terminal, evaderWins bool) {
	// Captured: a pursuer occupies the evader's node.
	for i := 0; i < s.NumPursuers; i++ {
		if s.Pursuers[i] == s.Evader {
			return true, false
		}
	}

	// Survived: all rounds done and it's the evader's turn again.
	if s.Round >= maxRounds && s.ToMove.IsEvader() {
		return true, true
	}

	// Trapped: the evader has no valid move on their turn.
	if s.ToMove.IsEvader() && len(ValidMoves(b, s.Evader, s.PursuerPositions())) == 0 {
		return true, false
	}

	return false, false
}

// Successor is one legal transition: the mover's destination and the
// state after the move.
type Successor struct {
	Move  int
	State State
}

// NextStates enumerates the legal transitions out of s, in ascending
// move order.
//
// An evader move advances the round and hands play to pursuer 0 (or
// straight back to the evader when there are none); pursuers are blocked
// only by other pursuers, so they may move onto the evader, which is how
// capture happens. A pursuer with no valid move is forced to stay in
// place rather than dead-ending the search. Callers must classify
// terminal states first: a trapped evader yields no successors.
func NextStates(b *game.Board, s State) []Successor {
	if s.ToMove.IsEvader() {
		legal := ValidMoves(b, s.Evader, s.PursuerPositions())
		next := s.ToMove.Next(s.NumPursuers)
		out := make([]Successor, 0, len(legal))
		for _, move := range legal {
			ns := s
			ns.Round++
			ns.ToMove = next
			ns.Evader = move
			out = append(out, Successor{Move: move, State: ns})
		}
		return out
	}

	idx := s.ToMove.PursuerIndex()
	others := make([]int, 0, s.NumPursuers-1)
	for i := 0; i < s.NumPursuers; i++ {
		if i != idx {
			others = append(others, s.Pursuers[i])
		}
	}
	legal := ValidMoves(b, s.Pursuers[idx], others)
	if len(legal) == 0 {
		legal = []int{s.Pursuers[idx]} // stuck, stay put
	}

	next := s.ToMove.Next(s.NumPursuers)
	out := make([]Successor, 0, len(legal))
	for _, move := range legal {
		ns := s
		ns.ToMove = next
		ns.Pursuers[idx] = move
		out = append(out, Successor{Move: move, State: ns})
	}
	return out
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
