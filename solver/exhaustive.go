package solver

import (
	"fmt"

	"pursuit/game"
)

// Result is the output of one Solve call.
type Result struct {
	// ForcedEscape reports whether the evader has a policy that beats
	// every possible pursuer response.
	ForcedEscape bool
	// Policy maps every evader-to-move state reached during the search
	// to a chosen destination. On winning states it is the smallest
	// winning move; on losing states the smallest move overall, so the
	// policy stays usable as a best-effort fallback.
	Policy map[State]int
	// StatesEvaluated is the final memo table size, a diagnostic.
	StatesEvaluated int
}

// InvalidStartStateError reports a starting configuration the solver
// refuses to search from. It is produced before the search begins,
// never mid-search.
type InvalidStartStateError struct {
	Reason string
}

func (e *InvalidStartStateError) Error() string {
	return "invalid start state: " + e.Reason
}

// Solve computes whether the evader can force an escape from start when
// pursuers are fully adversarial, exploring every pursuer branch at
// every pursuer turn. It is exhaustive by contract, with no pruning, and
// deterministic: identical inputs produce identical policies and
// identical state counts.
//
// Termination: every full actor cycle increments the round, the round
// is capped by MaxRounds, and each state is evaluated at most once, so
// the reachable state space is finite even on cyclic boards.
func Solve(b *game.Board, start *game.GameState) (Result, error) {
	if err := validateStart(b, start); err != nil {
		return Result{}, err
	}

	s := &search{
		board:     b,
		maxRounds: start.MaxRounds,
		memo:      make(map[State]bool),
		policy:    make(map[State]int),
	}
	escaped := s.evaderWins(FromGameState(start))

	return Result{
		ForcedEscape:    escaped,
		Policy:          s.policy,
		StatesEvaluated: len(s.memo),
	}, nil
}

type search struct {
	board     *game.Board
	maxRounds int
	memo      map[State]bool
	policy    map[State]int
}

// evaderWins is the memoized backward induction. It fills the memo and
// policy tables as it unwinds; each verdict is cached before returning.
func (s *search) evaderWins(st State) bool {
	if verdict, ok := s.memo[st]; ok {
		return verdict
	}

	if terminal, wins := IsTerminal(s.board, st, s.maxRounds); terminal {
		s.memo[st] = wins
		return wins
	}

	children := NextStates(s.board, st)

	if st.ToMove.IsEvader() {
		// Children come back in ascending move order, so the first
		// winning child is the smallest winning move and children[0]
		// is the smallest move overall.
		verdict := false
		chosen := children[0].Move
		for _, child := range children {
			if s.evaderWins(child.State) && !verdict {
				verdict = true
				chosen = child.Move
			}
		}
		s.policy[st] = chosen
		s.memo[st] = verdict
		return verdict
	}

	// Pursuers are adversarial: the escape must survive every branch.
	// Evaluate all of them so the memo table size is reproducible.
	verdict := true
	for _, child := range children {
		if !s.evaderWins(child.State) {
			verdict = false
		}
	}
	s.memo[st] = verdict
	return verdict
}

func validateStart(b *game.Board, gs *game.GameState) error {
	if gs.MaxRounds <= 0 {
		return &InvalidStartStateError{Reason: fmt.Sprintf("max rounds must be positive, got %d", gs.MaxRounds)}
	}
	if gs.NumPursuers() > MaxPursuers {
		return &InvalidStartStateError{Reason: fmt.Sprintf("%d pursuers exceeds the limit of %d", gs.NumPursuers(), MaxPursuers)}
	}
	if !b.HasNode(gs.EvaderPosition) {
		return &InvalidStartStateError{Reason: fmt.Sprintf("evader start %d is not on the board", gs.EvaderPosition)}
	}
	occupied := map[int]bool{gs.EvaderPosition: true}
	for i, p := range gs.PursuerPositions {
		if !b.HasNode(p) {
			return &InvalidStartStateError{Reason: fmt.Sprintf("pursuer %d start %d is not on the board", i, p)}
		}
		if occupied[p] {
			return &InvalidStartStateError{Reason: fmt.Sprintf("starting positions must be distinct, node %d is shared", p)}
		}
		occupied[p] = true
	}
	return nil
}
