package game

import "fmt"

// GameState is the full mutable state of one running game: positions,
// round, evader history, reveal schedule and outcome flags. The engine
// owns it exclusively; the solver works on a value projection of it
// (see the solver package) and never touches this struct.
type GameState struct {
	EvaderPosition   int
	PursuerPositions []int // index is pursuer identity
	RoundNumber      int   // 0 = game hasn't started
	ToMove           Actor
	EvaderHistory    []int // evader position after each round
	RevealRounds     []int // rounds where the evader's position is public; presentation only
	GameOver         bool
	EvaderCaught     bool
	MaxRounds        int // rounds the evader must survive to win
}

// DefaultRevealRounds is the classic reveal schedule.
var DefaultRevealRounds = []int{3, 8, 13}

func NewGameState(evader int, pursuers []int, maxRounds int) *GameState {
	return &GameState{
		EvaderPosition:   evader,
		PursuerPositions: append([]int(nil), pursuers...),
		ToMove:           Evader,
		RevealRounds:     append([]int(nil), DefaultRevealRounds...),
		MaxRounds:        maxRounds,
	}
}

func (gs *GameState) NumPursuers() int { return len(gs.PursuerPositions) }

func (gs *GameState) IsEvaderTurn() bool { return gs.ToMove.IsEvader() }

// IsEvaderRevealed reports whether the evader's position is publicly
// known this round.
func (gs *GameState) IsEvaderRevealed() bool {
	return containsInt(gs.RevealRounds, gs.RoundNumber)
}

// EvaderLastKnownPosition returns the position from the most recent
// reveal round that has already happened, if any.
func (gs *GameState) EvaderLastKnownPosition() (int, bool) {
	best := -1
	for _, r := range gs.RevealRounds {
		idx := r - 1 // history is 0-indexed; round 1 -> index 0
		if r <= gs.RoundNumber && idx >= 0 && idx < len(gs.EvaderHistory) && r > best {
			best = r
		}
	}
	if best < 0 {
		return 0, false
	}
	return gs.EvaderHistory[best-1], true
}

func (gs *GameState) ResultString() string {
	if !gs.GameOver {
		return "In progress"
	}
	if gs.EvaderCaught {
		return "Pursuers win!"
	}
	return "Evader escapes!"
}

// Copy deep-copies the state.
func (gs *GameState) Copy() *GameState {
	dup := *gs
	dup.PursuerPositions = append([]int(nil), gs.PursuerPositions...)
	dup.EvaderHistory = append([]int(nil), gs.EvaderHistory...)
	dup.RevealRounds = append([]int(nil), gs.RevealRounds...)
	return &dup
}

func (gs *GameState) String() string {
	return fmt.Sprintf("GameState(round=%d, toMove=%s, evader=%d, pursuers=%v)",
		gs.RoundNumber, gs.ToMove, gs.EvaderPosition, gs.PursuerPositions)
}

func containsInt(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
