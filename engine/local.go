package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pursuit/game"
	"pursuit/solver"
)

// Engine runs one game to completion, asking the injected strategies
// for moves and applying them to the live state.
type Engine struct {
	Board             *game.Board
	State             *game.GameState
	EvaderStrategy    Strategy
	PursuerStrategies []Strategy // same order as State.PursuerPositions
	OnMove            OnMove
}

func New(board *game.Board, state *game.GameState, evader Strategy, pursuers []Strategy, onMove OnMove) *Engine {
	if len(pursuers) != state.NumPursuers() {
		panic("number of pursuer strategies does not match number of pursuers")
	}
	return &Engine{
		Board:             board,
		State:             state,
		EvaderStrategy:    evader,
		PursuerStrategies: pursuers,
		OnMove:            onMove,
	}
}

// ValidMoves returns the destinations from node excluding
// excludedNodes, ascending.
func (e *Engine) ValidMoves(node int, excludedNodes []int) []int {
	return solver.ValidMoves(e.Board, node, excludedNodes)
}

// CurrentValidMoves returns the valid moves for whoever's turn it is.
func (e *Engine) CurrentValidMoves() []int {
	s := e.State
	if s.IsEvaderTurn() {
		return e.ValidMoves(s.EvaderPosition, s.PursuerPositions)
	}
	idx := s.ToMove.PursuerIndex()
	return e.ValidMoves(s.PursuerPositions[idx], otherPursuers(s.PursuerPositions, idx))
}

// checkGameOver updates the outcome flags and reports whether the game
// has ended. Same classification, and the same priority order, as the
// solver's terminal check.
func (e *Engine) checkGameOver() bool {
	s := e.State

	// Caught: a pursuer occupies the evader's node.
	for _, p := range s.PursuerPositions {
		if p == s.EvaderPosition {
			s.GameOver = true
			s.EvaderCaught = true
			return true
		}
	}

	// Survived: all rounds done and it's the evader's turn again.
	if s.RoundNumber >= s.MaxRounds && s.IsEvaderTurn() {
		s.GameOver = true
		s.EvaderCaught = false
		return true
	}

	// Trapped: the evader has no valid move on their turn.
	if s.IsEvaderTurn() && len(e.ValidMoves(s.EvaderPosition, s.PursuerPositions)) == 0 {
		s.GameOver = true
		s.EvaderCaught = true
		return true
	}

	return false
}

// Step executes one actor's move and advances to the next actor. It
// reports false once the game is over and no move was made.
func (e *Engine) Step() (bool, error) {
	if e.State.GameOver || e.checkGameOver() {
		return false, nil
	}

	var err error
	if e.State.IsEvaderTurn() {
		err = e.stepEvader()
	} else {
		err = e.stepPursuer()
	}
	if err != nil {
		return false, err
	}

	e.checkGameOver()
	return true, nil
}

func (e *Engine) stepEvader() error {
	s := e.State

	// The round is bumped before the strategy sees the state. Policy
	// strategies compensate through solver.LookupState.
	s.RoundNumber++

	valid := e.ValidMoves(s.EvaderPosition, s.PursuerPositions)
	if len(valid) == 0 {
		s.GameOver = true
		s.EvaderCaught = true
		return nil
	}

	from := s.EvaderPosition
	move, err := e.EvaderStrategy.ChooseMove(e.Board, s, game.Evader, valid)
	if err != nil {
		return fmt.Errorf("evader strategy: %w", err)
	}
	if !contains(valid, move) {
		return &InconsistentMoveError{Actor: game.Evader, Move: move, Valid: valid}
	}

	s.EvaderPosition = move
	s.EvaderHistory = append(s.EvaderHistory, move)
	s.ToMove = game.Evader.Next(s.NumPursuers())

	if s.IsEvaderRevealed() {
		log.Info().Msgf("round %d: the evader is revealed at %d", s.RoundNumber, move)
	}

	if e.OnMove != nil {
		e.OnMove(game.Evader, from, move)
	}
	return nil
}

func (e *Engine) stepPursuer() error {
	s := e.State
	actor := s.ToMove
	idx := actor.PursuerIndex()

	from := s.PursuerPositions[idx]
	valid := e.ValidMoves(from, otherPursuers(s.PursuerPositions, idx))

	move := from // stuck, stay put
	if len(valid) > 0 {
		chosen, err := e.PursuerStrategies[idx].ChooseMove(e.Board, s, actor, valid)
		if err != nil {
			return fmt.Errorf("%s strategy: %w", actor, err)
		}
		if !contains(valid, chosen) {
			return &InconsistentMoveError{Actor: actor, Move: chosen, Valid: valid}
		}
		move = chosen
		s.PursuerPositions[idx] = move
	}

	s.ToMove = actor.Next(s.NumPursuers())

	if e.OnMove != nil {
		e.OnMove(actor, from, move)
	}
	return nil
}

// PlayRound plays one complete round: the evader plus every pursuer.
func (e *Engine) PlayRound() error {
	for i := 0; i < 1+e.State.NumPursuers(); i++ {
		if e.State.GameOver {
			return nil
		}
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// PlayGame plays until the game is over and returns the final state.
func (e *Engine) PlayGame() (*game.GameState, error) {
	log.Info().Msgf("game starting: evader at %d, pursuers at %v, max rounds %d",
		e.State.EvaderPosition, e.State.PursuerPositions, e.State.MaxRounds)

	for !e.State.GameOver {
		if err := e.PlayRound(); err != nil {
			return nil, err
		}
	}

	log.Info().Msgf("%s (round %d)", e.State.ResultString(), e.State.RoundNumber)
	return e.State, nil
}

func otherPursuers(positions []int, idx int) []int {
	others := make([]int, 0, len(positions)-1)
	for i, p := range positions {
		if i != idx {
			others = append(others, p)
		}
	}
	return others
}

func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
