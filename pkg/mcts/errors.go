package mcts

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

var (
	// Search was asked for a move in a finished game
	ErrTerminalPosition = errors.New("position is already terminated")

	// Rollout found an undecided position without any legal moves
	ErrNoLegalMoves = errors.New("no legal moves in an undecided position")

	// Rollout didn't reach a decided outcome within the maximum game length
	ErrRolloutExhausted = errors.New("rollout exceeded the maximum game length")

	// Selection walked the maximum game length without reaching a leaf
	ErrSelectionExhausted = errors.New("selection exceeded the maximum game length")
)

// Broken board state detected during the search, this is a bug in the
// state machine, and the search result can't be trusted
type InvariantError struct {
	Reason  error
	Board   uttt.Board
	Outcome uttt.Outcome
	Plies   int // rollout plies played when the violation was detected
}

func newInvariantError(reason error, board *uttt.Board, plies int) *InvariantError {
	return &InvariantError{
		Reason:  reason,
		Board:   *board,
		Outcome: board.Outcome(),
		Plies:   plies,
	}
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mcts: invariant violation after %d rollout plies: %v (outcome=%s, notation=%q, %s)",
		e.Plies, e.Reason, e.Outcome, e.Board.Notation(), e.Board.String())
}

func (e *InvariantError) Unwrap() error {
	return e.Reason
}
