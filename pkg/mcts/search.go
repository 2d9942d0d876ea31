package mcts

import (
	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Single search iteration, simply calls:
//
// 1. selection - to choose the most promising leaf node
//
// 2. expansion - to add the leaf's children, and step into the first one
//
// 3. rollout - to play random moves until the game ends
//
// 4. backpropagate - to update the counters on the path up to the root
//
// 'root' is never modified, every iteration works on its own copy
func (e *Engine) cycle(root *uttt.Board) error {
	board := *root
	path, idx := e.selection(&board)

	// Reached end of the game during selection, no need for expansion & rollout
	if outcome := board.Outcome(); outcome.Decided() {
		e.stats.Terminal++
		if e.terminalPolicy == TerminalSkip {
			e.stats.Skipped++
			return nil
		}
		e.finish(path, outcome)
		return nil
	}

	if !e.tree.Node(idx).IsLeaf() {
		return newInvariantError(ErrSelectionExhausted, &board, 0)
	}

	// Add new children to this node, after finding leaf node
	if e.tree.Expand(idx, &board) == 0 {
		return newInvariantError(ErrNoLegalMoves, &board, 0)
	}

	// Step into the first child
	child := e.tree.Node(idx).children.Start
	board.Place(e.tree.Node(child).Move)
	path = append(path, child)

	outcome, err := e.rollout(&board)
	if err != nil {
		return err
	}

	e.finish(path, outcome)
	return nil
}

// Walk down the tree with the selection policy, applying moves to the board,
// until a leaf is found. Returns the path (root first) and the leaf index
func (e *Engine) selection(board *uttt.Board) ([]int, int) {
	path := append(e.path[:0], RootIndex)
	idx := RootIndex

	// length of a game is at most 81 moves
	for range MaxPlies {
		if e.tree.Node(idx).IsLeaf() {
			break
		}

		idx = e.policy.Select(e.tree, idx, e.rand)
		board.Place(e.tree.Node(idx).Move)
		path = append(path, idx)
	}

	return path, idx
}

// Play random moves until the game is decided
func (e *Engine) rollout(board *uttt.Board) (uttt.Outcome, error) {
	for ply := 0; ply < MaxPlies; ply++ {
		if outcome := board.Outcome(); outcome.Decided() {
			return outcome, nil
		}

		moves := board.LegalMoves()
		if len(moves) == 0 {
			return uttt.OutcomeUndecided, newInvariantError(ErrNoLegalMoves, board, ply)
		}

		// Choose at random move
		board.Place(moves[e.rand.Intn(len(moves))])
	}

	if outcome := board.Outcome(); outcome.Decided() {
		return outcome, nil
	}
	return uttt.OutcomeUndecided, newInvariantError(ErrRolloutExhausted, board, MaxPlies)
}

// Backpropagate the result, and update the statistics
func (e *Engine) finish(path []int, outcome uttt.Outcome) {
	Backpropagate(e.tree, path, outcome)
	e.path = path
	e.stats.MaxDepth = max(e.stats.MaxDepth, len(path)-1)
}
