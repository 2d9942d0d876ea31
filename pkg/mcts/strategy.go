package mcts

import "github.com/IlikeChooros/uttt-mcts/pkg/uttt"

// Score of the finished game, from the perspective of 'side'
func outcomeScore(outcome uttt.Outcome, side uttt.Side) uint32 {
	switch {
	case outcome == uttt.OutcomeDraw:
		return drawScore
	case outcome.Matches(side):
		return winScore
	default:
		return lossScore
	}
}

// Increment the visits of every node on the path (root first, leaf last),
// and credit wins from the perspective of the side that moved into each node.
//
// The leaf's side is scored first, then going up the path, the reward switches
// at every step between the leaf's side and its opponent, since the movers alternate
func Backpropagate(tree *Tree, path []int, outcome uttt.Outcome) {
	if len(path) == 0 {
		return
	}

	leafSide := tree.Node(path[len(path)-1]).Side
	thisSideScore := outcomeScore(outcome, leafSide)
	opponentScore := outcomeScore(outcome, leafSide.Swap())

	toggle := true
	for i := len(path) - 1; i >= 0; i-- {
		node := tree.Node(path[i])
		node.Visits++
		if toggle {
			node.Wins += thisSideScore
		} else {
			node.Wins += opponentScore
		}
		toggle = !toggle
	}
}
