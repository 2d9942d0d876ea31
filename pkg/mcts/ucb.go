package mcts

import "math"

// Priority of an unvisited node, makes sure each child is visited at least once
const UnvisitedPriority float64 = 1e12

// UCT selection policy, children are drawn at random, with probability
// proportional to their UCB1 score, instead of picking the maximum
type UCT struct {
	ExplorationParam float64
}

func NewUCT(explorationParam float64) *UCT {
	return &UCT{ExplorationParam: max(0, explorationParam)}
}

func (u *UCT) SetExplorationParam(c float64) {
	u.ExplorationParam = max(0, c)
}

// UCB 1 : wins/visits + C * sqrt(ln(parent_visits)/visits)
// ucb1 = exploitation + exploration
func UCB1(wins, visits, parentVisits uint32, c float64) float64 {
	if visits == 0 {
		return UnvisitedPriority
	}

	exploitation := float64(wins) / float64(visits)
	exploration := math.Sqrt(math.Log(float64(parentVisits)) / float64(visits))
	return exploitation + c*exploration
}

// Choose a child of the node at 'idx', the node must have at least one child.
// Returns the first unvisited child if there is one, otherwise samples
// a child weighted by its UCB1 score
func (u *UCT) Select(tree *Tree, idx int, rng Source) int {
	parent := tree.Node(idx)
	r := parent.children
	if r.Len() == 1 {
		return r.Start
	}

	children := tree.nodes[r.Start:r.End]
	scores := make([]float64, len(children))
	total := 0.0
	for i := range children {
		child := &children[i]

		// Pick the unvisited one
		if child.Visits == 0 {
			return r.Start + i
		}

		scores[i] = UCB1(child.Wins, child.Visits, parent.Visits, u.ExplorationParam)
		total += scores[i]
	}

	return r.Start + weightedIndex(scores, total, rng)
}

// Draw an index with probability proportional to its weight
func weightedIndex(weights []float64, total float64, rng Source) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	x := rng.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}

	// floating point leftovers, choose last non-zero weight
	for i := len(weights) - 1; i > 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
