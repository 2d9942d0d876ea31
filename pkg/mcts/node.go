package mcts

import (
	"fmt"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Half-open range [Start, End) of node indexes in the tree
type ChildRange struct {
	Start int
	End   int
}

func (r ChildRange) Len() int {
	return r.End - r.Start
}

// Single node of the search tree, stored by value in the tree's arena
type Node struct {
	Side   uttt.Side // side that made the move leading to this node
	Move   uttt.Move // move that produced this node from its parent
	Wins   uint32    // 2 per win, 1 per draw
	Visits uint32

	children ChildRange
	expanded bool
}

// Get the children range, returns false if the node wasn't expanded
func (n *Node) Children() (ChildRange, bool) {
	return n.children, n.expanded
}

// Whether the selection can go further below this node
func (n *Node) IsLeaf() bool {
	return !n.expanded || n.children.Len() == 0
}

func (n Node) String() string {
	return fmt.Sprintf("Node{move=%s side=%s wins=%d visits=%d children=%v}",
		n.Move, n.Side, n.Wins, n.Visits, n.children)
}

// Append-only arena of nodes, children of a node are always stored
// contiguously, in the same order as uttt.Board.LegalMoves returns them
type Tree struct {
	nodes []Node
}

// Create a new tree, with a root node wrapping the move that lead to current position,
// 'side' is the side that played that move
func NewTree(side uttt.Side, lastMove uttt.Move) *Tree {
	tree := &Tree{nodes: make([]Node, 1, 1+uttt.MaxPlies)}
	tree.nodes[0] = Node{Side: side, Move: lastMove}
	return tree
}

// Index of the root node
const RootIndex = 0

// Get node at given index, the pointer is valid until next 'Expand' call
func (t *Tree) Node(idx int) *Node {
	return &t.nodes[idx]
}

// Get the root node
func (t *Tree) Root() *Node {
	return &t.nodes[RootIndex]
}

// Number of nodes
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Get the slice of children of the node, nil if not expanded
func (t *Tree) ChildNodes(idx int) []Node {
	r, ok := t.nodes[idx].Children()
	if !ok {
		return nil
	}
	return t.nodes[r.Start:r.End]
}

// Append one child per legal move of the board, which must be the position at this node.
// If there are no legal moves, node is left unexpanded
func (t *Tree) Expand(idx int, board *uttt.Board) int {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	side := t.nodes[idx].Side.Swap()
	start := len(t.nodes)
	for _, m := range moves {
		t.nodes = append(t.nodes, Node{Side: side, Move: m})
	}

	// Now update it's state
	t.nodes[idx].children = ChildRange{Start: start, End: len(t.nodes)}
	t.nodes[idx].expanded = true
	return len(moves)
}
