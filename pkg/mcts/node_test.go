package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

func TestNewTree(t *testing.T) {
	tree := NewTree(uttt.SideO, uttt.Move{Tile: 4, Square: 4})
	require.Equal(t, 1, tree.Len())

	root := tree.Root()
	require.True(t, root.IsLeaf())
	require.Equal(t, uttt.SideO, root.Side)
	require.Equal(t, uttt.Move{Tile: 4, Square: 4}, root.Move)
	require.Nil(t, tree.ChildNodes(RootIndex))

	_, ok := root.Children()
	require.False(t, ok)
}

func TestExpand(t *testing.T) {
	board := uttt.NewBoard()
	tree := NewTree(uttt.SideO, uttt.Move{})

	n := tree.Expand(RootIndex, board)
	require.Equal(t, 81, n)
	require.Equal(t, 82, tree.Len())
	require.False(t, tree.Root().IsLeaf())

	r, ok := tree.Root().Children()
	require.True(t, ok)
	require.Equal(t, ChildRange{Start: 1, End: 82}, r)

	// Children follow move generation order, with the side to move
	moves := board.LegalMoves()
	for i, child := range tree.ChildNodes(RootIndex) {
		require.Equal(t, moves[i], child.Move)
		require.Equal(t, uttt.SideX, child.Side)
		require.True(t, child.IsLeaf())
		require.Zero(t, child.Visits)
	}

	// Center of the center square, forced back to it
	child := r.Start + 40
	board.Place(tree.Node(child).Move)
	require.Equal(t, 8, tree.Expand(child, board))

	cr, ok := tree.Node(child).Children()
	require.True(t, ok)
	require.Equal(t, ChildRange{Start: 82, End: 90}, cr)
	for i, gc := range tree.ChildNodes(child) {
		require.Equal(t, board.LegalMoves()[i], gc.Move)
		require.Equal(t, uttt.SideO, gc.Side)
	}
}

func TestExpandTerminal(t *testing.T) {
	board, err := uttt.FromNotation("xxx6/xxx6/xxx6/9/9/9/9/9/9 o -")
	require.NoError(t, err)

	tree := NewTree(uttt.SideX, uttt.Move{})
	require.Zero(t, tree.Expand(RootIndex, board))
	require.Equal(t, 1, tree.Len())
	require.True(t, tree.Root().IsLeaf())

	_, ok := tree.Root().Children()
	require.False(t, ok)
}

func TestTreeRangesAfterSearch(t *testing.T) {
	board := uttt.NewBoard()
	engine := newTestEngine(500, 21)
	require.NoError(t, engine.Search(*board, uttt.Move{}))

	// Ranges are disjoint, lie after their parent and cover every non-root node once
	tree := engine.Tree()
	owner := make([]int, tree.Len())
	for idx := range tree.Len() {
		r, ok := tree.Node(idx).Children()
		if !ok {
			continue
		}
		require.Positive(t, r.Len())
		require.Greater(t, r.Start, idx)
		require.LessOrEqual(t, r.End, tree.Len())
		for c := r.Start; c < r.End; c++ {
			require.Zero(t, owner[c], "node %d has two parents", c)
			owner[c] = idx + 1
			require.Equal(t, tree.Node(idx).Side.Swap(), tree.Node(c).Side)
		}
	}
	for idx := 1; idx < tree.Len(); idx++ {
		require.NotZero(t, owner[idx], "node %d has no parent", idx)
	}
}
