package mcts

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Source returning fixed values
type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Intn(n int) int {
	return s.n % n
}

func (s fixedSource) Float64() float64 {
	return s.f
}

func TestUCB1(t *testing.T) {
	require.Equal(t, UnvisitedPriority, UCB1(0, 0, 10, 1.4))
	require.Equal(t, UnvisitedPriority, UCB1(5, 0, 10, 0))

	// No exploration
	require.InDelta(t, 1.5, UCB1(15, 10, 100, 0), 1e-12)

	expected := 1.0 + 1.4*math.Sqrt(math.Log(100)/20)
	require.InDelta(t, expected, UCB1(20, 20, 100, 1.4), 1e-12)

	// Less visited child gets a bigger bonus
	require.Greater(t, UCB1(10, 10, 100, 1.4), UCB1(100, 100, 200, 1.4))
}

func TestNewUCT(t *testing.T) {
	require.Equal(t, 1.4, NewUCT(DefaultExplorationParam).ExplorationParam)
	require.Zero(t, NewUCT(-1).ExplorationParam)

	u := NewUCT(1)
	u.SetExplorationParam(0.5)
	require.Equal(t, 0.5, u.ExplorationParam)
}

// Root with 'len(visits)' children, each with given wins and visits
func statsTree(t *testing.T, wins, visits []uint32) *Tree {
	t.Helper()
	require.Len(t, wins, len(visits))

	tree := NewTree(uttt.SideO, uttt.Move{})
	tree.nodes = append(tree.nodes, make([]Node, len(visits))...)
	tree.Root().children = ChildRange{Start: 1, End: 1 + len(visits)}
	tree.Root().expanded = true

	total := uint32(0)
	for i := range visits {
		tree.nodes[1+i].Wins = wins[i]
		tree.nodes[1+i].Visits = visits[i]
		total += visits[i]
	}
	tree.Root().Visits = total
	return tree
}

func TestSelectSingleChild(t *testing.T) {
	tree := statsTree(t, []uint32{0}, []uint32{7})
	require.Equal(t, 1, NewUCT(1.4).Select(tree, RootIndex, fixedSource{f: 0.99}))
}

func TestSelectUnvisitedFirst(t *testing.T) {
	tree := statsTree(t, []uint32{4, 0, 2, 0}, []uint32{2, 1, 0, 0})
	require.Equal(t, 3, NewUCT(1.4).Select(tree, RootIndex, fixedSource{f: 0.99}))
}

func TestSelectWeighted(t *testing.T) {
	// Without exploration the weights are 2, 1 and 0.5
	tree := statsTree(t, []uint32{20, 10, 5}, []uint32{10, 10, 10})
	uct := NewUCT(0)

	cases := []struct {
		f    float64
		want int
	}{
		{0, 1},
		{0.5, 1},
		{0.58, 2},
		{0.85, 2},
		{0.86, 3},
		{0.999, 3},
	}
	for _, c := range cases {
		require.Equal(t, c.want, uct.Select(tree, RootIndex, fixedSource{f: c.f}), "f=%v", c.f)
	}
}

func TestSelectWeightedDistribution(t *testing.T) {
	tree := statsTree(t, []uint32{30, 10}, []uint32{10, 10})
	uct := NewUCT(0)
	rng := rand.New(rand.NewSource(3))

	const draws = 20000
	counts := [2]int{}
	for range draws {
		counts[uct.Select(tree, RootIndex, rng)-1]++
	}

	// weights 3 and 1
	require.InDelta(t, 0.75, float64(counts[0])/draws, 0.02)
	require.InDelta(t, 0.25, float64(counts[1])/draws, 0.02)
}

func TestSelectAllZeroWeights(t *testing.T) {
	tree := statsTree(t, []uint32{0, 0, 0}, []uint32{4, 4, 4})
	uct := NewUCT(0)

	for n := range 3 {
		require.Equal(t, 1+n, uct.Select(tree, RootIndex, fixedSource{n: n}))
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	weights := []float64{0, 2, 0, 2}
	require.Equal(t, 1, weightedIndex(weights, 4, fixedSource{f: 0}))
	require.Equal(t, 3, weightedIndex(weights, 4, fixedSource{f: 0.5}))

	// leftover from rounding picks the last non-zero weight
	require.Equal(t, 1, weightedIndex([]float64{1, 1, 0}, 2.5, fixedSource{f: 0.99}))
}
