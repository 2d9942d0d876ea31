package uttt

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckSquareOutcomeWins(t *testing.T) {
	for _, pattern := range winningPatterns {
		t.Run(fmt.Sprintf("pattern-%09b", pattern), func(t *testing.T) {
			require.Equal(t, OutcomeX, CheckSquareOutcome(pattern, 0))
			require.Equal(t, OutcomeO, CheckSquareOutcome(0, pattern))

			// Opponent's pieces on the rest of the square don't change anything
			filler := lineFreeFiller(pattern)
			require.False(t, isWinning(filler), "filler %09b", filler)
			require.Zero(t, filler&pattern)
			require.Equal(t, OutcomeX, CheckSquareOutcome(pattern, filler))
			require.Equal(t, OutcomeO, CheckSquareOutcome(filler, pattern))
		})
	}
}

// Take as many tiles outside 'pattern' as possible, without completing any line
func lineFreeFiller(pattern uint16) uint16 {
	filler := uint16(0)
	free := fullSquare ^ pattern
	for free != 0 {
		bit := free & -free
		if !isWinning(filler | bit) {
			filler |= bit
		}
		free ^= bit
	}
	return filler
}

func TestLineFreeFillerColumns(t *testing.T) {
	// Two full columns would be a win on their own
	for _, column := range []uint16{0b001001001, 0b010010010, 0b100100100} {
		filler := lineFreeFiller(column)
		require.False(t, isWinning(filler))
		require.Equal(t, 4, bits.OnesCount16(filler), "column %09b filler %09b", column, filler)
		require.Equal(t, OutcomeO, CheckSquareOutcome(filler, column))
	}
}

func TestCheckSquareOutcomeDrawAndUndecided(t *testing.T) {
	// x o x
	// x o o
	// o x x
	x := uint16(0b110001101)
	o := fullSquare ^ x
	require.Equal(t, OutcomeDraw, CheckSquareOutcome(x, o))

	require.Equal(t, OutcomeUndecided, CheckSquareOutcome(0, 0))
	require.Equal(t, OutcomeUndecided, CheckSquareOutcome(0b000000011, 0b000010000))
	// same as the draw, but the last tile is empty
	require.Equal(t, OutcomeUndecided, CheckSquareOutcome(x&^(1<<8), o))
}

// Brute force check against a naive line scan
func TestCheckSquareOutcomeExhaustive(t *testing.T) {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	hasLine := func(bb uint16) bool {
		for _, l := range lines {
			if bb&(1<<l[0]) != 0 && bb&(1<<l[1]) != 0 && bb&(1<<l[2]) != 0 {
				return true
			}
		}
		return false
	}

	for x := uint16(0); x <= fullSquare; x++ {
		// every o bitboard disjoint with x
		rest := fullSquare ^ x
		for o := rest; ; o = (o - 1) & rest {
			var want Outcome
			switch {
			case hasLine(x):
				want = OutcomeX
			case hasLine(o):
				want = OutcomeO
			case x|o == fullSquare:
				want = OutcomeDraw
			default:
				want = OutcomeUndecided
			}

			if got := CheckSquareOutcome(x, o); got != want {
				t.Fatalf("x=%09b o=%09b: got %s, want %s", x, o, got, want)
			}
			if o == 0 {
				break
			}
		}
	}
}

func TestBoardOutcomeMeta(t *testing.T) {
	for _, pattern := range winningPatterns {
		b := NewBoard()
		for s := range NSquares {
			if pattern&(1<<s) != 0 {
				b.Squares[s] = OutcomeX
			}
		}
		require.Equal(t, OutcomeX, b.Outcome(), "pattern %09b", pattern)
		require.True(t, b.IsTerminated())

		b = NewBoard()
		for s := range NSquares {
			if pattern&(1<<s) != 0 {
				b.Squares[s] = OutcomeO
			}
		}
		require.Equal(t, OutcomeO, b.Outcome(), "pattern %09b", pattern)
	}
}

func TestBoardOutcomeDrawAndUndecided(t *testing.T) {
	b := NewBoard()
	require.Equal(t, OutcomeUndecided, b.Outcome())

	// X O X / X O O / O X X, no line for any side
	b.Squares = [NSquares]Outcome{
		OutcomeX, OutcomeO, OutcomeX,
		OutcomeX, OutcomeO, OutcomeO,
		OutcomeO, OutcomeX, OutcomeX,
	}
	require.Equal(t, OutcomeDraw, b.Outcome())

	// Drawn squares don't count towards any line
	b.Squares = [NSquares]Outcome{
		OutcomeDraw, OutcomeDraw, OutcomeDraw,
		OutcomeX, OutcomeO, OutcomeX,
		OutcomeO, OutcomeX, OutcomeUndecided,
	}
	require.Equal(t, OutcomeUndecided, b.Outcome())

	b.Squares[8] = OutcomeDraw
	require.Equal(t, OutcomeDraw, b.Outcome())
}

func TestOutcomeMatches(t *testing.T) {
	require.True(t, OutcomeX.Matches(SideX))
	require.True(t, OutcomeO.Matches(SideO))
	require.False(t, OutcomeX.Matches(SideO))
	require.False(t, OutcomeO.Matches(SideX))
	for _, s := range []Side{SideX, SideO} {
		require.False(t, OutcomeDraw.Matches(s))
		require.False(t, OutcomeUndecided.Matches(s))
		require.True(t, SideOutcome(s).Matches(s))
	}
	require.Equal(t, SideO, SideX.Swap())
	require.Equal(t, SideX, SideO.Swap())
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		b := NewBoard()
		plies := 0
		for !b.IsTerminated() && plies < MaxPlies {
			moves := b.LegalMoves()
			if len(moves) == 0 {
				t.Fatalf("No legal moves available, %s", b)
			}
			b.Place(moves[r.Intn(len(moves))])
			plies++
		}

		if !b.IsTerminated() {
			t.Fatalf("Game ended without a termination condition, %s", b)
		}
		require.Equal(t, plies, b.Ply())

		// cached square states must match the bitboards
		for s := uint8(0); s < NSquares; s++ {
			require.Equal(t, b.SquareOutcome(s), b.Squares[s])
			require.Zero(t, b.X[s]&b.O[s])
		}
	}
}
