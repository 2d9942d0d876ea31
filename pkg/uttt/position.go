package uttt

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrIllegalMove = errors.New("illegal move")

// Main position struct, it's a plain value, so copying it
// gives a completely independent board.
// The zero value is the starting position: empty board, X to move, no forced square.
type Board struct {
	X       [NSquares]uint16  // bitboards of cross pieces, [square] -> tiles
	O       [NSquares]uint16  // bitboards of circle pieces
	Squares [NSquares]Outcome // cached outcome of each small square
	Side    Side              // side to move

	// forced square + 1, 0 meaning the player can choose any unresolved square
	forced uint8
}

// Create the starting position
func NewBoard() *Board {
	return &Board{}
}

// Make a copy of this board
func (b *Board) Clone() Board {
	return *b
}

// Get the forced square, returns (square, true) if there is one
func (b *Board) CurrentSquare() (uint8, bool) {
	if b.forced == 0 {
		return NoSquare, false
	}
	return b.forced - 1, true
}

// Set the forced square, NoSquare (or any value > 8) removes the constraint.
// A resolved square can't be forced, the player may move anywhere instead
func (b *Board) SetCurrentSquare(square uint8) {
	if square >= NSquares || b.Squares[square] != OutcomeUndecided {
		b.forced = 0
		return
	}
	b.forced = square + 1
}

// Square the move will actually be played on
func (b *Board) targetSquare(m Move) uint8 {
	if b.forced != 0 {
		return b.forced - 1
	}
	return m.Square
}

// Check if given move is legal: the target square must be unresolved,
// and the tile must be empty
func (b *Board) IsLegal(m Move) bool {
	if m.Tile >= NSquares || m.Square >= NSquares {
		return false
	}

	s := b.targetSquare(m)
	bit := uint16(1) << m.Tile
	return b.SquareOutcome(s) == OutcomeUndecided &&
		b.X[s]&bit == 0 &&
		b.O[s]&bit == 0
}

// Make a move on the board, switches the sides, accepts any move,
// playing an illegal one leaves the board in an inconsistent state
func (b *Board) Place(m Move) {
	s := b.targetSquare(m)

	if b.Side == SideX {
		b.X[s] |= 1 << m.Tile
	} else {
		b.O[s] |= 1 << m.Tile
	}

	if outcome := b.SquareOutcome(s); outcome != OutcomeUndecided {
		b.Squares[s] = outcome
	}

	// If opponent's move would be on a resolved square, allow it to play anywhere
	if b.SquareOutcome(m.Tile) == OutcomeUndecided {
		b.forced = m.Tile + 1
	} else {
		b.forced = 0
	}

	b.Side = b.Side.Swap()
}

// Verifies legality of given move, then if it's valid, makes it on the board.
// Unlike IsLegal, the move's square must match the forced square
func (b *Board) PlaceLegal(m Move) error {
	if moves := b.LegalMoves(); !moves.Contains(m) {
		return fmt.Errorf("%w %s, possible moves=[%s]", ErrIllegalMove, m, moves)
	}
	b.Place(m)
	return nil
}

// Number of pieces on the board
func (b *Board) Ply() int {
	n := 0
	for i := range NSquares {
		n += bits.OnesCount16(b.X[i] | b.O[i])
	}
	return n
}

// Debug dump of the board state
func (b *Board) String() string {
	sq, ok := b.CurrentSquare()
	current := "none"
	if ok {
		current = fmt.Sprintf("%d", sq)
	}
	return fmt.Sprintf("Board{x=%v o=%v side=%s current=%s squares=%v outcome=%s}",
		b.X, b.O, b.Side, current, b.Squares, b.Outcome())
}
