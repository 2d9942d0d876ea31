package uttt

import (
	"math/bits"
)

// Append every free tile of given square
func appendSquareMoves(moves []Move, square uint8, occupied uint16) []Move {
	free := fullSquare ^ occupied
	for free != 0 {
		moves = append(moves, Move{Tile: uint8(bits.TrailingZeros16(free)), Square: square})
		free &= free - 1
	}
	return moves
}

// Generate all legal moves in given position, ordered by square, then by tile.
// Returns an empty list if the game is already decided
func (b *Board) LegalMoves() MoveList {
	if b.IsTerminated() {
		return MoveList{}
	}

	// Forced to play on given square
	if b.forced != 0 {
		s := b.forced - 1
		return appendSquareMoves(make(MoveList, 0, NSquares), s, b.X[s]|b.O[s])
	}

	moves := make(MoveList, 0, MaxPlies)
	for s := uint8(0); s < NSquares; s++ {
		if b.Squares[s] != OutcomeUndecided {
			continue
		}

		// This is valid, because these 2 bitboards are mutally exclusive
		moves = appendSquareMoves(moves, s, b.X[s]|b.O[s])
	}
	return moves
}
