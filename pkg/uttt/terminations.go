package uttt

// horizontal, vertical and diagonal patterns as bitboards (row-major, bit 0 = top-left)
var winningPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Check if any of the winning patterns is fully covered by the bitboard
func isWinning(bb uint16) bool {
	for i := 0; i < len(winningPatterns); i++ {
		if bb&winningPatterns[i] == winningPatterns[i] {
			return true
		}
	}
	return false
}

// Check the outcome of a 'small' square given both sides bitboards
func CheckSquareOutcome(x, o uint16) Outcome {
	if isWinning(x) {
		return OutcomeX
	}
	if isWinning(o) {
		return OutcomeO
	}

	// If no one won, check if that's a draw (this square is fully filled)
	if x|o == fullSquare {
		return OutcomeDraw
	}
	return OutcomeUndecided
}

// Outcome of given square, derived from the bitboards
func (b *Board) SquareOutcome(square uint8) Outcome {
	return CheckSquareOutcome(b.X[square], b.O[square])
}

// Build a bitboard of squares with given outcome
func (b *Board) squaresMask(outcome Outcome) uint16 {
	var mask uint16
	for i, v := range b.Squares {
		if v == outcome {
			mask |= 1 << i
		}
	}
	return mask
}

// Outcome of the whole game, using the cached square states as a 'big' tic tac toe board
func (b *Board) Outcome() Outcome {
	if isWinning(b.squaresMask(OutcomeX)) {
		return OutcomeX
	}
	if isWinning(b.squaresMask(OutcomeO)) {
		return OutcomeO
	}

	// Every square is resolved, but no one has a line
	if b.squaresMask(OutcomeUndecided) == 0 {
		return OutcomeDraw
	}
	return OutcomeUndecided
}

// Same as Outcome().Decided()
func (b *Board) IsTerminated() bool {
	return b.Outcome().Decided()
}
