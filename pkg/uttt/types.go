package uttt

// Side to move: either cross or circle
type Side uint8

// Result of a single tic tac toe square or the whole board
type Outcome uint8

const (
	SideX Side = iota
	SideO
)

const (
	OutcomeUndecided Outcome = iota
	OutcomeX
	OutcomeO
	OutcomeDraw
)

const (
	// Number of small boards, and also tiles in each of them
	NSquares = 9
	// A game can't last longer than that
	MaxPlies = NSquares * NSquares

	// Value of the current square, when the player may choose any unresolved square
	NoSquare uint8 = 255

	fullSquare uint16 = 0b111111111
)

// Get the opponent
func (s Side) Swap() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == SideX {
		return "X"
	}
	return "O"
}

// Outcome of 'side' winning
func SideOutcome(s Side) Outcome {
	if s == SideX {
		return OutcomeX
	}
	return OutcomeO
}

// Reports whether the outcome is a win of given side,
// Draw and Undecided never match any side
func (o Outcome) Matches(s Side) bool {
	return (o == OutcomeX && s == SideX) || (o == OutcomeO && s == SideO)
}

// Whether the square (or game) is already finished
func (o Outcome) Decided() bool {
	return o != OutcomeUndecided
}

func (o Outcome) String() string {
	switch o {
	case OutcomeX:
		return "X"
	case OutcomeO:
		return "O"
	case OutcomeDraw:
		return "Draw"
	default:
		return "Undecided"
	}
}
