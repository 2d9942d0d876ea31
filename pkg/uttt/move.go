package uttt

import (
	"errors"
	"strings"
)

var ErrMoveNotation = errors.New("invalid move notation")

// A tile within a small square
type Move struct {
	Tile   uint8
	Square uint8
}

type MoveList []Move

// Convert movelist into a string, uses move notation with space seperation
func (ml MoveList) String() string {
	if len(ml) == 0 {
		return "empty"
	}

	strMoves := make([]string, len(ml))
	for i, m := range ml {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}

// Check if the list contains given move
func (ml MoveList) Contains(m Move) bool {
	for i := range ml {
		if ml[i] == m {
			return true
		}
	}
	return false
}

// Get string representation of the move, will contain
// a/b/c 1/2/3 as coorinates, for example square = 7,
// tile = 2 -> <square part><tile part>
// -> B1c3
//
//	     	A    B    C
//			 0 | 1 | 2	3
//			-----------
//			 3 | 4 | 5	2
//			-----------
//		     6 | 7 | 8	1
func (m Move) String() string {
	if m.Tile >= NSquares || m.Square >= NSquares {
		return "(none)"
	}

	builder := strings.Builder{}
	builder.WriteByte('A' + m.Square%3)
	builder.WriteByte('3' - m.Square/3)
	builder.WriteByte('a' + m.Tile%3)
	builder.WriteByte('3' - m.Tile/3)
	return builder.String()
}

// Convert given move notation (should be done with Move.String()) to a Move
func MoveFromString(str string) (Move, error) {
	if len(str) != 4 {
		return Move{}, ErrMoveNotation
	}

	// Make sure the coordinates are within the range
	_cmp := func(i int, letter byte) bool {
		return (str[i] >= letter && str[i] <= letter+2) &&
			(str[i+1] >= '1' && str[i+1] <= '3')
	}

	if !_cmp(0, 'A') || !_cmp(2, 'a') {
		return Move{}, ErrMoveNotation
	}

	return Move{
		Square: (str[0] - 'A') + ('3'-str[1])*3,
		Tile:   (str[2] - 'a') + ('3'-str[3])*3,
	}, nil
}
