package uttt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	StartingPosition string = "9/9/9/9/9/9/9/9/9 x -"
)

var ErrNotation = errors.New("invalid notation")

// string notation for the ultimate tic tac toe position
// Much like the FEN representation of a chessboard
// Will result in something like this:
//
//	S/S/S/S/S/S/S/S/S <turn> <current square>
//
// where `S` is one small square string (tiles 0..8, row-major), same as FEN,
// but instead of chess pieces we have got 'o' and 'x', digits count empty tiles.
//
// <turn> - either 'o' or 'x'
//
// <current square> - where should current player make move on the
// big board, an integer between 0 and 8, or - if player can move anywhere
//
// Examples:
//
// * 9/9/9/9/9/9/9/9/9 x -
//
// * 9/9/9/7x1/4xo3/8x/9/4o4/o8 x 0
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for s := range NSquares {
		counter := 0
		for t := range NSquares {
			bit := uint16(1) << t
			piece := byte(0)
			if b.X[s]&bit != 0 {
				piece = 'x'
			} else if b.O[s]&bit != 0 {
				piece = 'o'
			}

			if piece == 0 {
				counter++
				continue
			}

			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte(piece)
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if s != NSquares-1 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	if b.Side == SideO {
		builder.WriteByte('o')
	} else {
		builder.WriteByte('x')
	}

	builder.WriteByte(' ')
	if sq, ok := b.CurrentSquare(); ok {
		builder.WriteByte('0' + sq)
	} else {
		builder.WriteByte('-')
	}

	return builder.String()
}

// Create the board from given notation string, square outcomes are derived
// from the pieces, "startpos" is accepted as the starting position
func FromNotation(notation string) (*Board, error) {
	if notation == "startpos" {
		notation = StartingPosition
	}

	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 space separated sections, got %d", ErrNotation, len(fields))
	}

	squares := strings.Split(fields[0], "/")
	if len(squares) != NSquares {
		return nil, fmt.Errorf("%w: expected %d squares, got %d", ErrNotation, NSquares, len(squares))
	}

	b := NewBoard()
	for s, square := range squares {
		tile := 0
		for i := 0; i < len(square); i++ {
			switch v := square[i]; {
			case v == 'x', v == 'o':
				if tile >= NSquares {
					return nil, fmt.Errorf("%w: too many tiles in square %d", ErrNotation, s)
				}
				if v == 'x' {
					b.X[s] |= 1 << tile
				} else {
					b.O[s] |= 1 << tile
				}
				tile++
			case '1' <= v && v <= '9':
				// Number, meaning skip given number of tiles
				tile += int(v - '0')
			default:
				return nil, fmt.Errorf("%w: unexpected token %q in square %d", ErrNotation, v, s)
			}
		}

		if tile != NSquares {
			return nil, fmt.Errorf("%w: square %d has %d tiles, expected %d", ErrNotation, s, tile, NSquares)
		}
		b.Squares[s] = b.SquareOutcome(uint8(s))
	}

	switch fields[1] {
	case "x":
		b.Side = SideX
	case "o":
		b.Side = SideO
	default:
		return nil, fmt.Errorf("%w: invalid side %q", ErrNotation, fields[1])
	}

	switch v := fields[2]; {
	case v == "-":
		b.SetCurrentSquare(NoSquare)
	case len(v) == 1 && v[0] >= '0' && v[0] <= '8':
		b.SetCurrentSquare(v[0] - '0')
	default:
		return nil, fmt.Errorf("%w: invalid current square %q, expected a digit 0-8 or -", ErrNotation, v)
	}

	return b, nil
}
