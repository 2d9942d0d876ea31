package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

const separator = "___ ___ ___"

// Get the 9x9 grid of the board, rows from top to bottom, with 'X', 'O' or ' ' per tile.
// Square s and tile t land at row 3*(s/3) + t/3, column 3*(s%3) + t%3
func Grid(b *uttt.Board) [9][9]byte {
	var grid [9][9]byte
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			square, tile := gridSquare(row, col)
			switch {
			case b.X[square]&(1<<tile) != 0:
				grid[row][col] = 'X'
			case b.O[square]&(1<<tile) != 0:
				grid[row][col] = 'O'
			default:
				grid[row][col] = ' '
			}
		}
	}
	return grid
}

func gridSquare(row, col int) (square, tile uint8) {
	return uint8(3*(row/3) + col/3), uint8(3*(row%3) + col%3)
}

// Draws the board as text, coloring the pieces if the terminal supports it
type Renderer struct {
	output *termenv.Output
	last   uttt.Move
	marked bool
}

// Create new renderer writing to 'w', the color profile is detected from the environment
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{output: termenv.NewOutput(w)}
}

// Same as NewRenderer, but with explicit color profile (use termenv.Ascii for plain text)
func NewRendererWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Highlight given move in the next renders
func (r *Renderer) MarkMove(m uttt.Move) *Renderer {
	r.last = m
	r.marked = true
	return r
}

func (r *Renderer) style(c byte, highlight bool) string {
	s := string(c)
	if c == ' ' {
		return s
	}

	style := r.output.String(s)
	if c == 'X' {
		style = style.Foreground(r.output.Color("1"))
	} else {
		style = style.Foreground(r.output.Color("4"))
	}
	if highlight {
		style = style.Bold().Underline()
	}
	return style.String()
}

// Get the board as text: 9 rows, '|' after every third column,
// and a separator line above and below every band of 3 squares
func (r *Renderer) Render(b *uttt.Board) string {
	grid := Grid(b)
	builder := strings.Builder{}
	builder.WriteString(separator)
	builder.WriteByte('\n')

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			square, tile := gridSquare(row, col)
			highlight := r.marked && r.last.Square == square && r.last.Tile == tile
			builder.WriteString(r.style(grid[row][col], highlight))
			if col%3 == 2 {
				builder.WriteByte('|')
			}
		}
		builder.WriteByte('\n')
		if row%3 == 2 {
			builder.WriteString(separator)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// Write the rendered board to the output
func (r *Renderer) Print(b *uttt.Board) error {
	_, err := io.WriteString(r.output, r.Render(b))
	return err
}
