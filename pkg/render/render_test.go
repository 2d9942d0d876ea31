package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

func TestGrid(t *testing.T) {
	board := uttt.NewBoard()
	board.Place(uttt.Move{Tile: 4, Square: 4}) // center of the grid
	board.Place(uttt.Move{Tile: 0, Square: 4})
	board.Place(uttt.Move{Tile: 8, Square: 0})

	grid := Grid(board)
	require.Equal(t, byte('X'), grid[4][4])
	require.Equal(t, byte('O'), grid[3][3])
	require.Equal(t, byte('X'), grid[2][2])

	empty := 0
	for _, row := range grid {
		empty += bytes.Count(row[:], []byte{' '})
	}
	require.Equal(t, 78, empty)
}

func TestGridCorners(t *testing.T) {
	board, err := uttt.FromNotation("x8/9/8o/9/9/9/o8/9/8x x -")
	require.NoError(t, err)

	grid := Grid(board)
	require.Equal(t, byte('X'), grid[0][0])
	require.Equal(t, byte('O'), grid[2][8])
	require.Equal(t, byte('O'), grid[6][0])
	require.Equal(t, byte('X'), grid[8][8])
}

func TestRenderPlain(t *testing.T) {
	board := uttt.NewBoard()
	board.Place(uttt.Move{Tile: 4, Square: 4})
	board.Place(uttt.Move{Tile: 0, Square: 4})

	var buf bytes.Buffer
	r := NewRendererWithProfile(&buf, termenv.Ascii)
	require.NoError(t, r.Print(board))

	expected := strings.Join([]string{
		"___ ___ ___",
		"   |   |   |",
		"   |   |   |",
		"   |   |   |",
		"___ ___ ___",
		"   |O  |   |",
		"   | X |   |",
		"   |   |   |",
		"___ ___ ___",
		"   |   |   |",
		"   |   |   |",
		"   |   |   |",
		"___ ___ ___",
		"",
	}, "\n")
	require.Equal(t, expected, buf.String())

	// Highlighting is invisible without colors
	require.Equal(t, expected, r.MarkMove(uttt.Move{Tile: 0, Square: 4}).Render(board))
}

func TestRenderColors(t *testing.T) {
	board := uttt.NewBoard()
	board.Place(uttt.Move{Tile: 4, Square: 4})

	r := NewRendererWithProfile(&bytes.Buffer{}, termenv.ANSI)
	out := r.Render(board)
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "X")
	require.NotContains(t, out, "O")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintReportsWriteError(t *testing.T) {
	r := NewRendererWithProfile(failingWriter{}, termenv.Ascii)
	require.Error(t, r.Print(uttt.NewBoard()))
}
