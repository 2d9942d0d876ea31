package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Anything that can choose a move in a position, *mcts.Engine satisfies it
type Player interface {
	BestMove(board uttt.Board, last uttt.Move) (uttt.Move, error)
}

// First move of every game, center of the center square, played for X without a search
var SeedMove = uttt.Move{Tile: 4, Square: 4}

// Placeholder for the last move, when no move was played yet
var NoMove = uttt.Move{Tile: uttt.NoSquare, Square: uttt.NoSquare}

var ErrPlayer = errors.New("player failed to choose a move")

// Called after every move, 'board' is the position after the move
type MoveFunc func(board *uttt.Board, move uttt.Move, ply int)

type Result struct {
	Outcome uttt.Outcome
	Moves   uttt.MoveList // every move played, the opening included
	Board   uttt.Board    // final position
}

// Winner of the game, false on a draw
func (r Result) Winner() (uttt.Side, bool) {
	switch r.Outcome {
	case uttt.OutcomeX:
		return uttt.SideX, true
	case uttt.OutcomeO:
		return uttt.SideO, true
	}
	return uttt.SideX, false
}

// Single game between two players, X always moves first
type Game struct {
	players [2]Player
	start   uttt.Board
	opening uttt.MoveList
	onMove  MoveFunc
	logger  zerolog.Logger
}

// Create new game from the starting position, opened with the SeedMove
func New(x, o Player) *Game {
	return &Game{
		players: [2]Player{x, o},
		start:   *uttt.NewBoard(),
		opening: uttt.MoveList{SeedMove},
		logger:  zerolog.Nop(),
	}
}

// Start from given position instead of the starting one
func (g *Game) SetPosition(board uttt.Board) *Game {
	g.start = board
	return g
}

// Moves played before the players take over, none means X's player moves first
func (g *Game) SetOpening(moves ...uttt.Move) *Game {
	g.opening = append(uttt.MoveList{}, moves...)
	return g
}

func (g *Game) OnMove(f MoveFunc) *Game {
	g.onMove = f
	return g
}

func (g *Game) SetLogger(logger zerolog.Logger) *Game {
	g.logger = logger
	return g
}

func (g *Game) place(board *uttt.Board, result *Result, move uttt.Move) error {
	if err := board.PlaceLegal(move); err != nil {
		return err
	}

	result.Moves = append(result.Moves, move)
	if g.onMove != nil {
		g.onMove(board, move, len(result.Moves))
	}
	return nil
}

// Play the game until it's decided. On error, the result holds the game
// up to the failing move
func (g *Game) Play(ctx context.Context) (Result, error) {
	board := g.start
	result := Result{Moves: make(uttt.MoveList, 0, uttt.MaxPlies)}
	last := NoMove

	for _, m := range g.opening {
		if err := g.place(&board, &result, m); err != nil {
			result.Board = board
			return result, fmt.Errorf("game: opening move %s: %w", m, err)
		}
		last = m
	}

	for !board.IsTerminated() {
		if err := ctx.Err(); err != nil {
			result.Board = board
			return result, err
		}

		side := board.Side
		player := g.players[side]
		if player == nil {
			result.Board = board
			return result, fmt.Errorf("game: no player for %s: %w", side, ErrPlayer)
		}

		move, err := player.BestMove(board, last)
		if err != nil {
			result.Board = board
			return result, fmt.Errorf("game: %s at %q: %w: %w", side, board.Notation(), ErrPlayer, err)
		}

		if err := g.place(&board, &result, move); err != nil {
			result.Board = board
			return result, fmt.Errorf("game: %s played %s: %w", side, move, err)
		}

		g.logger.Debug().
			Str("side", side.String()).
			Str("move", move.String()).
			Int("ply", len(result.Moves)).
			Msg("move played")
		last = move
	}

	result.Board = board
	result.Outcome = board.Outcome()
	g.logger.Debug().
		Str("outcome", result.Outcome.String()).
		Int("plies", len(result.Moves)).
		Msg("game over")
	return result, nil
}
