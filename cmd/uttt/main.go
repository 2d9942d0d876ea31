package main

/*

Plays a full game of ultimate tic tac toe, the engine plays both sides.
If you don't know the rules, see: https://en.wikipedia.org/wiki/Ultimate_tic-tac-toe

The game starts with X in the center of the center square, then every move
is chosen by a fresh monte carlo tree search.

*/

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/uttt-mcts/pkg/game"
	"github.com/IlikeChooros/uttt-mcts/pkg/mcts"
	"github.com/IlikeChooros/uttt-mcts/pkg/render"
	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

func main() {
	cycles := flag.Uint("cycles", uint(mcts.DefaultCyclesLimit), "search iterations per move")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	c := flag.Float64("c", mcts.DefaultExplorationParam, "UCB1 exploration parameter")
	color := flag.String("color", "auto", "board colors: auto, always or never")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	notation := flag.String("notation", "", "start from this position instead of the starting one")
	terminal := flag.String("terminal", mcts.TerminalBackprop.String(), "terminal leaf policy: backprop or skip")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *level)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()

	policy, ok := mcts.ParseTerminalPolicy(*terminal)
	if !ok {
		logger.Fatal().Str("terminal", *terminal).Msg("invalid terminal policy")
	}

	var renderer *render.Renderer
	switch *color {
	case "auto":
		renderer = render.NewRenderer(os.Stdout)
	case "always":
		renderer = render.NewRendererWithProfile(os.Stdout, termenv.ANSI)
	case "never":
		renderer = render.NewRendererWithProfile(os.Stdout, termenv.Ascii)
	default:
		logger.Fatal().Str("color", *color).Msg("invalid color mode")
	}

	if *seed != 0 {
		mcts.SetSeedGeneratorFn(func() int64 { return *seed })
	}

	engine := mcts.NewEngine().
		SetLimits(mcts.DefaultLimits().SetCycles(uint32(*cycles))).
		SetTerminalPolicy(policy).
		SetLogger(logger)
	engine.Policy().SetExplorationParam(*c)
	logger.Debug().Str("engine", engine.String()).Msg("engine ready")

	g := game.New(engine, engine).SetLogger(logger)
	if *notation != "" {
		board, err := uttt.FromNotation(*notation)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid position")
		}
		g.SetPosition(*board).SetOpening()
	}

	g.OnMove(func(board *uttt.Board, move uttt.Move, ply int) {
		fmt.Printf("%d. %s played %s\n", ply, board.Side.Swap(), move)
		if err := renderer.MarkMove(move).Print(board); err != nil {
			logger.Warn().Err(err).Msg("failed to render the board")
		}

		if ply > 1 {
			for _, child := range engine.RootChildren() {
				logger.Debug().Str("child", child.String()).Msg("root child")
			}
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := g.Play(ctx)
	if err != nil {
		var invariant *mcts.InvariantError
		if errors.As(err, &invariant) {
			logger.Fatal().Err(err).Msg("broken board state")
		}
		logger.Error().Err(err).Msg("game stopped")
		stop()
		os.Exit(1)
	}

	fmt.Printf("Outcome: %s after %d moves\n", result.Outcome, len(result.Moves))
	fmt.Printf("Position: %s\n", result.Board.Notation())
}
