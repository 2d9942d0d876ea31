package main

/*

Plays a series of games between two engine configurations,
and prints the summary as JSON.

*/

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/uttt-mcts/pkg/bench"
	"github.com/IlikeChooros/uttt-mcts/pkg/mcts"
)

func main() {
	games := flag.Uint("games", 20, "number of games")
	workers := flag.Uint("workers", 2, "number of concurrent games")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	p1Cycles := flag.Uint("p1-cycles", uint(mcts.DefaultCyclesLimit), "player 1 search iterations per move")
	p2Cycles := flag.Uint("p2-cycles", uint(mcts.DefaultCyclesLimit), "player 2 search iterations per move")
	p1C := flag.Float64("p1-c", mcts.DefaultExplorationParam, "player 1 exploration parameter")
	p2C := flag.Float64("p2-c", mcts.DefaultExplorationParam, "player 2 exploration parameter")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *level)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()

	p1 := bench.DefaultPlayerConfig(fmt.Sprintf("mcts-%d-c%.2f", *p1Cycles, *p1C))
	p1.Cycles, p1.ExplorationParam = uint32(*p1Cycles), *p1C
	p2 := bench.DefaultPlayerConfig(fmt.Sprintf("mcts-%d-c%.2f", *p2Cycles, *p2C))
	p2.Cycles, p2.ExplorationParam = uint32(*p2Cycles), *p2C

	arena := bench.NewVersusArena(p1, p2).
		Setup(*games, *workers).
		SetListener(bench.NewDefaultListener(logger))
	if *seed != 0 {
		arena.SetSeed(*seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := arena.Run(ctx)
	fmt.Println(summary.String())
	if err != nil {
		if invariant, ok := invariantViolation(err); ok {
			logger.Fatal().Err(err).Str("notation", invariant.Board.Notation()).Msg("broken board state")
		}
		logger.Error().Err(err).Msg("arena failed")
		stop()
		os.Exit(1)
	}
}

// Find the invariant violation anywhere in the error chain
func invariantViolation(err error) (*mcts.InvariantError, bool) {
	var invariant *mcts.InvariantError
	ok := errors.As(err, &invariant)
	return invariant, ok
}
