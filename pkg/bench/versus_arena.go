package bench

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/uttt-mcts/pkg/game"
	"github.com/IlikeChooros/uttt-mcts/pkg/mcts"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
different engine configurations.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  PlayerConfig
	Player2  PlayerConfig
	NGames   uint
	NWorkers uint
	Seed     int64
	logger   zerolog.Logger
	listener ListenerLike
}

func NewVersusArena(player1, player2 PlayerConfig) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		Seed:     mcts.SeedGeneratorFn(),
		logger:   zerolog.Nop(),
	}
}

func (va *VersusArena) Setup(nGames uint, nWorkers uint) *VersusArena {
	va.NGames = nGames
	va.NWorkers = max(1, nWorkers)
	return va
}

// Seed of the engines' random sources, each game derives its own
func (va *VersusArena) SetSeed(seed int64) *VersusArena {
	va.Seed = seed
	return va
}

func (va *VersusArena) SetLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger
	return va
}

func (va *VersusArena) SetListener(listener ListenerLike) *VersusArena {
	va.listener = listener
	return va
}

// Play all the games, equally distributed between the workers.
// Blocks until every worker is done, or one of them fails
func (va *VersusArena) Run(ctx context.Context) (VersusSummaryInfo, error) {
	va.VersusArenaStats = VersusArenaStats{}
	nWorkers := max(1, va.NWorkers)
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers

	g, ctx := errgroup.WithContext(ctx)
	start := 0
	for i := range nWorkers {
		n := int(nGames)
		if rest > 0 {
			n++
			rest--
		}

		id, first := int(i), start
		g.Go(func() error {
			return va.worker(ctx, id, first, n)
		})
		start += n
	}

	err := g.Wait()
	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(nWorkers),
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}

	if err != nil {
		va.logger.Error().Err(err).Int("finished", summary.TotalGames).Msg("arena stopped")
		return summary, err
	}

	if va.listener != nil {
		va.listener.Summary(summary)
	}
	return summary, nil
}

// Play games [first, first+n), players alternate who moves first
func (va *VersusArena) worker(ctx context.Context, id, first, n int) error {
	// engines are not thread safe, every worker has its own pair
	p1 := va.Player1.newEngine().SetLogger(va.logger)
	p2 := va.Player2.newEngine().SetLogger(va.logger)
	local := VersusArenaStats{}

	for index := first; index < first+n; index++ {
		info := GameInfo{
			ID:          uuid.NewString(),
			WorkerID:    id,
			Index:       index,
			P1WentFirst: index%2 == 0,
		}
		logger := va.logger.With().Str("game", info.ID).Logger()

		p1.SetRand(mcts.NewSource(va.Seed + 2*int64(index)))
		p2.SetRand(mcts.NewSource(va.Seed + 2*int64(index) + 1))

		var g *game.Game
		if info.P1WentFirst {
			g = game.New(p1, p2)
		} else {
			g = game.New(p2, p1)
		}

		result, err := g.SetLogger(logger).Play(ctx)
		if err != nil {
			return fmt.Errorf("bench: worker %d, game %d (%s): %w", id, index, info.ID, err)
		}

		info.Result = toAgentResult(result, info.P1WentFirst)
		info.Outcome = result.Outcome
		info.Moves = result.Moves
		va.add(info)
		local.add(info)

		if va.listener != nil {
			va.listener.OnGameFinished(info)
		}
	}

	if va.listener != nil {
		va.listener.OnFinishedWork(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        n,
			FinishedGames: local.Total(),
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
		})
	}
	return nil
}
