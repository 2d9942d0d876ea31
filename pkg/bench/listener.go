package bench

import "github.com/rs/zerolog"

// Receives the arena events, OnGameFinished and OnFinishedWork are called
// from the worker goroutines
type ListenerLike interface {
	OnGameFinished(info GameInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
}

// Logs the arena progress
type DefaultListener struct {
	logger zerolog.Logger
}

func NewDefaultListener(logger zerolog.Logger) *DefaultListener {
	return &DefaultListener{logger: logger}
}

func (d *DefaultListener) OnGameFinished(info GameInfo) {
	d.logger.Info().
		Str("game", info.ID).
		Int("worker", info.WorkerID).
		Int("index", info.Index).
		Bool("p1_first", info.P1WentFirst).
		Str("winner", info.Result.String()).
		Str("outcome", info.Outcome.String()).
		Int("plies", len(info.Moves)).
		Msg("game finished")
}

func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	d.logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Int("p1", info.P1Wins).
		Int("p2", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker done")
}

func (d *DefaultListener) Summary(info VersusSummaryInfo) {
	d.logger.Info().
		Str("p1", info.P1Name).
		Str("p2", info.P2Name).
		Int("games", info.TotalGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Int("first_to_move_wins", info.FirstToMoveWins).
		Int("second_to_move_wins", info.SecondToMoveWins).
		Msg("arena summary")
}
