package bench

import (
	"encoding/json"
	"sync/atomic"

	"github.com/IlikeChooros/uttt-mcts/pkg/game"
	"github.com/IlikeChooros/uttt-mcts/pkg/mcts"
	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	default:
		return "draw"
	}
}

// Engine configuration of a single arena player
type PlayerConfig struct {
	Name             string
	Cycles           uint32
	ExplorationParam float64
	TerminalPolicy   mcts.TerminalPolicy
}

func DefaultPlayerConfig(name string) PlayerConfig {
	return PlayerConfig{
		Name:             name,
		Cycles:           mcts.DefaultCyclesLimit,
		ExplorationParam: mcts.DefaultExplorationParam,
		TerminalPolicy:   mcts.TerminalBackprop,
	}
}

func (c PlayerConfig) newEngine() *mcts.Engine {
	engine := mcts.NewEngine().
		SetLimits(mcts.DefaultLimits().SetCycles(c.Cycles)).
		SetTerminalPolicy(c.TerminalPolicy)
	engine.Policy().SetExplorationParam(c.ExplorationParam)
	return engine
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) add(info GameInfo) {
	switch info.Result {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
		return
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	// X always moves first
	if info.Outcome == uttt.OutcomeX {
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

// Single finished arena game
type GameInfo struct {
	ID          string
	WorkerID    int
	Index       int // global game number
	P1WentFirst bool
	Result      VersusMatchResult
	Outcome     uttt.Outcome
	Moves       uttt.MoveList
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

func (s VersusSummaryInfo) String() string {
	data, _ := json.Marshal(s)
	return string(data)
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(result game.Result, p1WentFirst bool) VersusMatchResult {
	winner, ok := result.Winner()
	if !ok {
		return VersusDraw
	}

	if p1WentFirst == (winner == uttt.SideX) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
