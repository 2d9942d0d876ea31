package mcts

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Single-threaded monte carlo tree search for ultimate tic tac toe,
// the tree is rebuilt from scratch for every move decision
type Engine struct {
	limits         *Limits
	policy         *UCT
	rand           Source
	logger         zerolog.Logger
	listener       StatsListener
	terminalPolicy TerminalPolicy

	// state of the last search
	tree  *Tree
	stats TreeStats
	timer *_Timer
	path  []int
}

// Create new engine with default limits, exploration parameter and random source
func NewEngine() *Engine {
	return &Engine{
		limits:         DefaultLimits(),
		policy:         NewUCT(DefaultExplorationParam),
		rand:           NewSource(SeedGeneratorFn()),
		logger:         zerolog.Nop(),
		listener:       NewStatsListener(),
		terminalPolicy: TerminalBackprop,
		timer:          _NewTimer(),
		path:           make([]int, 0, MaxPlies+2),
	}
}

func (e *Engine) SetLimits(limits *Limits) *Engine {
	if limits != nil {
		e.limits = limits
	}
	return e
}

func (e *Engine) Limits() *Limits {
	return e.limits
}

// Set the random source, use a seeded one for reproducible searches
func (e *Engine) SetRand(rng Source) *Engine {
	if rng != nil {
		e.rand = rng
	}
	return e
}

func (e *Engine) SetLogger(logger zerolog.Logger) *Engine {
	e.logger = logger
	return e
}

func (e *Engine) SetTerminalPolicy(policy TerminalPolicy) *Engine {
	e.terminalPolicy = policy
	return e
}

func (e *Engine) TerminalPolicy() TerminalPolicy {
	return e.terminalPolicy
}

// Selection policy, use it to tune the exploration parameter
func (e *Engine) Policy() *UCT {
	return e.policy
}

func (e *Engine) SetListener(listener StatsListener) *Engine {
	e.listener = listener
	return e
}

func (e *Engine) StatsListener() *StatsListener {
	return &e.listener
}

// Choose a move for the side to move on 'board', 'lastMove' is the move
// that lead to this position (used only as the root's move).
// The board is not modified.
func (e *Engine) BestMove(board uttt.Board, lastMove uttt.Move) (uttt.Move, error) {
	if err := e.Search(board, lastMove); err != nil {
		return uttt.Move{}, err
	}

	best, ok := e.bestChild()
	if !ok {
		return uttt.Move{}, fmt.Errorf("mcts: root has no children after %d cycles: %w", e.stats.Cycles, ErrTerminalPosition)
	}

	e.logger.Debug().
		Str("move", best.Move.String()).
		Uint32("visits", best.Visits).
		Float64("winrate", best.WinRate()).
		Int("cycles", e.stats.Cycles).
		Int("skipped", e.stats.Skipped).
		Int("size", e.stats.Size).
		Int("depth", e.stats.MaxDepth).
		Int("time_ms", e.stats.TimeMs).
		Uint32("cps", e.stats.Cps).
		Msg("best move")

	return best.Move, nil
}

// Build a new tree for given position, running 'Limits.Cycles' iterations.
// Returns ErrTerminalPosition if the game is already over, or *InvariantError
// if the board state machine produced an inconsistent position
func (e *Engine) Search(board uttt.Board, lastMove uttt.Move) error {
	if board.IsTerminated() {
		return fmt.Errorf("mcts: search on %q: %w", board.Notation(), ErrTerminalPosition)
	}

	e.setupSearch(board.Side.Swap(), lastMove)

	for range e.limits.Cycles {
		if err := e.cycle(&board); err != nil {
			e.timer.Stop()
			e.updateStats()
			e.logger.Error().Err(err).Int("cycle", e.stats.Cycles).Msg("search aborted")
			return err
		}

		e.stats.Cycles++
		e.listener.invokeCycle(e)
	}

	e.timer.Stop()
	e.updateStats()
	e.listener.invokeStop(e)
	return nil
}

// Reset the tree and the counters
func (e *Engine) setupSearch(side uttt.Side, lastMove uttt.Move) {
	e.tree = NewTree(side, lastMove)
	e.stats = TreeStats{}
	e.timer.Reset()
}

func (e *Engine) updateStats() {
	e.stats = e.currentStats()
}

func (e *Engine) currentStats() TreeStats {
	stats := e.stats
	stats.TimeMs = e.timer.Deltatime()
	stats.Cps = uint32(stats.Cycles * 1000 / stats.TimeMs)
	if e.tree != nil {
		stats.Size = e.tree.Len()
	}
	return stats
}

// Statistics of the last search
func (e *Engine) Stats() TreeStats {
	return e.stats
}

// Tree of the last search, nil before the first one
func (e *Engine) Tree() *Tree {
	return e.tree
}

// Get the root's children statistics, in move generation order
func (e *Engine) RootChildren() []ChildStats {
	if e.tree == nil {
		return nil
	}

	children := e.tree.ChildNodes(RootIndex)
	result := make([]ChildStats, len(children))
	for i := range children {
		result[i] = ChildStats{
			Move:   children[i].Move,
			Wins:   children[i].Wins,
			Visits: children[i].Visits,
		}
	}
	return result
}

// Root child with the most visits, first one wins ties
func (e *Engine) bestChild() (ChildStats, bool) {
	if e.tree == nil {
		return ChildStats{}, false
	}

	children := e.tree.ChildNodes(RootIndex)
	if len(children) == 0 {
		return ChildStats{}, false
	}

	best := 0
	for i := 1; i < len(children); i++ {
		if children[i].Visits > children[best].Visits {
			best = i
		}
	}

	return ChildStats{
		Move:   children[best].Move,
		Wins:   children[best].Wins,
		Visits: children[best].Visits,
	}, true
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Limits=%v, C=%.2f, Terminal=%s, Stats:{%v}}",
		e.limits, e.policy.ExplorationParam, e.terminalPolicy, e.stats)
}
