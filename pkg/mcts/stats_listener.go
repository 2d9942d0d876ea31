package mcts

import "github.com/IlikeChooros/uttt-mcts/pkg/uttt"

type ListenerTreeStats struct {
	TreeStats
	BestMove uttt.Move
	Visits   uint32 // visits of the best root child
	WinRate  float64
}

// Convert engine's state to 'ListenerTreeStats' struct
func toListenerStats(e *Engine) ListenerTreeStats {
	stats := ListenerTreeStats{TreeStats: e.currentStats()}
	if best, ok := e.bestChild(); ok {
		stats.BestMove = best.Move
		stats.Visits = best.Visits
		stats.WinRate = best.WinRate()
	}
	return stats
}

// Listener function callback, will recieve current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc func(ListenerTreeStats)

type StatsListener struct {
	// called every N full iterations
	onCycle ListenerFunc
	nCycles int

	// called when the search stops
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach new on iteration callback, called every 'SetCycleInterval' cycles
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	listener.nCycles = max(1, n)
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeCycle(e *Engine) {
	if listener.onCycle != nil && e.stats.Cycles%max(1, listener.nCycles) == 0 {
		listener.onCycle(toListenerStats(e))
	}
}

func (listener *StatsListener) invokeStop(e *Engine) {
	if listener.onStop != nil {
		listener.onStop(toListenerStats(e))
	}
}
