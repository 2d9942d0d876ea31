package mcts

import (
	"time"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Exploration parameter used in UCB1 formula, higher values increase exploration
// while lower values increase exploitation.
const DefaultExplorationParam float64 = 1.4

// Longest possible selection path, and rollout
const MaxPlies = uttt.MaxPlies

const (
	// Rollout scores, awarded to the node's side
	lossScore uint32 = 0
	drawScore uint32 = 1
	winScore  uint32 = 2
)

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

const (
	// A terminal leaf found during selection is scored with the game's outcome,
	// and backpropagated as if it was a rollout
	TerminalBackprop TerminalPolicy = iota

	// A terminal leaf found during selection discards the whole iteration,
	// no node statistics are updated
	TerminalSkip
)
