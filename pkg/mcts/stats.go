package mcts

import (
	"fmt"

	"github.com/IlikeChooros/uttt-mcts/pkg/uttt"
)

// Counters of a single move decision
type TreeStats struct {
	Cycles   int    // iterations run
	Skipped  int    // iterations that didn't update any node (terminal leaf with TerminalSkip)
	Terminal int    // iterations that ended on a terminal leaf during selection
	Size     int    // nodes in the tree
	MaxDepth int    // longest selection + expansion path
	TimeMs   int    // elapsed time in milliseconds
	Cps      uint32 // cycles per second
}

func (s TreeStats) String() string {
	return fmt.Sprintf("cycles %d skipped %d terminal %d size %d depth %d time %dms cps %d",
		s.Cycles, s.Skipped, s.Terminal, s.Size, s.MaxDepth, s.TimeMs, s.Cps)
}

// Root child summary after the search
type ChildStats struct {
	Move   uttt.Move
	Wins   uint32
	Visits uint32
}

// Average score in [0, 1] from the perspective of the side that played the move
func (c ChildStats) WinRate() float64 {
	if c.Visits == 0 {
		return 0.5
	}
	return float64(c.Wins) / float64(winScore*c.Visits)
}

func (c ChildStats) String() string {
	return fmt.Sprintf("%s v=%d (wr=%.2f)", c.Move, c.Visits, c.WinRate())
}
