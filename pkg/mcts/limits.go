package mcts

import (
	"encoding/json"
	"strings"
)

// Number of iterations run by the reference bot per move
const DefaultCyclesLimit uint32 = 1000

type Limits struct {
	Cycles uint32
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

func DefaultLimits() *Limits {
	return &Limits{
		Cycles: DefaultCyclesLimit,
	}
}

// Set the number of selection, expansion, rollout and backpropagation cycles
// in monte-carlo tree search, at least 1
func (l *Limits) SetCycles(cycles uint32) *Limits {
	l.Cycles = max(1, cycles)
	return l
}
