package mcts

// Other types, which didn't fit to MCTS or Node files

// What to do with an iteration, when the selection reaches already finished game
type TerminalPolicy int

type SeedGeneratorFnType func() int64

func (p TerminalPolicy) String() string {
	switch p {
	case TerminalBackprop:
		return "backprop"
	case TerminalSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Parse the policy name, as returned by String
func ParseTerminalPolicy(s string) (TerminalPolicy, bool) {
	switch s {
	case "backprop":
		return TerminalBackprop, true
	case "skip":
		return TerminalSkip, true
	}
	return TerminalBackprop, false
}
