package mcts

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Random number source used by the rollouts and the weighted selection,
// satisfied by both *rand.Rand and *frand.RNG
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Create a fast ChaCha based generator, seeded with given value
func NewSource(seed int64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}
