package core

import "math/rand"

// Rand is the randomness the engine needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded generator for reproducible refills.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
