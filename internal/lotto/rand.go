package lotto

import (
	"math/rand"
	"time"
)

// Rand is the uniform source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// roll returns a uniform integer in [1, sides].
func roll(r Rand, sides int) int {
	return r.Intn(sides) + 1
}
