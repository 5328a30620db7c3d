package sampler

import (
	"math/rand/v2"
	"time"
)

// Rand is the random stream every sampling boundary draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// sessionStream separates session-derived streams from base streams that
// happen to share a seed value.
const sessionStream = 0x9e3779b97f4a7c15

// NewRand returns a PCG-backed stream seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewSessionRand returns an isolated stream for a session-derived seed.
func NewSessionRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, sessionStream))
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Shuffle permutes n elements in place with Fisher-Yates using r.
func Shuffle(r Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}

// Choice returns a uniformly chosen element of items. ok is false for an
// empty slice, in which case no draw is consumed.
func Choice[T any](r Rand, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[r.IntN(len(items))], true
}

// IntRange returns a uniform integer in [lo, hi].
func IntRange(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
