// Package randx wraps math/rand sources so search workers can share them.
//
// A run uses two independent streams, one for search starting points and one
// for Miller-Rabin witnesses, both seeded with the same value. Keeping the
// streams separate makes a fixed seed reproduce the same primes no matter
// how the scheduler interleaves the workers: each stream's draw sequence
// depends only on call order within that stream.
package randx

import (
	"math/big"
	"math/rand"
	"sync"

	"github.com/bobokapi/MRPrimes/utils"
)

// Locked serializes draws from a single *rand.Rand stream. The lock covers
// one draw at a time, never a caller's surrounding computation.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a stream seeded with seed.
func New(seed int64) *Locked {
	return &Locked{r: utils.NewRand(seed)}
}

// BigIntN draws a uniform integer in [0, max). max must be positive.
func (l *Locked) BigIntN(max *big.Int) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Rand(l.r, max)
}
