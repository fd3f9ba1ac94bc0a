// Package wheel implements the offset-prime sieve that lets the search skip
// odd candidates divisible by small primes without recomputing a modulus at
// every step.
package wheel

import "math/big"

var two = big.NewInt(2)

// Table holds the first n odd primes in increasing order. It is built once
// per run and shared read-only by every worker.
type Table []uint32

// NewTable returns the first count odd primes (3, 5, 7, ...), found by trial
// division against the primes collected so far.
func NewTable(count int) Table {
	t := make(Table, 0, count)
	for n := uint32(3); len(t) < count; n += 2 {
		prime := true
		for _, p := range t {
			if n%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			t = append(t, n)
		}
	}
	return t
}

// Offsets is the per-candidate divisibility state: entry i is half the
// candidate's even-adjusted remainder mod table prime i. It is 0 exactly
// when that prime divides the current candidate, and advances by one (mod
// the prime) with each +2 step of the candidate.
type Offsets []uint32

// Init computes the offset vector for candidate as it stands. The remainder
// mod each prime is forced even by adding the prime when it is odd (both the
// candidate and the prime are odd), then halved to express it in +2 steps.
func (t Table) Init(candidate *big.Int) Offsets {
	o := make(Offsets, len(t))
	r := new(big.Int)
	p := new(big.Int)
	for i, prime := range t {
		p.SetUint64(uint64(prime))
		m := uint32(r.Mod(candidate, p).Uint64())
		if m%2 == 1 {
			m += prime
		}
		o[i] = m / 2
	}
	return o
}

// Step updates the offsets for one +2 increment of the candidate. An offset
// that reaches its prime wraps back to 0.
func (t Table) Step(o Offsets) {
	for i, prime := range t {
		o[i]++
		if o[i] == prime {
			o[i] = 0
		}
	}
}

// AnyZero reports whether some table prime divides the current candidate.
func (o Offsets) AnyZero() bool {
	for _, v := range o {
		if v == 0 {
			return true
		}
	}
	return false
}

// Advance moves candidate forward in +2 steps until no table prime divides
// it, keeping o in lock-step. Callers must run Init and then Advance before
// the first primality test so a divisible starting point is resolved.
func (t Table) Advance(candidate *big.Int, o Offsets) {
	for o.AnyZero() {
		candidate.Add(candidate, two)
		t.Step(o)
	}
}
