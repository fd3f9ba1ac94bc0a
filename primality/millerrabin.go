// Package primality implements the Miller-Rabin probabilistic primality
// test on arbitrary-precision integers.
package primality

import (
	"math/big"

	"github.com/bobokapi/MRPrimes/randx"
)

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// IsProbablePrime runs rounds independent Miller-Rabin trials on the odd
// integer n > 4, drawing witnesses from the shared stream. A true result is
// wrong with probability at most 4^-rounds; a false result is definitive.
// There are no internal retries; the round count is the caller's confidence
// knob.
func IsProbablePrime(n *big.Int, rounds int, witnesses *randx.Locked) bool {
	// Write n - 1 as 2^s * d with d odd.
	d := new(big.Int).Sub(n, one)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinus1 := new(big.Int).Sub(n, one)
	span := new(big.Int).Sub(n, four)
	x := new(big.Int)

	for i := 0; i < rounds; i++ {
		// Witness in [2, n-2]. The stream lock is released inside BigIntN,
		// before the expensive exponentiation below.
		a := witnesses.BigIntN(span)
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		passed := false
		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(one) == 0 {
				return false
			}
			if x.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false
		}
	}
	return true
}
