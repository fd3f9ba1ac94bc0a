package search

import (
	"fmt"
	"math/big"

	"github.com/bobokapi/MRPrimes/randx"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// generateStart returns a uniform random odd integer with exactly digits
// decimal digits. A draw from [0, 45*10^(digits-2)) is doubled, which keeps
// it even and below 9*10^(digits-1), then shifted up by 10^(digits-1) and
// incremented. That covers every odd integer in the digit range exactly
// once.
func generateStart(digits int, starts *randx.Locked) (*big.Int, error) {
	if digits < 2 {
		return nil, fmt.Errorf("digit count must be at least 2, got %d", digits)
	}

	span := new(big.Int).Exp(ten, big.NewInt(int64(digits-2)), nil)
	span.Mul(span, big.NewInt(45))

	n := starts.BigIntN(span)
	n.Lsh(n, 1)

	low := new(big.Int).Exp(ten, big.NewInt(int64(digits-1)), nil)
	n.Add(n, low)
	n.Add(n, one)
	return n, nil
}
