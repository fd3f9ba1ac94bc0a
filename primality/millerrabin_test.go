package primality

import (
	"math/big"
	"testing"

	"github.com/bobokapi/MRPrimes/randx"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad fixture %q", s)
	}
	return n
}

func TestKnownPrimes(t *testing.T) {
	primes := []string{
		"7",
		"104729", // the 10000th prime
		"618970019642690137449562111",             // 2^89 - 1
		"170141183460469231731687303715884105727", // 2^127 - 1
	}
	rounds := []int{1, 2, 8, 64, 128}

	for _, s := range primes {
		n := mustBig(t, s)
		for _, k := range rounds {
			witnesses := randx.New(1)
			if !IsProbablePrime(n, k, witnesses) {
				t.Errorf("IsProbablePrime(%s, %d) = false, want true", s, k)
			}
		}
	}
}

func TestKnownComposites(t *testing.T) {
	m89 := mustBig(t, "618970019642690137449562111")
	m107 := mustBig(t, "162259276829213363391578010288127")
	semiprime := new(big.Int).Mul(m89, m107)

	composites := []*big.Int{
		big.NewInt(9),
		big.NewInt(341), // strong pseudoprime to base 2; random witnesses must catch it
		semiprime,
	}
	rounds := []int{8, 16, 40}

	for _, n := range composites {
		for _, k := range rounds {
			witnesses := randx.New(1)
			if IsProbablePrime(n, k, witnesses) {
				t.Errorf("IsProbablePrime(%v, %d) = true, want false", n, k)
			}
		}
	}
}

// The test must agree with the standard library's verdict across a stretch
// of odd integers.
func TestAgreesWithStdlib(t *testing.T) {
	witnesses := randx.New(7)
	for i := int64(5); i < 2001; i += 2 {
		n := big.NewInt(i)
		got := IsProbablePrime(n, 16, witnesses)
		want := n.ProbablyPrime(20)
		if got != want {
			t.Errorf("IsProbablePrime(%d, 16) = %v, stdlib says %v", i, got, want)
		}
	}
}
