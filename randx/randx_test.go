package randx

import (
	"math/big"
	"sync"
	"testing"
)

func TestBigIntNBounds(t *testing.T) {
	src := New(42)
	max := big.NewInt(1000)
	for i := 0; i < 1000; i++ {
		n := src.BigIntN(max)
		if n.Sign() < 0 || n.Cmp(max) >= 0 {
			t.Fatalf("draw %v outside [0, %v)", n, max)
		}
	}
}

// Streams with equal seeds must produce identical sequences; this is what
// makes a whole run reproducible.
func TestSameSeedSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)
	max := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 100; i++ {
		x := a.BigIntN(max)
		y := b.BigIntN(max)
		if x.Cmp(y) != 0 {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
}

func TestConcurrentDraws(t *testing.T) {
	src := New(1)
	max := new(big.Int).Lsh(big.NewInt(1), 64)

	var wg sync.WaitGroup
	results := make([][]*big.Int, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				results[w] = append(results[w], src.BigIntN(max))
			}
		}(w)
	}
	wg.Wait()

	for w, draws := range results {
		for i, n := range draws {
			if n.Sign() < 0 || n.Cmp(max) >= 0 {
				t.Fatalf("worker %d draw %d outside range: %v", w, i, n)
			}
		}
	}
}
