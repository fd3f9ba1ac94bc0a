// Package search coordinates the parallel hunt for probable primes. Each
// worker walks the odd integers upward from a random starting point,
// skipping multiples of the small wheel primes and applying the Miller-Rabin
// test to the survivors.
package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/bobokapi/MRPrimes/config"
	"github.com/bobokapi/MRPrimes/output"
	"github.com/bobokapi/MRPrimes/randx"
	"github.com/bobokapi/MRPrimes/utils"
	"github.com/bobokapi/MRPrimes/wheel"
)

// Run spawns one worker per requested prime and joins them all before
// returning. Workers share the read-only wheel table, the two locked random
// streams, the stats and the output sink; results are independent and
// unordered. The first worker error is returned once every worker has
// stopped.
func Run(cfg Config, sink *output.Sink, stats *config.SearchStats) error {
	initStart := time.Now()
	table := wheel.NewTable(cfg.WheelSize)

	// Two independent streams seeded identically. Start-point draws must not
	// perturb the witness sequence, or a fixed seed would find different
	// primes depending on how the scheduler interleaves the workers.
	starts := randx.New(cfg.Seed)
	witnesses := randx.New(cfg.Seed)

	utils.LogMessage(fmt.Sprintf("Initialization time: %v (%d wheel primes)",
		time.Since(initStart).Round(time.Microsecond), len(table)), true)

	var wg sync.WaitGroup
	errChan := make(chan error, cfg.NumPrimes)
	for i := 0; i < cfg.NumPrimes; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := findPrime(id, cfg, table, starts, witnesses, sink, stats); err != nil {
				errChan <- fmt.Errorf("worker %d: %w", id, err)
			}
		}(i)
	}
	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		return err
	}
	return nil
}
