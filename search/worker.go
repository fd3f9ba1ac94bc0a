package search

import (
	"fmt"

	"github.com/bobokapi/MRPrimes/config"
	"github.com/bobokapi/MRPrimes/output"
	"github.com/bobokapi/MRPrimes/primality"
	"github.com/bobokapi/MRPrimes/randx"
	"github.com/bobokapi/MRPrimes/utils"
	"github.com/bobokapi/MRPrimes/wheel"
)

// findPrime is the body of one worker: seed a random starting point, then
// sieve and test forward through the odd integers until a probable prime
// turns up, and record and persist it. Each call produces exactly one prime.
// The candidate and its offset vector are worker-local; only the random
// streams, the stats and the sink are shared.
func findPrime(id int, cfg Config, table wheel.Table, starts, witnesses *randx.Locked, sink *output.Sink, stats *config.SearchStats) error {
	if cfg.Pin {
		pinWorker(id, cfg.Debug)
	}

	n, err := generateStart(cfg.Digits, starts)
	if err != nil {
		return err
	}

	// The starting point itself may be divisible by a wheel prime, so the
	// offsets must be initialized and advanced before the first test.
	offsets := table.Init(n)
	table.Advance(n, offsets)

	for {
		stats.Lock()
		stats.CandidatesTested++
		stats.Unlock()

		// Testing before the increment means nothing runs after a true
		// result.
		if primality.IsProbablePrime(n, cfg.Rounds, witnesses) {
			break
		}

		n.Add(n, two)
		table.Step(offsets)
		table.Advance(n, offsets)
	}

	stats.Lock()
	stats.PrimesFound++
	found := stats.PrimesFound
	stats.Unlock()
	utils.LogMessage(fmt.Sprintf("Prime #%d found", found), true)

	return sink.Append(n)
}
