// config/types.go
package config

import "sync"

// Config holds the knobs for a prime search run. Values can come from the
// command line or from a JSON config file; flags win over the file.
type Config struct {
	Output    string `json:"output"`
	NumPrimes int    `json:"numprimes"`
	Digits    int    `json:"digits"`
	Rounds    int    `json:"rounds"`
	Offsets   int    `json:"offsets"`
	Seed      int64  `json:"seed"`
	Append    bool   `json:"append"`
	Pin       bool   `json:"pin"`
	Debug     bool   `json:"debug"`
}

// SearchStats tracks progress counters shared by all search workers.
type SearchStats struct {
	PrimesFound      int    // completed searches, counted in completion order
	CandidatesTested uint64 // candidates handed to the Miller-Rabin test
	mu               sync.Mutex
}

// Lock locks the SearchStats mutex
func (s *SearchStats) Lock() {
	s.mu.Lock()
}

// Unlock unlocks the SearchStats mutex
func (s *SearchStats) Unlock() {
	s.mu.Unlock()
}
