package search

// Config holds configuration for one search run
type Config struct {
	NumPrimes int   // one worker, one prime each
	Digits    int   // decimal digits per prime
	Rounds    int   // Miller-Rabin rounds per candidate
	WheelSize int   // number of small offset primes
	Seed      int64 // seeds both random streams
	Pin       bool  // pin workers to CPU cores
	Debug     bool
}
