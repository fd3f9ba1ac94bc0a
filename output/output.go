// Package output persists discovered primes, one decimal integer per line.
package output

import (
	"fmt"
	"math/big"
	"os"
	"sync"
)

// Sink is the append-only result file shared by all workers. The file is
// opened and closed around every append so primes already found survive an
// aborted run.
type Sink struct {
	mu   sync.Mutex
	path string
}

// NewSink prepares the output file, truncating any existing content unless
// appendMode is set. An open failure here aborts the run before any search
// starts: losing a computed prime later would be worse than failing now.
func NewSink(path string, appendMode bool) (*Sink, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if !appendMode {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &Sink{path: path}, nil
}

// Append writes one prime as a decimal line. The whole open-write-close
// sequence is a single critical section so lines never interleave.
func (s *Sink) Append(n *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", s.path, err)
	}
	if _, err := fmt.Fprintf(f, "%s\n", n.Text(10)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to output file %s: %w", s.path, err)
	}
	return f.Close()
}

// Path returns the sink's file location.
func (s *Sink) Path() string {
	return s.path
}
