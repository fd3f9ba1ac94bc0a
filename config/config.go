// config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadConfig loads configuration from a JSON file. A missing file is
// reported as an error; callers decide whether that is fatal.
func LoadConfig(path string) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	err = json.Unmarshal(data, &config)
	return config, err
}

// Validate rejects configurations the search cannot honor. It runs before
// any worker is spawned; failures are caller errors, not retryable.
func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output file path must not be empty")
	}
	if c.NumPrimes <= 0 {
		return fmt.Errorf("number of primes must be greater than 0, got %d", c.NumPrimes)
	}
	if c.Digits < 2 {
		return fmt.Errorf("number of digits must be at least 2, got %d", c.Digits)
	}
	if c.Rounds <= 0 || c.Rounds >= 200 {
		return fmt.Errorf("Miller-Rabin round count must be between 1 and 199, got %d", c.Rounds)
	}
	if c.Offsets <= 0 {
		return fmt.Errorf("number of offset primes must be greater than 0, got %d", c.Offsets)
	}
	if c.Seed < 0 {
		return fmt.Errorf("seed must be greater than or equal to 0, got %d", c.Seed)
	}
	return nil
}
