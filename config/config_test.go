package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"output":"out.txt","numprimes":4,"digits":50,"rounds":16,"offsets":500,"seed":42,"append":true,"debug":true}`), 0644)
	assert.Nil(t, err)

	c, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, "out.txt", c.Output)
	assert.Equal(t, 4, c.NumPrimes)
	assert.Equal(t, 50, c.Digits)
	assert.Equal(t, 16, c.Rounds)
	assert.Equal(t, 500, c.Offsets)
	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.Append)
	assert.True(t, c.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte("{not json"), 0644)
	assert.Nil(t, err)

	_, err = LoadConfig(path)
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{Output: "primes.txt", NumPrimes: 10, Digits: 300, Rounds: 8, Offsets: 10000, Seed: 0}
	assert.Nil(t, good.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero primes", func(c *Config) { c.NumPrimes = 0 }},
		{"one digit", func(c *Config) { c.Digits = 1 }},
		{"zero rounds", func(c *Config) { c.Rounds = 0 }},
		{"too many rounds", func(c *Config) { c.Rounds = 200 }},
		{"zero offsets", func(c *Config) { c.Offsets = 0 }},
		{"negative seed", func(c *Config) { c.Seed = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := good
			tc.mutate(&c)
			assert.NotNil(t, c.Validate())
		})
	}

	// Edges of the permitted ranges are valid.
	edges := good
	edges.Digits = 2
	edges.Rounds = 199
	edges.Offsets = 1
	assert.Nil(t, edges.Validate())
}
