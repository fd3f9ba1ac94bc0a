package utils

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

const logFileName = "mrprimes.log"

// LogMessage handles both console output and file logging
func LogMessage(message string, console bool) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("%s | %s", timestamp, message)

	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", logFileName, err)
		return
	}
	defer f.Close()

	logger := log.New(f, "", 0)
	logger.Println(logEntry)

	if console {
		fmt.Println(logEntry)
	}
}

// FormatCount converts large counts to human-readable string (K, M, G)
func FormatCount(count uint64) string {
	switch {
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.2fG", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.2fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}

// NewRand creates a new random number generator with the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
