package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL configuration constants and defaults.
const (
	// DefaultTTL is the default cache TTL (5 minutes).
	DefaultTTL = 5 * time.Minute

	// MinTTLSeconds is the minimum allowed TTL (1 second).
	MinTTLSeconds = 1

	// MaxTTLSeconds is the maximum allowed TTL (1 day).
	MaxTTLSeconds = 86400

	// EnvTTLSeconds is the environment variable for overriding TTL.
	EnvTTLSeconds = "TOKENCONV_CACHE_TTL"
)

// ErrInvalidTTL reports a TTL outside the allowed range.
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// TTLFromEnv reads the TTL override from the environment, falling back to
// def when unset or invalid.
func TTLFromEnv(def time.Duration) time.Duration {
	envVal := os.Getenv(EnvTTLSeconds)
	if envVal == "" {
		return def
	}

	seconds, err := strconv.Atoi(envVal)
	if err != nil || seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return def
	}

	return time.Duration(seconds) * time.Second
}

// ParseTTL parses a TTL string as integer seconds ("300") or a duration
// string ("5m", "1h30m") and validates the range.
func ParseTTL(s string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(s); err == nil {
		if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid TTL format: %w", err)
	}

	seconds := int(d.Seconds())
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}

	return d, nil
}
