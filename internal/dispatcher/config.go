package dispatcher

import "time"

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// MaxRepeatCount limits the maximum repeat count for actions.
	// Zero means no limit.
	MaxRepeatCount int

	// SlowDispatch is the duration above which a dispatch is logged as slow.
	// Zero disables the warning.
	SlowDispatch time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
		MaxRepeatCount:   10000,
		SlowDispatch:     100 * time.Millisecond,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}

// WithSlowDispatch returns a copy of the config with the slow dispatch
// threshold set.
func (c Config) WithSlowDispatch(d time.Duration) Config {
	c.SlowDispatch = d
	return c
}
