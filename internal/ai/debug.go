package ai

import "sync/atomic"

// debugLoggingEnabled gates per-hostile debug logs emitted every tick.
// Checked on the hot path instead of asking slog for the level each time.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging turns per-tick hostile logging on or off.
// main sets it once from the configured log level.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether per-tick hostile logging is on.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
