// Package config resolves library configuration from the environment.
// All variables share the BIGINT_ prefix; unset or malformed values fall
// back to defaults, never to errors, so importing the library can never
// fail on a bad environment.
package config

// EnvPrefix is prepended to every environment variable the library reads.
const EnvPrefix = "BIGINT_"

// Config carries the tunable knobs of the library. The arithmetic engine
// itself has none; these control the ambient instrumentation only.
type Config struct {
	// LogLevel selects the allocator log verbosity: one of zerolog's
	// level strings, or "disabled" for no logging at all.
	LogLevel string
	// AllocStats enables Prometheus counters on the allocator boundary.
	AllocStats bool
	// AllocWarnBytes escalates allocations of at least this many bytes
	// to the warn level. Zero disables the escalation.
	AllocWarnBytes int
}

// Default returns the zero-cost configuration: no logging, no metrics.
func Default() Config {
	return Config{LogLevel: "disabled", AllocStats: false, AllocWarnBytes: 0}
}

// FromEnv builds a Config from the environment, starting from Default.
//
//	BIGINT_LOG_LEVEL        zerolog level string or "disabled"
//	BIGINT_ALLOC_STATS      true/1/yes to enable allocator metrics
//	BIGINT_ALLOC_WARN_BYTES size threshold for warn-level allocation logs
func FromEnv() Config {
	cfg := Default()
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.AllocStats = getEnvBool("ALLOC_STATS", cfg.AllocStats)
	cfg.AllocWarnBytes = getEnvInt("ALLOC_WARN_BYTES", cfg.AllocWarnBytes)
	return cfg
}
