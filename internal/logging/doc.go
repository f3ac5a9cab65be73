// Package logging provides a unified logging interface for the big-integer
// engine. It abstracts the underlying logging implementation, allowing
// consistent structured logging across components while keeping the
// arithmetic hot path free of any logging cost (NopLogger is the default).
package logging
