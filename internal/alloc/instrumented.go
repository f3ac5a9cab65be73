package alloc

import (
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/metrics"
)

// Instrumented decorates an Allocator with structured logging and
// Prometheus counters. Either collaborator may be nil-equivalent
// (logging.NopLogger, or a nil *AllocStats) to disable that channel.
type Instrumented struct {
	inner     Allocator
	log       logging.Logger
	stats     *metrics.AllocStats
	warnBytes int
}

// NewInstrumented wraps inner. A nil inner defaults to the heap allocator
// and a nil log to the silent logger.
func NewInstrumented(inner Allocator, log logging.Logger, stats *metrics.AllocStats) *Instrumented {
	if inner == nil {
		inner = Heap{}
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Instrumented{inner: inner, log: log, stats: stats}
}

// WarnAbove makes allocations of at least n bytes log at the warn level
// instead of debug, and returns the allocator for chaining. A
// non-positive n disables the escalation.
func (a *Instrumented) WarnAbove(n int) *Instrumented {
	a.warnBytes = n
	return a
}

// Alloc obtains a buffer from the wrapped allocator and records it.
func (a *Instrumented) Alloc(n int) []byte {
	buf := a.inner.Alloc(n)
	a.observeAlloc(len(buf))
	return buf
}

// AllocZero obtains a zeroed buffer from the wrapped allocator and
// records it.
func (a *Instrumented) AllocZero(n int) []byte {
	buf := a.inner.AllocZero(n)
	a.observeAlloc(len(buf))
	return buf
}

// Free returns the buffer to the wrapped allocator and records it.
func (a *Instrumented) Free(buf []byte) {
	if buf == nil {
		return
	}
	a.log.Debug("buffer freed", logging.Int("bytes", len(buf)))
	if a.stats != nil {
		a.stats.ObserveFree(len(buf))
	}
	a.inner.Free(buf)
}

func (a *Instrumented) observeAlloc(n int) {
	if a.warnBytes > 0 && n >= a.warnBytes {
		a.log.Warn("large buffer allocated",
			logging.Int("bytes", n), logging.Int("threshold", a.warnBytes))
	} else {
		a.log.Debug("buffer allocated", logging.Int("bytes", n))
	}
	if a.stats != nil {
		a.stats.ObserveAlloc(n)
	}
}
