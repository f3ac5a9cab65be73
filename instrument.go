package bigint

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/bigint/internal/alloc"
	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/metrics"
)

// EnableInstrumentation swaps in an allocator instrumented according to
// the BIGINT_ environment (see internal/config): allocation logging at
// the configured level and, when enabled, Prometheus counters registered
// with reg. A nil reg is accepted and suppresses metric registration.
// Calling it again with the same registerer reuses the collectors
// already registered there.
//
// Values are single-owner and the allocator is process-global, so call
// this before constructing any value, not between operations.
func EnableInstrumentation(reg prometheus.Registerer) {
	cfg := config.FromEnv()
	log := logging.NewLeveledLogger(os.Stderr, "bigint.alloc", cfg.LogLevel)
	var stats *metrics.AllocStats
	if cfg.AllocStats {
		stats = metrics.NewAllocStats(reg)
		metrics.NewRuntimeStats(reg)
	}
	ins := alloc.NewInstrumented(alloc.Heap{}, log, stats).WarnAbove(cfg.AllocWarnBytes)
	alloc.Use(ins)
}

// DisableInstrumentation restores the plain heap allocator.
func DisableInstrumentation() {
	alloc.Use(alloc.Heap{})
}
