// Package metrics exposes Prometheus instrumentation for the allocator
// boundary. The arithmetic engine itself is not instrumented: every
// observable cost of the library is an allocation or a release, so the
// allocator is the one place worth counting.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// AllocStats holds the Prometheus collectors for allocator traffic.
type AllocStats struct {
	AllocsTotal    prometheus.Counter
	FreesTotal     prometheus.Counter
	BytesAllocated prometheus.Counter
	BytesInUse     prometheus.Gauge
}

// NewAllocStats creates the allocator collectors and registers them with
// reg, reusing any collectors a previous call already registered there.
// A nil registerer leaves the collectors unregistered, which is useful
// in tests.
func NewAllocStats(reg prometheus.Registerer) *AllocStats {
	s := &AllocStats{
		AllocsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bigint",
			Subsystem: "alloc",
			Name:      "allocs_total",
			Help:      "Number of buffer allocations served.",
		}),
		FreesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bigint",
			Subsystem: "alloc",
			Name:      "frees_total",
			Help:      "Number of buffers returned to the allocator.",
		}),
		BytesAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bigint",
			Subsystem: "alloc",
			Name:      "bytes_allocated_total",
			Help:      "Cumulative bytes handed out by the allocator.",
		}),
		BytesInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigint",
			Subsystem: "alloc",
			Name:      "bytes_in_use",
			Help:      "Bytes currently held by live big-integer buffers.",
		}),
	}
	s.AllocsTotal = register(reg, s.AllocsTotal)
	s.FreesTotal = register(reg, s.FreesTotal)
	s.BytesAllocated = register(reg, s.BytesAllocated)
	s.BytesInUse = register(reg, s.BytesInUse)
	return s
}

// ObserveAlloc records a served allocation of n bytes.
func (s *AllocStats) ObserveAlloc(n int) {
	s.AllocsTotal.Inc()
	s.BytesAllocated.Add(float64(n))
	s.BytesInUse.Add(float64(n))
}

// ObserveFree records the release of an n-byte buffer.
func (s *AllocStats) ObserveFree(n int) {
	s.FreesTotal.Inc()
	s.BytesInUse.Sub(float64(n))
}
