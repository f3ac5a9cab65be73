package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MemorySnapshot holds a point-in-time reading of the process heap,
// for correlating buffer traffic with garbage-collector behavior.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by the application
	HeapObjects uint64 // number of allocated heap objects
	NumGC       uint32 // completed GC cycles
}

// ReadMemorySnapshot reads the current runtime memory statistics.
func ReadMemorySnapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}

// RuntimeStats exposes the heap readings as Prometheus gauges next to
// the allocator counters. Each scrape takes a fresh snapshot.
type RuntimeStats struct {
	HeapAllocBytes prometheus.GaugeFunc
	HeapObjects    prometheus.GaugeFunc
	GCCycles       prometheus.GaugeFunc
}

// NewRuntimeStats creates the runtime gauges and registers them with
// reg, reusing gauges a previous call already registered there. A nil
// registerer leaves them unregistered.
func NewRuntimeStats(reg prometheus.Registerer) *RuntimeStats {
	s := &RuntimeStats{
		HeapAllocBytes: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "bigint",
			Subsystem: "runtime",
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of heap memory in use by the process.",
		}, func() float64 { return float64(ReadMemorySnapshot().HeapAlloc) }),
		HeapObjects: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "bigint",
			Subsystem: "runtime",
			Name:      "heap_objects",
			Help:      "Number of live heap objects in the process.",
		}, func() float64 { return float64(ReadMemorySnapshot().HeapObjects) }),
		GCCycles: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "bigint",
			Subsystem: "runtime",
			Name:      "gc_cycles_total",
			Help:      "Completed garbage-collection cycles.",
		}, func() float64 { return float64(ReadMemorySnapshot().NumGC) }),
	}
	s.HeapAllocBytes = register(reg, s.HeapAllocBytes)
	s.HeapObjects = register(reg, s.HeapObjects)
	s.GCCycles = register(reg, s.GCCycles)
	return s
}
