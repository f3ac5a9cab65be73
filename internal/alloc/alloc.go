// Package alloc is the byte-buffer allocation boundary for the engine.
// Every big-integer buffer is obtained and released through this package,
// which keeps the allocator swappable: the default goes straight to the
// Go heap, and an instrumented wrapper adds structured logging and
// Prometheus counters for allocation traffic.
package alloc

//go:generate mockgen -source=alloc.go -destination=mock_alloc_test.go -package=alloc

// Allocator hands out and reclaims byte buffers. Implementations must
// return a buffer of exactly the requested length; AllocZero additionally
// guarantees every byte is zero.
type Allocator interface {
	Alloc(n int) []byte
	AllocZero(n int) []byte
	Free(buf []byte)
}

// Heap is the default allocator. Free is a release of the reference only;
// reclamation is the garbage collector's job.
type Heap struct{}

// Alloc returns a buffer of n bytes. The Go runtime zeroes fresh heap
// memory, so this is equivalent to AllocZero; the two entry points are
// kept separate because the contract, not the current backend, is what
// callers rely on.
func (Heap) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// AllocZero returns a zero-filled buffer of n bytes.
func (Heap) AllocZero(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

// Free releases the buffer.
func (Heap) Free([]byte) {}

var active Allocator = Heap{}

// Use installs a as the active allocator and returns the previous one.
// The engine is single-owner and synchronous, so swapping the allocator
// is only safe while no values are live.
func Use(a Allocator) Allocator {
	prev := active
	if a == nil {
		a = Heap{}
	}
	active = a
	return prev
}

// Alloc obtains n bytes from the active allocator.
func Alloc(n int) []byte { return active.Alloc(n) }

// AllocZero obtains n zeroed bytes from the active allocator.
func AllocZero(n int) []byte { return active.AllocZero(n) }

// Free returns a buffer to the active allocator. Nil buffers are ignored.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	active.Free(buf)
}
