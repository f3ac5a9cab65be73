package bigint

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentDistinctValues verifies that goroutines operating on
// distinct values never interfere: ownership is per-value, so no shared
// state exists outside the allocator.
func TestConcurrentDistinctValues(t *testing.T) {
	var g errgroup.Group
	for w := 0; w < 16; w++ {
		w := w
		seed := uint64(w + 1)
		g.Go(func() error {
			for i := uint64(1); i <= 200; i++ {
				a := seed * i
				b := i*31 + 7

				x := FromUint64(a)
				y := FromUint64(b)
				sum, _ := x.Add(y)
				diff, _ := sum.Sub(y)
				if got := leUint64(diff.Bytes()); got != a {
					t.Errorf("worker %d: round trip = %d, want %d", w, got, a)
				}
				diff.Free()

				u := FromUint64(a)
				quot, rem, err := u.Div(y)
				if err != nil {
					t.Errorf("worker %d: div error %v", w, err)
				} else if got := leUint64(quot.Bytes()); got != a/b {
					t.Errorf("worker %d: quot = %d, want %d", w, got, a/b)
				}
				quot.Free()
				rem.Free()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// TestConcurrentInstrumentedAllocator runs the same workload through the
// instrumented allocator, which must be safe for concurrent use.
func TestConcurrentInstrumentedAllocator(t *testing.T) {
	EnableInstrumentation(nil)
	defer DisableInstrumentation()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		seed := uint64(w + 1)
		g.Go(func() error {
			for i := uint64(0); i < 100; i++ {
				x := FromUint64(seed + i)
				d := x.Dup()
				x.Free()
				d.Free()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
