package mem

// CountingAllocator wraps another allocator and tracks reserve traffic.
// It backs the amortized-cost tests and the demo workload statistics.
type CountingAllocator struct {
	inner    Allocator
	reserves int
	total    int
	live     int
}

// NewCountingAllocator wraps inner, defaulting to Default when nil.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = Default
	}
	return &CountingAllocator{inner: inner}
}

// Reserve forwards to the wrapped allocator and counts admitted charges.
func (a *CountingAllocator) Reserve(size int) error {
	if err := a.inner.Reserve(size); err != nil {
		return err
	}
	if size < 0 {
		size = 0
	}
	a.reserves++
	a.total += size
	a.live += size
	return nil
}

// Release forwards to the wrapped allocator.
func (a *CountingAllocator) Release(size int) {
	a.inner.Release(size)
	if size < 0 {
		size = 0
	}
	a.live -= size
	if a.live < 0 {
		a.live = 0
	}
}

// Reserves reports the number of admitted Reserve calls.
func (a *CountingAllocator) Reserves() int {
	return a.reserves
}

// TotalBytes reports the bytes ever admitted, ignoring releases.
func (a *CountingAllocator) TotalBytes() int {
	return a.total
}

// LiveBytes reports the bytes currently outstanding.
func (a *CountingAllocator) LiveBytes() int {
	return a.live
}
