// Package ut carries small utilities shared by the tests and the demo
// workload.
package ut

const (
	randMul = 1664525
	randAdd = 1013904223
)

// Rand is a deterministic linear-congruential generator; a given seed
// always reproduces the same sequence.
type Rand struct {
	state uint64
}

// NewRand creates a generator with the given seed.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Next returns the next pseudo-random value.
func (r *Rand) Next() uint64 {
	r.state = r.state*randMul + randAdd
	return r.state
}

// Intn returns a value in [0, n), or 0 when n is not positive.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Interval returns a value in [low, high].
func (r *Rand) Interval(low, high uint64) uint64 {
	if high < low {
		low, high = high, low
	}
	if high == low {
		return low
	}
	return low + r.Next()%(high-low+1)
}
