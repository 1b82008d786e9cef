package ut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandSeedsDiverge(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestIntnBounds(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		n := r.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
	assert.Zero(t, r.Intn(0))
	assert.Zero(t, r.Intn(-5))
}

func TestInterval(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		n := r.Interval(5, 9)
		assert.GreaterOrEqual(t, n, uint64(5))
		assert.LessOrEqual(t, n, uint64(9))
	}
	assert.Equal(t, uint64(3), r.Interval(3, 3))
	assert.Equal(t, uint64(4), r.Interval(4, 4))
	// Swapped bounds behave the same as ordered ones.
	n := r.Interval(9, 5)
	assert.GreaterOrEqual(t, n, uint64(5))
	assert.LessOrEqual(t, n, uint64(9))
}
