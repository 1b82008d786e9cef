package mem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitAllocatorBudget(t *testing.T) {
	a := NewLimitAllocator(100)
	require.NoError(t, a.Reserve(60))
	require.NoError(t, a.Reserve(40))
	assert.Equal(t, 100, a.Used())

	err := a.Reserve(1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 100, a.Used(), "refused charge must not be accounted")

	a.Release(50)
	assert.Equal(t, 50, a.Used())
	require.NoError(t, a.Reserve(50))
}

func TestLimitAllocatorReleaseFloor(t *testing.T) {
	a := NewLimitAllocator(10)
	a.Release(25)
	assert.Equal(t, 0, a.Used())
}

func TestCountingAllocator(t *testing.T) {
	a := NewCountingAllocator(nil)
	require.NoError(t, a.Reserve(8))
	require.NoError(t, a.Reserve(16))
	a.Release(8)

	assert.Equal(t, 2, a.Reserves())
	assert.Equal(t, 24, a.TotalBytes())
	assert.Equal(t, 16, a.LiveBytes())
}

func TestCountingAllocatorSkipsRefusedCharges(t *testing.T) {
	a := NewCountingAllocator(NewLimitAllocator(10))
	require.NoError(t, a.Reserve(10))
	assert.ErrorIs(t, a.Reserve(1), ErrOutOfMemory)
	assert.Equal(t, 1, a.Reserves())
	assert.Equal(t, 10, a.TotalBytes())
}

func TestMakeSliceCharges(t *testing.T) {
	a := NewCountingAllocator(nil)
	s, err := MakeSlice[int64](a, 4)
	require.NoError(t, err)
	assert.Len(t, s, 4)
	assert.Equal(t, 32, a.LiveBytes())

	FreeSlice(a, s)
	assert.Equal(t, 0, a.LiveBytes())
}

func TestMakeSliceRefused(t *testing.T) {
	a := NewLimitAllocator(8)
	s, err := MakeSlice[int64](a, 2)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Nil(t, s)
	assert.Equal(t, 0, a.Used())
}

func TestMakeSliceByteOverflow(t *testing.T) {
	a := NewCountingAllocator(nil)
	// The element count is representable but the byte count is not.
	s, err := MakeSlice[int64](a, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Nil(t, s)
	assert.Zero(t, a.Reserves(), "overflowing charge never reaches the allocator")
}

func TestMakeSliceZero(t *testing.T) {
	s, err := MakeSlice[int](Default, 0)
	require.NoError(t, err)
	assert.Nil(t, s)
}
