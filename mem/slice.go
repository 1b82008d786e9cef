package mem

import (
	"math"
	"unsafe"
)

// MakeSlice charges n elements of T to the allocator and builds the
// typed buffer. Interfaces cannot carry generic methods, so the typed
// entry points live here as package functions. A byte count that would
// overflow int is refused as ErrOutOfMemory.
func MakeSlice[T any](a Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if a == nil {
		a = Default
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size > 0 && n > math.MaxInt/size {
		return nil, ErrOutOfMemory
	}
	if err := a.Reserve(n * size); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// FreeSlice releases the charge held by a slice built with MakeSlice.
func FreeSlice[T any](a Allocator, s []T) {
	if cap(s) == 0 {
		return
	}
	if a == nil {
		a = Default
	}
	var zero T
	a.Release(cap(s) * int(unsafe.Sizeof(zero)))
}
