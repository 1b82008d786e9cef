// Package vec implements a generic growable array with amortized-O(1)
// append, bounds-checked access, and ordered removal. A vector owns
// its buffer exclusively; clones never alias and moves transfer
// ownership in O(1).
//
// Vectors are single-threaded value types. Callers sharing one across
// goroutines must synchronize externally.
package vec

import "github.com/wilhasse/growable-go/mem"

// Vector stores live values in slots [0, Len()) of a contiguous,
// exclusively owned buffer. The zero value is an empty vector backed
// by mem.Default.
type Vector[T any] struct {
	buf   []T
	used  int
	alloc mem.Allocator
}

// New creates an empty vector with zero capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithCapacity creates an empty vector with a pre-sized buffer.
func NewWithCapacity[T any](capacity int) (*Vector[T], error) {
	return NewWithAllocator[T](nil, capacity)
}

// NewWithAllocator creates an empty vector charging its buffers to a.
// A nil allocator means mem.Default.
func NewWithAllocator[T any](a mem.Allocator, capacity int) (*Vector[T], error) {
	buf, err := mem.MakeSlice[T](a, capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, alloc: a}, nil
}

// Append places elem after the last live element, growing the buffer
// when full. Growth doubles capacity (floor 1) and invalidates any
// outstanding At pointers and Slice views. The only failure is an
// allocation refusal, reported via mem.ErrOutOfMemory; on failure the
// vector is left exactly as it was.
func (v *Vector[T]) Append(elem T) error {
	if v.used == len(v.buf) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.buf[v.used] = elem
	v.used++
	return nil
}

// grow swaps in a doubled buffer, all-or-nothing. The old buffer is
// released only after the new one is fully populated.
func (v *Vector[T]) grow() error {
	newCap := len(v.buf) * 2
	if newCap == 0 {
		newCap = 1
	}
	newBuf, err := mem.MakeSlice[T](v.allocator(), newCap)
	if err != nil {
		return err
	}
	copy(newBuf, v.buf[:v.used])
	mem.FreeSlice(v.allocator(), v.buf)
	v.buf = newBuf
	return nil
}

// Get returns a copy of the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.used {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.buf[i], nil
}

// At returns a pointer to the element at index i. The pointer is
// invalidated by the next growth.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.used {
		return nil, ErrOutOfRange
	}
	return &v.buf[i], nil
}

// Set stores elem at index i.
func (v *Vector[T]) Set(i int, elem T) error {
	if i < 0 || i >= v.used {
		return ErrOutOfRange
	}
	v.buf[i] = elem
	return nil
}

// RemoveAt removes and returns the element at index i, shifting the
// tail left to close the gap. Costs O(Len()-i); capacity is never
// shrunk.
func (v *Vector[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.used {
		return zero, ErrOutOfRange
	}
	elem := v.buf[i]
	copy(v.buf[i:v.used-1], v.buf[i+1:v.used])
	v.used--
	// Drop the container's reference to the vacated slot.
	v.buf[v.used] = zero
	return elem, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.used
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.used == 0
}

// Clone returns a deep copy with its own buffer sized exactly Len().
// Element values are copied shallowly.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	buf, err := mem.MakeSlice[T](v.allocator(), v.used)
	if err != nil {
		return nil, err
	}
	copy(buf, v.buf[:v.used])
	return &Vector[T]{buf: buf, used: v.used, alloc: v.alloc}, nil
}

// Move transfers the buffer to a fresh vector in O(1) and leaves the
// receiver valid and empty. The receiver may be reused or freed.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf, used: v.used, alloc: v.alloc}
	v.buf = nil
	v.used = 0
	return out
}

// Free zeroes the live slots, releases the buffer charge, and resets
// the vector to empty. Safe on a moved-from or already-freed vector.
func (v *Vector[T]) Free() {
	var zero T
	for i := 0; i < v.used; i++ {
		v.buf[i] = zero
	}
	mem.FreeSlice(v.allocator(), v.buf)
	v.buf = nil
	v.used = 0
}

// Slice returns a view of the live prefix. The view is invalidated by
// the next growth, like At pointers.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.used]
}

func (v *Vector[T]) allocator() mem.Allocator {
	if v.alloc == nil {
		return mem.Default
	}
	return v.alloc
}
