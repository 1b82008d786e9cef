// Package mem provides the allocation accounting layer for the
// container packages. Go's runtime cannot refuse a make call in a
// recoverable way, so containers charge every buffer to an Allocator
// before building it; a refused charge surfaces as ErrOutOfMemory and
// leaves the container untouched.
package mem

import "errors"

// ErrOutOfMemory is returned by Reserve when a charge cannot be admitted.
var ErrOutOfMemory = errors.New("mem: cannot allocate memory")

// Allocator admits and releases byte charges for container buffers.
type Allocator interface {
	Reserve(size int) error
	Release(size int)
}

// GoAllocator delegates to the Go runtime and admits every charge.
type GoAllocator struct{}

func (GoAllocator) Reserve(int) error { return nil }

func (GoAllocator) Release(int) {}

// Default is the allocator used by containers built without one.
var Default Allocator = GoAllocator{}
