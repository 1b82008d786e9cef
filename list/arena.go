// Package list implements a singly linked list whose nodes live in a
// growable arena and are addressed by stable integer handles instead
// of raw pointers. Handles survive arena growth, and freed slots are
// recycled through an intrusive free chain, so the dangling-pointer
// and double-delete failure modes of pointer-chained lists cannot
// occur: a stale handle is detected, not dereferenced, even after its
// slot has been reused.
package list

import (
	"errors"

	"github.com/wilhasse/growable-go/mem"
)

// Ref is a stable handle to an arena slot. It packs the slot index
// with the slot's occupancy generation, so a handle freed earlier can
// never alias a later occupant of the same slot.
type Ref int64

// NilRef marks the absence of a node.
const NilRef Ref = -1

// ErrBadRef is returned when a handle does not name a live node.
var ErrBadRef = errors.New("list: invalid node handle")

func makeRef(index int32, gen uint32) Ref {
	return Ref(int64(gen)<<32 | int64(uint32(index)))
}

func (r Ref) index() int32 {
	return int32(uint32(uint64(r)))
}

func (r Ref) gen() uint32 {
	return uint32(uint64(r) >> 32)
}

type node[T any] struct {
	elem T
	next Ref
	gen  uint32
	live bool
}

// Arena owns the node storage. Slots [0, used) have been handed out at
// least once; freed slots are chained through their next field and
// reused before the slab grows. Each free bumps the slot's generation,
// invalidating every handle issued for the prior occupancy.
type Arena[T any] struct {
	slab  []node[T]
	used  int
	free  Ref
	live  int
	alloc mem.Allocator
}

// NewArena creates an empty arena backed by mem.Default.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{free: NilRef}
}

// NewArenaWithAllocator creates an arena charging its slab to a.
func NewArenaWithAllocator[T any](a mem.Allocator, capacity int) (*Arena[T], error) {
	slab, err := mem.MakeSlice[node[T]](a, capacity)
	if err != nil {
		return nil, err
	}
	return &Arena[T]{slab: slab, free: NilRef, alloc: a}, nil
}

// Alloc places elem in a free slot and returns its handle. Freed slots
// are reused in LIFO order; otherwise the slab doubles.
func (a *Arena[T]) Alloc(elem T) (Ref, error) {
	if a.free != NilRef {
		idx := a.free.index()
		gen := a.slab[idx].gen
		a.free = a.slab[idx].next
		a.slab[idx] = node[T]{elem: elem, next: NilRef, gen: gen, live: true}
		a.live++
		return makeRef(idx, gen), nil
	}
	if a.used == len(a.slab) {
		if err := a.grow(); err != nil {
			return NilRef, err
		}
	}
	idx := int32(a.used)
	a.slab[idx] = node[T]{elem: elem, next: NilRef, live: true}
	a.used++
	a.live++
	return makeRef(idx, 0), nil
}

func (a *Arena[T]) grow() error {
	newCap := len(a.slab) * 2
	if newCap == 0 {
		newCap = 1
	}
	newSlab, err := mem.MakeSlice[node[T]](a.allocator(), newCap)
	if err != nil {
		return err
	}
	copy(newSlab, a.slab[:a.used])
	mem.FreeSlice(a.allocator(), a.slab)
	a.slab = newSlab
	return nil
}

// Free returns the node to the free chain and bumps the slot's
// generation, so the freed handle (and any copy of it) goes stale
// immediately. Freeing a handle twice is reported, not honored.
func (a *Arena[T]) Free(r Ref) error {
	if !a.valid(r) {
		return ErrBadRef
	}
	idx := r.index()
	var zero T
	gen := a.slab[idx].gen + 1
	a.slab[idx] = node[T]{elem: zero, next: a.free, gen: gen, live: false}
	a.free = makeRef(idx, gen)
	a.live--
	return nil
}

// Value returns a copy of the element held by a live node.
func (a *Arena[T]) Value(r Ref) (T, error) {
	if !a.valid(r) {
		var zero T
		return zero, ErrBadRef
	}
	return a.slab[r.index()].elem, nil
}

// SetValue replaces the element held by a live node.
func (a *Arena[T]) SetValue(r Ref, elem T) error {
	if !a.valid(r) {
		return ErrBadRef
	}
	a.slab[r.index()].elem = elem
	return nil
}

// Len reports the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap reports the number of allocated slots.
func (a *Arena[T]) Cap() int {
	return len(a.slab)
}

// Release drops every node and returns the slab charge. The arena is
// reusable afterwards; handles issued before Release are no longer
// guarded once new nodes are allocated.
func (a *Arena[T]) Release() {
	mem.FreeSlice(a.allocator(), a.slab)
	a.slab = nil
	a.used = 0
	a.free = NilRef
	a.live = 0
}

func (a *Arena[T]) valid(r Ref) bool {
	idx := r.index()
	if idx < 0 || int(idx) >= a.used {
		return false
	}
	n := &a.slab[idx]
	return n.live && n.gen == r.gen()
}

func (a *Arena[T]) next(r Ref) Ref {
	return a.slab[r.index()].next
}

func (a *Arena[T]) setNext(r, next Ref) {
	a.slab[r.index()].next = next
}

func (a *Arena[T]) allocator() mem.Allocator {
	if a.alloc == nil {
		return mem.Default
	}
	return a.alloc
}
