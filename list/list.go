package list

import (
	"errors"
	"iter"

	"github.com/wilhasse/growable-go/mem"
)

// ErrEmpty is returned when removing from a list with no elements.
var ErrEmpty = errors.New("list: empty list")

// List is a singly linked list over an owned arena. Handles returned
// by push and insert operations stay valid until the node is removed,
// regardless of arena growth.
type List[T any] struct {
	arena *Arena[T]
	head  Ref
	tail  Ref
	size  int
}

// New creates an empty list backed by mem.Default.
func New[T any]() *List[T] {
	return &List[T]{arena: NewArena[T](), head: NilRef, tail: NilRef}
}

// NewWithAllocator creates a list charging its arena to a.
func NewWithAllocator[T any](a mem.Allocator, capacity int) (*List[T], error) {
	arena, err := NewArenaWithAllocator[T](a, capacity)
	if err != nil {
		return nil, err
	}
	return &List[T]{arena: arena, head: NilRef, tail: NilRef}, nil
}

// PushFront prepends elem and returns its handle.
func (l *List[T]) PushFront(elem T) (Ref, error) {
	r, err := l.arena.Alloc(elem)
	if err != nil {
		return NilRef, err
	}
	l.arena.setNext(r, l.head)
	l.head = r
	if l.tail == NilRef {
		l.tail = r
	}
	l.size++
	return r, nil
}

// PushBack appends elem and returns its handle.
func (l *List[T]) PushBack(elem T) (Ref, error) {
	r, err := l.arena.Alloc(elem)
	if err != nil {
		return NilRef, err
	}
	if l.tail == NilRef {
		l.head = r
	} else {
		l.arena.setNext(l.tail, r)
	}
	l.tail = r
	l.size++
	return r, nil
}

// InsertAfter places elem after the node at r and returns its handle.
func (l *List[T]) InsertAfter(r Ref, elem T) (Ref, error) {
	if !l.arena.valid(r) {
		return NilRef, ErrBadRef
	}
	n, err := l.arena.Alloc(elem)
	if err != nil {
		return NilRef, err
	}
	l.arena.setNext(n, l.arena.next(r))
	l.arena.setNext(r, n)
	if l.tail == r {
		l.tail = n
	}
	l.size++
	return n, nil
}

// RemoveFront removes and returns the first element.
func (l *List[T]) RemoveFront() (T, error) {
	var zero T
	if l.head == NilRef {
		return zero, ErrEmpty
	}
	r := l.head
	elem, err := l.arena.Value(r)
	if err != nil {
		return zero, err
	}
	l.head = l.arena.next(r)
	if l.head == NilRef {
		l.tail = NilRef
	}
	if err := l.arena.Free(r); err != nil {
		return zero, err
	}
	l.size--
	return elem, nil
}

// RemoveAfter removes and returns the successor of the node at r.
// ErrBadRef is reported when r is stale or has no successor.
func (l *List[T]) RemoveAfter(r Ref) (T, error) {
	var zero T
	if !l.arena.valid(r) {
		return zero, ErrBadRef
	}
	victim := l.arena.next(r)
	if victim == NilRef {
		return zero, ErrBadRef
	}
	elem, err := l.arena.Value(victim)
	if err != nil {
		return zero, err
	}
	l.arena.setNext(r, l.arena.next(victim))
	if l.tail == victim {
		l.tail = r
	}
	if err := l.arena.Free(victim); err != nil {
		return zero, err
	}
	l.size--
	return elem, nil
}

// Front returns the handle of the first node, or NilRef when empty.
func (l *List[T]) Front() Ref {
	return l.head
}

// Next returns the handle following r, or NilRef at the end.
func (l *List[T]) Next(r Ref) (Ref, error) {
	if !l.arena.valid(r) {
		return NilRef, ErrBadRef
	}
	return l.arena.next(r), nil
}

// Value returns a copy of the element at r.
func (l *List[T]) Value(r Ref) (T, error) {
	return l.arena.Value(r)
}

// SetValue replaces the element at r.
func (l *List[T]) SetValue(r Ref, elem T) error {
	return l.arena.SetValue(r, elem)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// ArenaCap reports the number of slots in the backing arena, for
// capacity and reuse inspection.
func (l *List[T]) ArenaCap() int {
	return l.arena.Cap()
}

// All ranges over handle/value pairs in list order. Mutating the list
// during iteration is not supported.
func (l *List[T]) All() iter.Seq2[Ref, T] {
	return func(yield func(Ref, T) bool) {
		for r := l.head; r != NilRef; r = l.arena.next(r) {
			if !yield(r, l.arena.slab[r.index()].elem) {
				return
			}
		}
	}
}

// Free drops every element and returns the arena charge. The list is
// reusable afterwards.
func (l *List[T]) Free() {
	l.arena.Release()
	l.head = NilRef
	l.tail = NilRef
	l.size = 0
}
