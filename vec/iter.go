package vec

import "iter"

// All ranges over index/value pairs of the live prefix. Appending or
// removing during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.used; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values ranges over the live values in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.used; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
