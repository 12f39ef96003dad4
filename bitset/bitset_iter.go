//go:build go1.23

package bitset

import "iter"

// All iterates over the members of b in ascending order.
func (b Bitset) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := b.Next(NoElement); i != NoElement; i = b.Next(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// AllAfter iterates over the members of b strictly greater than i, in
// ascending order.
func (b Bitset) AllAfter(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := b.Next(i); v != NoElement; v = b.Next(v) {
			if !yield(v) {
				return
			}
		}
	}
}
