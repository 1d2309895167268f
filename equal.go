// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

// Equal reports whether l and o hold the same multiset of elements.
// Node boundaries don't matter, two lists built from the same multiset
// in different insertion orders compare equal.
func (l *List[T]) Equal(o *List[T]) bool {
	if l == nil || o == nil {
		return l == o
	}

	if l.size != o.size {
		return false
	}

	// walk both chains element-wise without materializing them
	ln, li := l.root, 0
	on, oi := o.root, 0

	for ln != nil && on != nil {
		if ln.items.Items()[li] != on.items.Items()[oi] {
			return false
		}

		if li++; li == ln.items.Len() {
			ln, li = ln.next, 0
		}

		if oi++; oi == on.items.Len() {
			on, oi = on.next, 0
		}
	}

	// equal sizes, both cursors exhaust together
	return ln == nil && on == nil
}
