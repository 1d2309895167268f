// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

// Clone returns a deep copy of l. The clone shares no state with l,
// mutating one never affects the other.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return nil
	}

	c := &List[T]{capacity: l.capacity, size: l.size}

	if l.root != nil {
		c.root = l.root.clone()
	}

	return c
}

// clone copies the whole chain starting at n, iteratively, long chains
// must not blow the stack.
func (n *node[T]) clone() *node[T] {
	head := &node[T]{items: n.items.Clone()}

	dst := head
	for src := n.next; src != nil; src = src.next {
		dst.next = &node[T]{items: src.items.Clone()}
		dst = dst.next
	}

	return head
}
