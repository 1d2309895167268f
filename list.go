// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"golang.org/x/exp/constraints"

	"github.com/gaissmai/chunklist/internal/bvec"
)

// List is an ordered multiset with payload T, backed by a chain of
// fixed-capacity sorted buffers. Duplicates are stored, not collapsed.
//
// A List must be created with [New], the zero value is not usable
// because every node buffer needs a valid capacity.
type List[T constraints.Ordered] struct {
	root *node[T]

	capacity int // per-node buffer capacity, 1..255
	size     int // number of completed inserts, duplicates counted
}

// New returns an empty List whose node buffers hold up to capacity
// elements. New panics if capacity is outside the range 1..255, an
// invalid capacity is a configuration error, not a runtime condition.
func New[T constraints.Ordered](capacity int) *List[T] {
	bvec.CheckCapacity(capacity)

	return &List[T]{capacity: capacity}
}

// Insert adds item to the list. The root node is created lazily on the
// first insertion, every call increments the length by exactly one.
func (l *List[T]) Insert(item T) {
	if l.root == nil {
		l.root = newNode(l.capacity, item)
	} else {
		l.root.insert(item)
	}

	l.size++
}

// Find reports whether item is present and its index within the buffer
// of the chain node that holds it.
func (l *List[T]) Find(item T) (int, bool) {
	if l.root == nil {
		return 0, false
	}

	return l.root.find(item)
}

// Contains reports whether item was inserted at least once.
func (l *List[T]) Contains(item T) bool {
	if l.root == nil {
		return false
	}

	return l.root.contains(item)
}

// Len returns the number of inserted elements, duplicates counted.
func (l *List[T]) Len() int {
	return l.size
}

// Cap returns the fixed per-node buffer capacity.
func (l *List[T]) Cap() int {
	return l.capacity
}
