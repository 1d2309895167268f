// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// package golden implements a simple and slow ordered multiset,
// backed by a single sorted slice, as a golden reference for chunklist.
package golden

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Multiset is a sorted slice of elements, duplicates retained.
// The zero value is an empty multiset ready to use.
type Multiset[T constraints.Ordered] []T

// Insert adds item keeping the slice sorted, duplicates are stored.
func (g *Multiset[T]) Insert(item T) {
	i, _ := slices.BinarySearch(*g, item)
	*g = slices.Insert(*g, i, item)
}

// Find returns the index of item and whether it is present.
func (g Multiset[T]) Find(item T) (int, bool) {
	return slices.BinarySearch(g, item)
}

// Contains reports whether item is present.
func (g Multiset[T]) Contains(item T) bool {
	_, ok := slices.BinarySearch(g, item)
	return ok
}

// Len returns the number of elements, duplicates counted.
func (g Multiset[T]) Len() int {
	return len(g)
}

// Count returns the number of occurrences of item.
func (g Multiset[T]) Count(item T) int {
	var n int
	for _, v := range g {
		if v == item {
			n++
		}
	}
	return n
}
