// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// package bvec implements a generic bounded sorted buffer,
// a non-empty fixed-capacity sequence kept in ascending order.
package bvec

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// MaxCap is the highest allowed buffer capacity.
const MaxCap = 255

// Vec is a non-empty, fixed-capacity, ascending sorted buffer with
// payload T. The backing array is allocated once at construction and
// never grows, the slice length is the explicit element count.
//
// A Vec must be created with [New], the zero value is not usable.
type Vec[T constraints.Ordered] struct {
	items []T
}

// InsertResult classifies the outcome of [Vec.Insert].
type InsertResult uint8

const (
	Absorbed        InsertResult = iota // item stored, nothing displaced
	Evicted                             // buffer was full, previous maximum displaced
	RejectedLess                        // buffer full and item below the whole range
	RejectedGreater                     // buffer full and item above the whole range
)

// FindResult classifies the outcome of [Vec.Find].
type FindResult uint8

const (
	Found             FindResult = iota // exact match at returned index
	NotFound                            // within [Min, Max] but absent
	OutOfRangeLess                      // below Min
	OutOfRangeGreater                   // above Max
)

// CheckCapacity panics if capacity is outside the range 1..MaxCap.
// An invalid capacity is a configuration error, not a runtime condition.
func CheckCapacity(capacity int) {
	if capacity <= 0 || capacity > MaxCap {
		panic(fmt.Sprintf("bvec: capacity must be in range 1..%d, got %d", MaxCap, capacity))
	}
}

// New returns a Vec with the given capacity, holding exactly first.
// A Vec is non-empty from birth and never shrinks.
func New[T constraints.Ordered](capacity int, first T) Vec[T] {
	CheckCapacity(capacity)

	items := make([]T, 1, capacity)
	items[0] = first

	return Vec[T]{items: items}
}

// Len returns the number of elements in the buffer, always >= 1.
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// Cap returns the fixed capacity of the buffer.
func (v *Vec[T]) Cap() int {
	return cap(v.items)
}

// IsFull reports whether the buffer has reached its capacity.
func (v *Vec[T]) IsFull() bool {
	return len(v.items) == cap(v.items)
}

// Min returns the smallest element, always defined, a Vec is never empty.
func (v *Vec[T]) Min() T {
	return v.items[0]
}

// Max returns the largest element, always defined, a Vec is never empty.
func (v *Vec[T]) Max() T {
	return v.items[len(v.items)-1]
}

// Items returns a view of the elements in ascending order.
// The slice aliases the backing array, callers must not modify it.
func (v *Vec[T]) Items() []T {
	return v.items
}

// Insert places item into the buffer preserving ascending order.
//
// The result tells the caller what happened: Absorbed needs no further
// work; Evicted hands back the displaced previous maximum for
// re-insertion elsewhere; RejectedLess and RejectedGreater hand back
// item unchanged because the buffer is full and item lies strictly
// outside its [Min, Max] range.
func (v *Vec[T]) Insert(item T) (T, InsertResult) {
	var zero T

	// O(1) fast paths against the range bounds before binary search
	switch {
	case item > v.Max():
		if v.IsFull() {
			return item, RejectedGreater
		}
		v.items = append(v.items, item) // within cap, no alloc
		return zero, Absorbed

	case item < v.Min():
		if v.IsFull() {
			return item, RejectedLess
		}
		v.insertAt(0, item)
		return zero, Absorbed
	}

	// Min <= item <= Max, the insertion index is always < Len
	i, _ := slices.BinarySearch(v.items, item)

	if evicted, ok := v.insertAt(i, item); ok {
		return evicted, Evicted
	}

	return zero, Absorbed
}

// insertAt inserts item at index i, shifting the tail one slot right.
// If the buffer is already full the previous maximum falls off the end
// and is returned with ok set to true.
//
// insertAt panics if i is not a valid element index, an insertion index
// outside the initialized slots means a broken internal invariant.
func (v *Vec[T]) insertAt(i int, item T) (evicted T, ok bool) {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("bvec: insert index out of range (index is %d but length is %d)", i, len(v.items)))
	}

	if v.IsFull() {
		evicted, ok = v.items[len(v.items)-1], true
	} else {
		v.items = v.items[:len(v.items)+1] // fast resize, no alloc
	}

	copy(v.items[i+1:], v.items[i:])
	v.items[i] = item

	return evicted, ok
}

// Find reports whether item is present and at which index.
// Items strictly outside [Min, Max] are classified with a direction so
// the caller can decide where to continue the search.
func (v *Vec[T]) Find(item T) (int, FindResult) {
	switch {
	case item > v.Max():
		return 0, OutOfRangeGreater
	case item < v.Min():
		return 0, OutOfRangeLess
	}

	if i, ok := slices.BinarySearch(v.items, item); ok {
		return i, Found
	}

	return 0, NotFound
}

// Contains is a boolean shorthand for [Vec.Find].
func (v *Vec[T]) Contains(item T) bool {
	_, res := v.Find(item)
	return res == Found
}

// Clone returns a copy of v with its own backing array.
func (v *Vec[T]) Clone() Vec[T] {
	items := make([]T, len(v.items), cap(v.items))
	copy(items, v.items)

	return Vec[T]{items: items}
}

// Equal reports whether v and o hold the same elements in the same order.
func (v *Vec[T]) Equal(o *Vec[T]) bool {
	return slices.Equal(v.items, o.items)
}

// String implements Stringer for InsertResult.
func (r InsertResult) String() string {
	switch r {
	case Absorbed:
		return "absorbed"
	case Evicted:
		return "evicted"
	case RejectedLess:
		return "rejected-less"
	case RejectedGreater:
		return "rejected-greater"
	default:
		return "unreachable"
	}
}

// String implements Stringer for FindResult.
func (r FindResult) String() string {
	switch r {
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	case OutOfRangeLess:
		return "less"
	case OutOfRangeGreater:
		return "greater"
	default:
		return "unreachable"
	}
}
