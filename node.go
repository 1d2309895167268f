// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"golang.org/x/exp/constraints"

	"github.com/gaissmai/chunklist/internal/bvec"
)

// node is one link of the chain. It owns a bounded sorted buffer and
// optionally the next node.
//
// Chain invariant: node ranges are non-decreasing from head to tail,
// Max of a node never exceeds Min of its successor. Equality across
// the boundary occurs only when equal elements overflow a node, so the
// head-to-tail concatenation is always fully sorted.
type node[T constraints.Ordered] struct {
	items bvec.Vec[T]
	next  *node[T]
}

// newNode returns a single element node without successor.
func newNode[T constraints.Ordered](capacity int, item T) *node[T] {
	return &node[T]{items: bvec.New(capacity, item)}
}

// insert places item somewhere in the chain starting at n, preserving
// the chain invariant. The walk is iterative, adversarial insertion
// orders (e.g. strictly decreasing) build chains of single-element
// nodes and a recursive descent would grow the stack with them.
func (n *node[T]) insert(item T) {
	for cur := n; ; {
		// item belongs strictly after this node if the successor's range
		// already starts below it, absorbing here would unsort the chain.
		if cur.next != nil && item > cur.next.items.Min() {
			cur = cur.next
			continue
		}

		handback, res := cur.items.Insert(item)

		switch res {
		case bvec.Absorbed:
			return

		case bvec.RejectedLess:
			// splice-front: a new smaller-range node takes cur's place in
			// the chain, cur's whole content (buffer and successor link)
			// moves one link deeper. O(1), only the node heads move.
			old := *cur
			cur.items = bvec.New(old.items.Cap(), handback)
			cur.next = &old
			return

		case bvec.RejectedGreater, bvec.Evicted:
			// item, or the displaced previous maximum, belongs at or
			// after this node's range, cascade towards the tail.
			if cur.next == nil {
				cur.next = newNode(cur.items.Cap(), handback)
				return
			}
			item = handback
			cur = cur.next

		default:
			panic("logic error, unknown insert result")
		}
	}
}

// find returns the index of item within the buffer of the node that
// holds it. The chain invariant lets an out-of-range-less result stop
// the walk immediately, all later nodes hold only larger elements.
func (n *node[T]) find(item T) (int, bool) {
	for cur := n; cur != nil; cur = cur.next {
		i, res := cur.items.Find(item)

		switch res {
		case bvec.Found:
			return i, true

		case bvec.NotFound, bvec.OutOfRangeLess:
			return 0, false
		}

		// OutOfRangeGreater, descend into the successor
	}

	return 0, false
}

// contains is a boolean shorthand for find.
func (n *node[T]) contains(item T) bool {
	_, ok := n.find(item)
	return ok
}
