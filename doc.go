// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package chunklist provides an ordered multiset backed by a singly
// linked chain of fixed-capacity sorted buffers.
//
// Every chain node owns one bounded sorted buffer with a capacity fixed
// at construction time (1..255 elements) and allocated in one block, so
// insertion never allocates per element. Inserts cascade along the
// chain: a buffer absorbs the item, evicts its previous maximum towards
// the tail, or rejects the item with a direction tag that tells the
// chain to splice a new head node in front or to descend further.
//
// The concatenation of all node buffers from head to tail is the fully
// sorted sequence of all inserted elements, duplicates retained.
// The structure never shrinks: there is no delete, no rebalancing and
// no node merging.
//
// A List is not safe for concurrent use.
package chunklist
