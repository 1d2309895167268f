// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (l *List[T]) dumpString() string {
	w := new(strings.Builder)
	l.dump(w)

	return w.String()
}

// dump the chain structure and all the nodes to w.
func (l *List[T]) dump(w io.Writer) {
	if l == nil || l.root == nil {
		return
	}

	s := l.stats()
	fmt.Fprintf(w, "### size(%d), nodes(%d), fill(%.2f)\n", l.size, s.nodes, s.fill())

	depth := 0
	for cur := l.root; cur != nil; cur = cur.next {
		fmt.Fprintf(w, "depth: %3d  len: %3d/%d  range: [%v, %v]  items: %v\n",
			depth, cur.items.Len(), cur.items.Cap(), cur.items.Min(), cur.items.Max(), cur.items.Items())
		depth++
	}
}

// stats, only used for dump, tests and benchmarks.
type stats struct {
	nodes int // chain length
	items int // elements over all nodes
	slots int // capacity over all nodes
}

// fill is the mean node utilization over the whole chain.
func (s stats) fill() float64 {
	if s.slots == 0 {
		return 0
	}

	return float64(s.items) / float64(s.slots)
}

// stats walks the chain and counts nodes, elements and slots.
func (l *List[T]) stats() stats {
	var s stats

	for cur := l.root; cur != nil; cur = cur.next {
		s.nodes++
		s.items += cur.items.Len()
		s.slots += cur.items.Cap()
	}

	return s
}
