// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package chunklist

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gaissmai/chunklist/internal/golden"
)

func FuzzInsertFind(f *testing.F) {
	// Seed corpus
	f.Add(uint64(12345), 150, 15)
	f.Add(uint64(67890), 400, 7)
	f.Add(uint64(54321), 800, 64)
	// Edge-case leaning seeds
	f.Add(uint64(0), 32, 1)      // single element nodes
	f.Add(^uint64(0), 1024, 255) // one huge node
	f.Add(uint64(99), 500, 2)    // many splices

	f.Fuzz(func(t *testing.T, seed uint64, n, capacity int) {
		if n < 1 || n > 2048 || capacity < 1 || capacity > 255 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewPCG(seed, 13))

		l := New[int](capacity)
		var ref golden.Multiset[int]

		for range n {
			// narrow value range, duplicates and splices are the
			// interesting cases
			v := prng.IntN(256) - 128

			l.Insert(v)
			ref.Insert(v)
		}

		if l.Len() != ref.Len() {
			t.Fatalf("Len mismatch: want %d got %d", ref.Len(), l.Len())
		}

		got := allItems(l)
		if !slices.IsSorted(got) {
			t.Fatalf("chain concatenation not sorted: %v", got)
		}
		if !slices.Equal([]int(ref), got) {
			t.Fatalf("chain concatenation mismatch:\nwant %v\ngot  %v", []int(ref), got)
		}

		// per-node capacity bound and range ordering
		for cur := l.root; cur != nil; cur = cur.next {
			if cur.items.Len() < 1 || cur.items.Len() > capacity {
				t.Fatalf("node length %d out of bounds, capacity %d", cur.items.Len(), capacity)
			}
			if cur.next != nil && cur.items.Max() > cur.next.items.Min() {
				t.Fatalf("range overlap: max %d > successor min %d", cur.items.Max(), cur.next.items.Min())
			}
		}

		// lookup parity, sampled queries across and beyond the range
		for range 64 {
			q := prng.IntN(300) - 150
			if want, got := ref.Contains(q), l.Contains(q); want != got {
				t.Fatalf("Contains(%d): want %v got %v", q, want, got)
			}
		}
	})
}
